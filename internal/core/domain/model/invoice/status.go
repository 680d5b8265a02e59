package invoice

import (
	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
//
//	DRAFT ──> ISSUED
//
// ISSUED is terminal; there is no void or cancel path.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status of a newly created invoice.
	Draft

	// Issued indicates the invoice was formally emitted.
	// This is the terminal status.
	Issued
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Draft:   "DRAFT",
		Issued:  "ISSUED",
	}
}

// StatusFromString resolves a persisted status name to its Status value.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "DRAFT":
		return Draft, nil
	case "ISSUED":
		return Issued, nil
	default:
		return Unknown, errs.NewValueIsInvalidError("status " + s)
	}
}

// Validate checks if the Status value is Draft or Issued.
func (s Status) Validate() error {
	if s != Draft && s != Issued {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted name of the status, e.g. "DRAFT".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Issue transitions the status to Issued.
// Only valid from Draft; issuing an already issued invoice is rejected.
func (s Status) Issue() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewInvalidStateError("issue", s.String())
	}
	return Issued, nil
}
