package order

import (
	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	CREATED ──> PICKED_UP ──> IN_ROUTE ──> DELIVERED
//	   │            │
//	   └────────────┴──> CANCELLED
//
// CANCELLED_BY_DELIVERY and CANCELLATION_IN_PROGRESS are reserved states:
// they are valid values for persistence but no transition produces them yet.
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status, assigned only after a successful fare
	// calculation. Orders can be patched and cancelled while in this status.
	Created

	// PickedUp indicates the driver has collected the package.
	// Cancellation is still possible from this status.
	PickedUp

	// InRoute indicates the package is on its way to the delivery address.
	InRoute

	// Delivered indicates the package reached its destination.
	// This is a terminal status.
	Delivered

	// CancelledByDelivery is reserved for cancellations initiated by the
	// delivery side. No transition reaches it yet.
	CancelledByDelivery

	// CancellationInProgress is reserved for multi-step cancellation flows.
	// No transition reaches it yet.
	CancellationInProgress

	// Cancelled indicates the order was cancelled by the customer.
	// This is a terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "UNKNOWN",
		Created:                "CREATED",
		PickedUp:               "PICKED_UP",
		InRoute:                "IN_ROUTE",
		Delivered:              "DELIVERED",
		CancelledByDelivery:    "CANCELLED_BY_DELIVERY",
		CancellationInProgress: "CANCELLATION_IN_PROGRESS",
		Cancelled:              "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:                "CREATED",
		PickedUp:               "PICKED_UP",
		InRoute:                "IN_ROUTE",
		Delivered:              "DELIVERED",
		CancelledByDelivery:    "CANCELLED_BY_DELIVERY",
		CancellationInProgress: "CANCELLATION_IN_PROGRESS",
		Cancelled:              "CANCELLED",
	}
}

// StatusFromString resolves a persisted status name to its Status value.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks if the Status value is one of the defined states.
// The reserved states are valid values even though no transition reaches them.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PICKED_UP".
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// PickUp transitions the status to PickedUp.
// Only valid from Created.
func (s Status) PickUp() (Status, error) {
	if s != Created {
		return Unknown, errs.NewInvalidStateError("pick up", s.String())
	}
	return PickedUp, nil
}

// StartRoute transitions the status to InRoute.
// Only valid from PickedUp.
func (s Status) StartRoute() (Status, error) {
	if s != PickedUp {
		return Unknown, errs.NewInvalidStateError("start route", s.String())
	}
	return InRoute, nil
}

// Deliver transitions the status to Delivered, a terminal state.
// Only valid from InRoute.
func (s Status) Deliver() (Status, error) {
	if s != InRoute {
		return Unknown, errs.NewInvalidStateError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled, a terminal state.
//
// Valid transitions:
//   - Created -> Cancelled (order not yet collected)
//   - PickedUp -> Cancelled (collected but not yet in route)
//
// Every other source status is rejected, including the reserved
// cancellation states, which have no defined transition logic yet.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != PickedUp {
		return Unknown, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

// ValidateCanPatch checks that the order contents may still be edited.
// Patching is only allowed while the order is in Created.
func (s Status) ValidateCanPatch() error {
	if s != Created {
		return errs.NewInvalidStateError("patch", s.String())
	}
	return nil
}

// ValidateCanAssign checks that driver/vehicle assignment is allowed.
// Assignment is rejected only for cancelled orders; it does not itself
// advance the lifecycle.
func (s Status) ValidateCanAssign() error {
	if s == Cancelled {
		return errs.NewInvalidStateError("assign driver", s.String())
	}
	return nil
}
