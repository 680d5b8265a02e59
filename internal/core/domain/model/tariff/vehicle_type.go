package tariff

import (
	"lastmile/internal/pkg/errs"
)

// VehicleType classifies the vehicle classes the platform prices.
// Each vehicle type is expected to have exactly one tariff configured.
type VehicleType int

const (
	// UnknownVehicle represents an invalid or undefined vehicle type.
	UnknownVehicle VehicleType = iota

	// Motorcycle covers two-wheeled vehicles for small packages.
	Motorcycle

	// LightVehicle covers cars and small vans.
	LightVehicle

	// Truck covers heavy vehicles for bulky cargo.
	Truck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		UnknownVehicle: "UNKNOWN",
		Motorcycle:     "MOTORCYCLE",
		LightVehicle:   "LIGHT_VEHICLE",
		Truck:          "TRUCK",
	}
}

// VehicleTypes returns all valid vehicle types.
func VehicleTypes() []VehicleType {
	return []VehicleType{Motorcycle, LightVehicle, Truck}
}

// VehicleTypeFromString resolves a persisted vehicle type name.
// Returns an error for unknown names.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt := range getVehicleTypeStrings() {
		if vt != UnknownVehicle && getVehicleTypeStrings()[vt] == s {
			return vt, nil
		}
	}
	return UnknownVehicle, errs.NewValueIsInvalidError("vehicleType " + s)
}

// Validate checks if the VehicleType is one of the defined classes.
func (vt VehicleType) Validate() error {
	if vt == UnknownVehicle {
		return errs.NewValueIsInvalidError("vehicleType")
	}
	if _, ok := getVehicleTypeStrings()[vt]; !ok {
		return errs.NewValueIsInvalidError("vehicleType")
	}
	return nil
}

// String returns the persisted name of the vehicle type, e.g. "MOTORCYCLE".
func (vt VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[vt]; ok {
		return str
	}
	return "UNKNOWN"
}
