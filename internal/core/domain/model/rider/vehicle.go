package rider

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// VehicleType is the vehicle a rider delivers with.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBicycle is a pedal bicycle.
	VehicleBicycle

	// VehicleMotorbike is a motorbike or scooter.
	VehicleMotorbike

	// VehicleCar is a car.
	VehicleCar
)

func getVehicleStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown:   "unknown",
		VehicleBicycle:   "bicycle",
		VehicleMotorbike: "motorbike",
		VehicleCar:       "car",
	}
}

// VehicleFromString parses the vehicle type name used on the API surface.
func VehicleFromString(s string) (VehicleType, error) {
	for v, name := range getVehicleStrings() {
		if name == s && v != VehicleUnknown {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is one of the defined types.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleStrings()[v]; !ok || v == VehicleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire name of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "unknown"
}
