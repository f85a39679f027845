package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelLoad represents one refueling event. The history of fuel loads for a
// vehicle is append-only; derived calculations (efficiency, monthly cost)
// order it by Date.
type FuelLoad struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Date       time.Time `json:"date"`
	Liters     float64   `json:"liters"`
	Cost       float64   `json:"cost"`
	OdometerKM float64   `json:"odometer_km"`
	FuelType   string    `json:"fuel_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewFuelLoad validates and builds a FuelLoad. ID and CreatedAt are populated
// by the repo on insert. Cost is in the single configured currency unit.
func NewFuelLoad(vehicleID uuid.UUID, date time.Time, liters, cost, odometerKM float64, fuelType string) (FuelLoad, error) {
	if err := requireID("vehicle_id", vehicleID); err != nil {
		return FuelLoad{}, err
	}
	if err := requireNotEmpty("fuel_type", fuelType); err != nil {
		return FuelLoad{}, err
	}
	if err := requirePositive("liters", liters); err != nil {
		return FuelLoad{}, err
	}
	if err := requirePositive("cost", cost); err != nil {
		return FuelLoad{}, err
	}
	if err := requireNonNegative("odometer_km", odometerKM); err != nil {
		return FuelLoad{}, err
	}
	return FuelLoad{
		VehicleID:  vehicleID,
		Date:       date,
		Liters:     liters,
		Cost:       cost,
		OdometerKM: odometerKM,
		FuelType:   fuelType,
	}, nil
}
