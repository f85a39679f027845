package domain

import (
	"time"

	"github.com/google/uuid"
)

// OilChange represents a completed oil service. IntervalKM is the recommended
// distance until the next change, counted from OdometerKM.
type OilChange struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Date       time.Time `json:"date"`
	OilType    string    `json:"oil_type"`
	OdometerKM float64   `json:"odometer_km"`
	IntervalKM float64   `json:"interval_km"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewOilChange validates and builds an OilChange. ID and CreatedAt are
// populated by the repo on insert.
func NewOilChange(vehicleID uuid.UUID, date time.Time, oilType string, odometerKM, intervalKM float64) (OilChange, error) {
	if err := requireID("vehicle_id", vehicleID); err != nil {
		return OilChange{}, err
	}
	if err := requireNotEmpty("oil_type", oilType); err != nil {
		return OilChange{}, err
	}
	if err := requireNonNegative("odometer_km", odometerKM); err != nil {
		return OilChange{}, err
	}
	if err := requirePositive("interval_km", intervalKM); err != nil {
		return OilChange{}, err
	}
	return OilChange{
		VehicleID:  vehicleID,
		Date:       date,
		OilType:    oilType,
		OdometerKM: odometerKM,
		IntervalKM: intervalKM,
	}, nil
}
