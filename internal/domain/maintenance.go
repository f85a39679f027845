package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord represents any service work on a vehicle other than
// refueling and oil changes (preventive or corrective). Cost may be zero —
// warranty work is recorded too.
type MaintenanceRecord struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	Date            time.Time `json:"date"`
	MaintenanceType string    `json:"maintenance_type"`
	Cost            float64   `json:"cost"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewMaintenanceRecord validates and builds a MaintenanceRecord.
// ID and CreatedAt are populated by the repo on insert. Note is optional.
func NewMaintenanceRecord(vehicleID uuid.UUID, date time.Time, maintenanceType string, cost float64, note string) (MaintenanceRecord, error) {
	if err := requireID("vehicle_id", vehicleID); err != nil {
		return MaintenanceRecord{}, err
	}
	if err := requireNotEmpty("maintenance_type", maintenanceType); err != nil {
		return MaintenanceRecord{}, err
	}
	if err := requireNonNegative("cost", cost); err != nil {
		return MaintenanceRecord{}, err
	}
	return MaintenanceRecord{
		VehicleID:       vehicleID,
		Date:            date,
		MaintenanceType: maintenanceType,
		Cost:            cost,
		Note:            note,
	}, nil
}
