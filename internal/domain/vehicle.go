// Package domain contains the core data types for the Control Car application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
//
// All record types are immutable once constructed: the New* constructors are
// the only creation path, and each either returns a fully valid value or an
// error wrapping ErrValidation that names the offending field. Correcting a
// record means appending a new one, never editing in place.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a registered vehicle. It is the top-level aggregate;
// fuel loads, oil changes, and maintenance records all belong to a vehicle.
type Vehicle struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Plate     string    `json:"plate"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVehicle validates and builds a Vehicle. ID, CreatedAt, and UpdatedAt are
// left zero — the repo populates them on insert.
// Year must fall within 1900..current year+1 (next-year models are sold early).
func NewVehicle(ownerID uuid.UUID, plate, makeName, model string, year int) (Vehicle, error) {
	if err := requireID("owner_id", ownerID); err != nil {
		return Vehicle{}, err
	}
	if err := requireNotEmpty("plate", plate); err != nil {
		return Vehicle{}, err
	}
	if err := requireNotEmpty("make", makeName); err != nil {
		return Vehicle{}, err
	}
	if err := requireNotEmpty("model", model); err != nil {
		return Vehicle{}, err
	}
	if maxYear := time.Now().Year() + 1; year < 1900 || year > maxYear {
		return Vehicle{}, fmt.Errorf("%w: year must be between 1900 and %d, got %d", ErrValidation, maxYear, year)
	}
	return Vehicle{
		OwnerID: ownerID,
		Plate:   plate,
		Make:    makeName,
		Model:   model,
		Year:    year,
	}, nil
}
