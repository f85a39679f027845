package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlcar/backend/internal/domain"
)

func TestNewVehicle_Valid(t *testing.T) {
	owner := uuid.New()

	got, err := domain.NewVehicle(owner, "ABC-1234", "Chevrolet", "Onix", 2021)

	require.NoError(t, err)
	assert.Equal(t, owner, got.OwnerID)
	assert.Equal(t, "ABC-1234", got.Plate)
	assert.Equal(t, "Chevrolet", got.Make)
	assert.Equal(t, "Onix", got.Model)
	assert.Equal(t, 2021, got.Year)
	// ID and timestamps are DB-populated — must be zero until insert.
	assert.Equal(t, uuid.Nil, got.ID)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestNewVehicle_NextYearModel(t *testing.T) {
	// Dealers sell next-year models before the calendar turns over.
	_, err := domain.NewVehicle(uuid.New(), "ABC-1234", "Chevrolet", "Onix", time.Now().Year()+1)

	assert.NoError(t, err)
}

func TestNewVehicle_InvalidFields(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		build   func() (domain.Vehicle, error)
		wantMsg string
	}{
		{
			name:    "missing owner",
			build:   func() (domain.Vehicle, error) { return domain.NewVehicle(uuid.Nil, "ABC-1234", "Chevrolet", "Onix", 2021) },
			wantMsg: "owner_id",
		},
		{
			name:    "blank plate",
			build:   func() (domain.Vehicle, error) { return domain.NewVehicle(owner, "   ", "Chevrolet", "Onix", 2021) },
			wantMsg: "plate",
		},
		{
			name:    "empty make",
			build:   func() (domain.Vehicle, error) { return domain.NewVehicle(owner, "ABC-1234", "", "Onix", 2021) },
			wantMsg: "make",
		},
		{
			name:    "empty model",
			build:   func() (domain.Vehicle, error) { return domain.NewVehicle(owner, "ABC-1234", "Chevrolet", "", 2021) },
			wantMsg: "model",
		},
		{
			name:    "year before 1900",
			build:   func() (domain.Vehicle, error) { return domain.NewVehicle(owner, "ABC-1234", "Chevrolet", "Onix", 1899) },
			wantMsg: "year",
		},
		{
			name: "year too far in the future",
			build: func() (domain.Vehicle, error) {
				return domain.NewVehicle(owner, "ABC-1234", "Chevrolet", "Onix", time.Now().Year()+2)
			},
			wantMsg: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.wantMsg, "error should name the offending field")
		})
	}
}
