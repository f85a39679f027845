package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// fuelLoadFixture returns a domain.FuelLoad with sensible defaults.
// Callers can override individual fields after calling this function.
func fuelLoadFixture(vehicleID uuid.UUID) domain.FuelLoad {
	return domain.FuelLoad{
		VehicleID:  vehicleID,
		Date:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Liters:     40,
		Cost:       60.5,
		OdometerKM: 50100,
		FuelType:   "diesel",
	}
}

func TestFuelLoadRepo_Create(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewFuelLoadRepo(tx)
	ctx := context.Background()

	vehicle := createTestVehicle(t, tx)
	input := fuelLoadFixture(vehicle.ID)

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, vehicle.ID, got.VehicleID)
	assert.True(t, got.Date.Equal(input.Date), "Date mismatch")
	assert.Equal(t, input.Liters, got.Liters)
	assert.Equal(t, input.OdometerKM, got.OdometerKM)
	assert.Equal(t, input.FuelType, got.FuelType)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestFuelLoadRepo_ListByVehicleID_OrderedByDate(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewFuelLoadRepo(tx)
	ctx := context.Background()

	vehicle := createTestVehicle(t, tx)

	// Insert out of chronological order; the list must come back sorted.
	later := fuelLoadFixture(vehicle.ID)
	later.Date = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	later.OdometerKM = 50800

	earlier := fuelLoadFixture(vehicle.ID)

	_, err := r.Create(ctx, later)
	require.NoError(t, err)
	_, err = r.Create(ctx, earlier)
	require.NoError(t, err)

	loads, err := r.ListByVehicleID(ctx, vehicle.ID)

	require.NoError(t, err)
	require.Len(t, loads, 2)
	assert.True(t, loads[0].Date.Before(loads[1].Date), "loads should be ordered by date ascending")
}

func TestFuelLoadRepo_ListByVehicleID_ScopedToVehicle(t *testing.T) {
	tx := beginTestTx(t)
	r := repo.NewFuelLoadRepo(tx)
	ctx := context.Background()

	vehicleA := createTestVehicle(t, tx)
	vehicleB := createTestVehicle(t, tx)

	_, err := r.Create(ctx, fuelLoadFixture(vehicleA.ID))
	require.NoError(t, err)

	loads, err := r.ListByVehicleID(ctx, vehicleB.ID)

	require.NoError(t, err)
	assert.Empty(t, loads, "vehicle B has no fuel loads")
}
