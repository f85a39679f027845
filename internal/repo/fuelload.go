package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/controlcar/backend/internal/domain"
)

// FuelLoadRepo defines the persistence operations for FuelLoads.
// Fuel loads are append-only: there is no update or delete.
type FuelLoadRepo interface {
	// Create inserts a new fuel load and returns the persisted record.
	// It never deduplicates — every refueling event is its own row.
	Create(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error)

	// ListByVehicleID returns all fuel loads for a vehicle ordered by date
	// ascending. Callers needing a different order must sort themselves.
	ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error)
}

// pgFuelLoadRepo is the Postgres implementation of FuelLoadRepo.
type pgFuelLoadRepo struct {
	db db
}

// NewFuelLoadRepo constructs a FuelLoadRepo backed by the provided db connection.
func NewFuelLoadRepo(db db) FuelLoadRepo {
	return &pgFuelLoadRepo{db: db}
}

func (r *pgFuelLoadRepo) Create(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error) {
	const q = `
		INSERT INTO fuel_loads (vehicle_id, date, liters, cost, odometer_km, fuel_type)
		VALUES (@vehicle_id, @date, @liters, @cost, @odometer_km, @fuel_type)
		RETURNING id, vehicle_id, date, liters, cost, odometer_km, fuel_type, created_at`

	args := pgx.NamedArgs{
		"vehicle_id":  f.VehicleID,
		"date":        f.Date,
		"liters":      f.Liters,
		"cost":        f.Cost,
		"odometer_km": f.OdometerKM,
		"fuel_type":   f.FuelType,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanFuelLoad(row)
	if err != nil {
		return domain.FuelLoad{}, fmt.Errorf("repo.FuelLoadRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgFuelLoadRepo) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error) {
	const q = `
		SELECT id, vehicle_id, date, liters, cost, odometer_km, fuel_type, created_at
		FROM fuel_loads
		WHERE vehicle_id = @vehicle_id
		ORDER BY date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.FuelLoadRepo.ListByVehicleID: %w", err)
	}
	defer rows.Close()

	var loads []domain.FuelLoad
	for rows.Next() {
		f, err := scanFuelLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FuelLoadRepo.ListByVehicleID: scan: %w", err)
		}
		loads = append(loads, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FuelLoadRepo.ListByVehicleID: rows: %w", err)
	}

	return loads, nil
}

// scanFuelLoad maps a single database row into a domain.FuelLoad.
func scanFuelLoad(s scanner) (domain.FuelLoad, error) {
	var (
		f         domain.FuelLoad
		id        pgtype.UUID
		vehicleID pgtype.UUID
		date      pgtype.Date
	)

	err := s.Scan(&id, &vehicleID, &date, &f.Liters, &f.Cost, &f.OdometerKM, &f.FuelType, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FuelLoad{}, domain.ErrNotFound
		}
		return domain.FuelLoad{}, err
	}

	f.ID = uuid.UUID(id.Bytes)
	f.VehicleID = uuid.UUID(vehicleID.Bytes)
	f.Date = date.Time
	return f, nil
}
