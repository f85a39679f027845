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

// OilChangeRepo defines the persistence operations for OilChanges.
// Oil changes are append-only: there is no update or delete.
type OilChangeRepo interface {
	// Create inserts a new oil change and returns the persisted record.
	Create(ctx context.Context, oc domain.OilChange) (domain.OilChange, error)

	// ListByVehicleID returns all oil changes for a vehicle ordered by date
	// ascending.
	ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error)
}

// pgOilChangeRepo is the Postgres implementation of OilChangeRepo.
type pgOilChangeRepo struct {
	db db
}

// NewOilChangeRepo constructs an OilChangeRepo backed by the provided db connection.
func NewOilChangeRepo(db db) OilChangeRepo {
	return &pgOilChangeRepo{db: db}
}

func (r *pgOilChangeRepo) Create(ctx context.Context, oc domain.OilChange) (domain.OilChange, error) {
	const q = `
		INSERT INTO oil_changes (vehicle_id, date, oil_type, odometer_km, interval_km)
		VALUES (@vehicle_id, @date, @oil_type, @odometer_km, @interval_km)
		RETURNING id, vehicle_id, date, oil_type, odometer_km, interval_km, created_at`

	args := pgx.NamedArgs{
		"vehicle_id":  oc.VehicleID,
		"date":        oc.Date,
		"oil_type":    oc.OilType,
		"odometer_km": oc.OdometerKM,
		"interval_km": oc.IntervalKM,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanOilChange(row)
	if err != nil {
		return domain.OilChange{}, fmt.Errorf("repo.OilChangeRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgOilChangeRepo) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error) {
	const q = `
		SELECT id, vehicle_id, date, oil_type, odometer_km, interval_km, created_at
		FROM oil_changes
		WHERE vehicle_id = @vehicle_id
		ORDER BY date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.OilChangeRepo.ListByVehicleID: %w", err)
	}
	defer rows.Close()

	var changes []domain.OilChange
	for rows.Next() {
		oc, err := scanOilChange(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.OilChangeRepo.ListByVehicleID: scan: %w", err)
		}
		changes = append(changes, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.OilChangeRepo.ListByVehicleID: rows: %w", err)
	}

	return changes, nil
}

// scanOilChange maps a single database row into a domain.OilChange.
func scanOilChange(s scanner) (domain.OilChange, error) {
	var (
		oc        domain.OilChange
		id        pgtype.UUID
		vehicleID pgtype.UUID
		date      pgtype.Date
	)

	err := s.Scan(&id, &vehicleID, &date, &oc.OilType, &oc.OdometerKM, &oc.IntervalKM, &oc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.OilChange{}, domain.ErrNotFound
		}
		return domain.OilChange{}, err
	}

	oc.ID = uuid.UUID(id.Bytes)
	oc.VehicleID = uuid.UUID(vehicleID.Bytes)
	oc.Date = date.Time
	return oc, nil
}
