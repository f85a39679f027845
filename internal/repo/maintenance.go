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

// MaintenanceRepo defines the persistence operations for MaintenanceRecords.
// Maintenance history is append-only: there is no update or delete.
type MaintenanceRepo interface {
	// Create inserts a new maintenance record and returns the persisted record.
	Create(ctx context.Context, m domain.MaintenanceRecord) (domain.MaintenanceRecord, error)

	// ListByVehicleID returns all maintenance records for a vehicle ordered by
	// date ascending.
	ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error)
}

// pgMaintenanceRepo is the Postgres implementation of MaintenanceRepo.
type pgMaintenanceRepo struct {
	db db
}

// NewMaintenanceRepo constructs a MaintenanceRepo backed by the provided db connection.
func NewMaintenanceRepo(db db) MaintenanceRepo {
	return &pgMaintenanceRepo{db: db}
}

func (r *pgMaintenanceRepo) Create(ctx context.Context, m domain.MaintenanceRecord) (domain.MaintenanceRecord, error) {
	const q = `
		INSERT INTO maintenance_records (vehicle_id, date, maintenance_type, cost, note)
		VALUES (@vehicle_id, @date, @maintenance_type, @cost, @note)
		RETURNING id, vehicle_id, date, maintenance_type, cost, note, created_at`

	args := pgx.NamedArgs{
		"vehicle_id":       m.VehicleID,
		"date":             m.Date,
		"maintenance_type": m.MaintenanceType,
		"cost":             m.Cost,
		"note":             m.Note,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMaintenance(row)
	if err != nil {
		return domain.MaintenanceRecord{}, fmt.Errorf("repo.MaintenanceRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMaintenanceRepo) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error) {
	const q = `
		SELECT id, vehicle_id, date, maintenance_type, cost, note, created_at
		FROM maintenance_records
		WHERE vehicle_id = @vehicle_id
		ORDER BY date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.MaintenanceRepo.ListByVehicleID: %w", err)
	}
	defer rows.Close()

	var records []domain.MaintenanceRecord
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MaintenanceRepo.ListByVehicleID: scan: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MaintenanceRepo.ListByVehicleID: rows: %w", err)
	}

	return records, nil
}

// scanMaintenance maps a single database row into a domain.MaintenanceRecord.
func scanMaintenance(s scanner) (domain.MaintenanceRecord, error) {
	var (
		m         domain.MaintenanceRecord
		id        pgtype.UUID
		vehicleID pgtype.UUID
		date      pgtype.Date
	)

	err := s.Scan(&id, &vehicleID, &date, &m.MaintenanceType, &m.Cost, &m.Note, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MaintenanceRecord{}, domain.ErrNotFound
		}
		return domain.MaintenanceRecord{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	m.VehicleID = uuid.UUID(vehicleID.Bytes)
	m.Date = date.Time
	return m, nil
}
