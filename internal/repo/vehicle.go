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

// VehicleRepo defines the persistence operations for Vehicles.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a single vehicle by its UUID primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// List returns all vehicles ordered by created_at descending.
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Delete removes a vehicle by ID along with its dependent records
	// (via ON DELETE CASCADE). Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

// Create inserts a new vehicle row and returns the full persisted record.
func (r *pgVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (owner_id, plate, make, model, year)
		VALUES (@owner_id, @plate, @make, @model, @year)
		RETURNING id, owner_id, plate, make, model, year, created_at, updated_at`

	args := pgx.NamedArgs{
		"owner_id": v.OwnerID,
		"plate":    v.Plate,
		"make":     v.Make,
		"model":    v.Model,
		"year":     v.Year,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a vehicle by primary key.
func (r *pgVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `
		SELECT id, owner_id, plate, make, model, year, created_at, updated_at
		FROM vehicles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vehicles, most recently registered first.
func (r *pgVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `
		SELECT id, owner_id, plate, make, model, year, created_at, updated_at
		FROM vehicles
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}

	return vehicles, nil
}

// Delete removes a vehicle by primary key.
func (r *pgVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM vehicles WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v       domain.Vehicle
		id      pgtype.UUID
		ownerID pgtype.UUID
	)

	err := s.Scan(&id, &ownerID, &v.Plate, &v.Make, &v.Model, &v.Year, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.OwnerID = uuid.UUID(ownerID.Bytes)
	return v, nil
}
