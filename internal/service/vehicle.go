package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// VehicleService implements business logic for Vehicle operations.
// Field validation already happened in domain.NewVehicle — the only creation
// path for a Vehicle value — so this service only orchestrates persistence.
type VehicleService struct {
	repo repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService backed by the provided VehicleRepo.
func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r}
}

// Register persists a new vehicle.
func (s *VehicleService) Register(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	result, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Register: %w", err)
	}
	return result, nil
}

// GetByID returns a single vehicle by ID.
// Returns domain.ErrNotFound if no vehicle with that ID exists.
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all registered vehicles.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// Delete removes a vehicle and its record history. This is the administrative
// action — record history is otherwise append-only.
// Returns domain.ErrNotFound if the vehicle does not exist.
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	return nil
}
