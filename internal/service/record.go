// Package service contains the business logic for the Control Car API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// RecordService registers fuel loads, oil changes, and maintenance records.
// It holds all three record repos because the odometer guard needs visibility
// across the union of the fuel-load and oil-change histories.
//
// The guard re-reads history on every call and takes no locks: two concurrent
// writers for the same vehicle can both pass the check against a stale
// maximum. Deployments are expected to have a single writer per vehicle.
type RecordService struct {
	fuel  repo.FuelLoadRepo
	oil   repo.OilChangeRepo
	maint repo.MaintenanceRepo
}

// NewRecordService constructs a RecordService backed by the provided repos.
func NewRecordService(fuel repo.FuelLoadRepo, oil repo.OilChangeRepo, maint repo.MaintenanceRepo) *RecordService {
	return &RecordService{fuel: fuel, oil: oil, maint: maint}
}

// RegisterFuelLoad checks odometer monotonicity, then persists the fuel load.
// Returns domain.ErrValidation if the reading regresses; nothing is persisted
// in that case.
func (s *RecordService) RegisterFuelLoad(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error) {
	if err := s.guardOdometer(ctx, f.VehicleID, f.OdometerKM); err != nil {
		return domain.FuelLoad{}, err
	}
	result, err := s.fuel.Create(ctx, f)
	if err != nil {
		return domain.FuelLoad{}, fmt.Errorf("service.RecordService.RegisterFuelLoad: %w", err)
	}
	return result, nil
}

// RegisterOilChange checks odometer monotonicity, then persists the oil change.
// Returns domain.ErrValidation if the reading regresses; nothing is persisted
// in that case.
func (s *RecordService) RegisterOilChange(ctx context.Context, oc domain.OilChange) (domain.OilChange, error) {
	if err := s.guardOdometer(ctx, oc.VehicleID, oc.OdometerKM); err != nil {
		return domain.OilChange{}, err
	}
	result, err := s.oil.Create(ctx, oc)
	if err != nil {
		return domain.OilChange{}, fmt.Errorf("service.RecordService.RegisterOilChange: %w", err)
	}
	return result, nil
}

// RegisterMaintenance persists a maintenance record. Maintenance entries carry
// no odometer reading, so no monotonicity check applies.
func (s *RecordService) RegisterMaintenance(ctx context.Context, m domain.MaintenanceRecord) (domain.MaintenanceRecord, error) {
	result, err := s.maint.Create(ctx, m)
	if err != nil {
		return domain.MaintenanceRecord{}, fmt.Errorf("service.RecordService.RegisterMaintenance: %w", err)
	}
	return result, nil
}

// ListFuelLoads returns the vehicle's fuel-load history.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RecordService) ListFuelLoads(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error) {
	loads, err := s.fuel.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.ListFuelLoads: %w", err)
	}
	if loads == nil {
		return []domain.FuelLoad{}, nil
	}
	return loads, nil
}

// ListOilChanges returns the vehicle's oil-change history.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RecordService) ListOilChanges(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error) {
	changes, err := s.oil.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.ListOilChanges: %w", err)
	}
	if changes == nil {
		return []domain.OilChange{}, nil
	}
	return changes, nil
}

// ListMaintenances returns the vehicle's maintenance history.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RecordService) ListMaintenances(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error) {
	records, err := s.maint.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service.RecordService.ListMaintenances: %w", err)
	}
	if records == nil {
		return []domain.MaintenanceRecord{}, nil
	}
	return records, nil
}

// guardOdometer rejects a new odometer reading that is below the maximum
// reading across the vehicle's fuel-load and oil-change histories combined.
// An empty history trivially passes.
func (s *RecordService) guardOdometer(ctx context.Context, vehicleID uuid.UUID, odometerKM float64) error {
	loads, err := s.fuel.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("service.RecordService.guardOdometer: %w", err)
	}
	changes, err := s.oil.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("service.RecordService.guardOdometer: %w", err)
	}

	var max float64
	var seen bool
	for _, f := range loads {
		if !seen || f.OdometerKM > max {
			max, seen = f.OdometerKM, true
		}
	}
	for _, oc := range changes {
		if !seen || oc.OdometerKM > max {
			max, seen = oc.OdometerKM, true
		}
	}

	if seen && odometerKM < max {
		return fmt.Errorf("%w: odometer may not regress: %v km is below the recorded maximum %v km", domain.ErrValidation, odometerKM, max)
	}
	return nil
}
