package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/repo"
)

// Fixed alert policy thresholds.
const (
	// oilChangeSoonKM is the remaining distance below which an upcoming
	// oil change is flagged.
	oilChangeSoonKM = 200.0

	// lowEfficiencyKMPerL is the efficiency below which a warning is raised.
	lowEfficiencyKMPerL = 8.0
)

// ReportService derives operational insight from a vehicle's record history:
// fuel efficiency, oil-change projection, alerts, and monthly cost summaries.
// Every operation is a pure read — nothing is cached or persisted.
type ReportService struct {
	fuel  repo.FuelLoadRepo
	oil   repo.OilChangeRepo
	maint repo.MaintenanceRepo
}

// NewReportService constructs a ReportService backed by the provided repos.
func NewReportService(fuel repo.FuelLoadRepo, oil repo.OilChangeRepo, maint repo.MaintenanceRepo) *ReportService {
	return &ReportService{fuel: fuel, oil: oil, maint: maint}
}

// Efficiency calculates fuel efficiency in km per liter from the two most
// recent fuel loads (by date): distance between their odometer readings
// divided by the liters of the most recent load, rounded to 2 decimals.
//
// Using only the last load's liters assumes the tank is filled to the same
// reference level each time. That is a deliberate simplification, not a
// multi-fill average.
//
// Returns domain.ErrValidation with fewer than two loads, or when the
// odometer distance between the last two loads is not positive (which would
// mean corrupted history — the registration guard forbids it).
func (s *ReportService) Efficiency(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	loads, err := s.fuel.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("service.ReportService.Efficiency: %w", err)
	}
	if len(loads) < 2 {
		return 0, fmt.Errorf("%w: at least two fuel loads are required to calculate efficiency", domain.ErrValidation)
	}

	sortFuelLoads(loads)
	last, prev := loads[len(loads)-1], loads[len(loads)-2]

	distance := last.OdometerKM - prev.OdometerKM
	if distance <= 0 {
		return 0, fmt.Errorf("%w: distance between the last two fuel loads must be positive, got %v km", domain.ErrValidation, distance)
	}
	if last.Liters <= 0 {
		return 0, fmt.Errorf("%w: liters must be greater than 0, got %v", domain.ErrValidation, last.Liters)
	}

	return round2(distance / last.Liters), nil
}

// NextOilChangeDue projects the odometer reading at which the next oil change
// is due: the most recent oil change's odometer plus its recommended interval,
// rounded to a whole kilometer.
//
// "Most recent" means the latest date; among records sharing that date the
// lexicographically greatest id wins, so the result is deterministic
// regardless of storage return order.
//
// Returns domain.ErrValidation when the vehicle has no oil-change records.
func (s *ReportService) NextOilChangeDue(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	changes, err := s.oil.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("service.ReportService.NextOilChangeDue: %w", err)
	}
	if len(changes) == 0 {
		return 0, fmt.Errorf("%w: no oil-change records", domain.ErrValidation)
	}

	latest := changes[0]
	for _, oc := range changes[1:] {
		if oc.Date.After(latest.Date) {
			latest = oc
			continue
		}
		if oc.Date.Equal(latest.Date) && oc.ID.String() > latest.ID.String() {
			latest = oc
		}
	}

	return math.Round(latest.OdometerKM + latest.IntervalKM), nil
}

// Alerts generates proactive alerts for a vehicle at the given current
// odometer reading. The result has at most two keys:
//
//   - domain.AlertOilChange: overdue or upcoming (within 200 km) oil change,
//     or a note that no oil-change records exist
//   - domain.AlertEfficiency: efficiency below 8.0 km/l, or a note that the
//     history is too short to compute it
//
// The two derivations are independent: a lack-of-data failure in one becomes
// an informational message and never suppresses the other. Storage failures
// still propagate as errors.
func (s *ReportService) Alerts(ctx context.Context, vehicleID uuid.UUID, currentOdometerKM float64) (domain.Alerts, error) {
	if currentOdometerKM < 0 {
		return nil, fmt.Errorf("%w: current odometer must not be negative, got %v", domain.ErrValidation, currentOdometerKM)
	}

	alerts := domain.Alerts{}

	due, err := s.NextOilChangeDue(ctx, vehicleID)
	switch {
	case errors.Is(err, domain.ErrValidation):
		alerts[domain.AlertOilChange] = "no oil-change records"
	case err != nil:
		return nil, fmt.Errorf("service.ReportService.Alerts: %w", err)
	case currentOdometerKM >= due:
		alerts[domain.AlertOilChange] = fmt.Sprintf("oil change overdue: was due at %.0f km", due)
	case due-currentOdometerKM <= oilChangeSoonKM:
		alerts[domain.AlertOilChange] = fmt.Sprintf("oil change upcoming: ~%.0f km remaining", due-currentOdometerKM)
	}

	efficiency, err := s.Efficiency(ctx, vehicleID)
	switch {
	case errors.Is(err, domain.ErrValidation):
		alerts[domain.AlertEfficiency] = "insufficient data for efficiency"
	case err != nil:
		return nil, fmt.Errorf("service.ReportService.Alerts: %w", err)
	case efficiency < lowEfficiencyKMPerL:
		alerts[domain.AlertEfficiency] = fmt.Sprintf("low efficiency: %.2f km/l", efficiency)
	}

	return alerts, nil
}

// MonthlySummary sums the vehicle's fuel and maintenance costs for one
// calendar month. Month must be 1..12 and year must be positive; both
// violations return domain.ErrValidation.
func (s *ReportService) MonthlySummary(ctx context.Context, vehicleID uuid.UUID, month, year int) (domain.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return domain.MonthlySummary{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", domain.ErrValidation, month)
	}
	if year <= 0 {
		return domain.MonthlySummary{}, fmt.Errorf("%w: year must be greater than 0, got %d", domain.ErrValidation, year)
	}

	loads, err := s.fuel.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return domain.MonthlySummary{}, fmt.Errorf("service.ReportService.MonthlySummary: %w", err)
	}
	records, err := s.maint.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return domain.MonthlySummary{}, fmt.Errorf("service.ReportService.MonthlySummary: %w", err)
	}

	var fuelCost, maintCost float64
	for _, f := range loads {
		if f.Date.Year() == year && int(f.Date.Month()) == month {
			fuelCost += f.Cost
		}
	}
	for _, m := range records {
		if m.Date.Year() == year && int(m.Date.Month()) == month {
			maintCost += m.Cost
		}
	}

	return domain.MonthlySummary{
		Month:           month,
		Year:            year,
		FuelCost:        round2(fuelCost),
		MaintenanceCost: round2(maintCost),
		TotalCost:       round2(fuelCost + maintCost),
	}, nil
}

// sortFuelLoads orders loads by date ascending, breaking date ties by id so
// the order is stable regardless of how storage returned them.
func sortFuelLoads(loads []domain.FuelLoad) {
	sort.Slice(loads, func(i, j int) bool {
		if !loads[i].Date.Equal(loads[j].Date) {
			return loads[i].Date.Before(loads[j].Date)
		}
		return loads[i].ID.String() < loads[j].ID.String()
	})
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
