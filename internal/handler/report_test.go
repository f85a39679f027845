package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlcar/backend/internal/domain"
)

func TestEfficiency_Success(t *testing.T) {
	ts := newTestServer()

	ts.reports.efficiency = func(_ context.Context, _ uuid.UUID) (float64, error) {
		return 8.33, nil
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/efficiency", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"efficiency_km_per_l":8.33}`, rec.Body.String())
}

func TestEfficiency_InsufficientData_Returns422(t *testing.T) {
	ts := newTestServer()

	ts.reports.efficiency = func(_ context.Context, _ uuid.UUID) (float64, error) {
		return 0, fmt.Errorf("service.ReportService.Efficiency: %w: at least two fuel loads are required to compute efficiency", domain.ErrValidation)
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/efficiency", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least two fuel loads")
}

func TestOilChangeDue_Success(t *testing.T) {
	ts := newTestServer()

	ts.reports.nextOilChangeDue = func(_ context.Context, _ uuid.UUID) (float64, error) {
		return 55000, nil
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/oil-change-due", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"due_at_km":55000}`, rec.Body.String())
}

func TestAlerts_Success(t *testing.T) {
	ts := newTestServer()

	var gotOdometer float64
	ts.reports.alerts = func(_ context.Context, _ uuid.UUID, odo float64) (domain.Alerts, error) {
		gotOdometer = odo
		return domain.Alerts{
			domain.AlertOilChange: "oil change upcoming: ~100 km remaining",
		}, nil
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/alerts?odometer=54900", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 54900.0, gotOdometer)
	assert.JSONEq(t, `{"alerts":{"oil_change":"oil change upcoming: ~100 km remaining"}}`, rec.Body.String())
}

func TestAlerts_NoAlerts_ReturnsEmptyObject(t *testing.T) {
	ts := newTestServer()

	ts.reports.alerts = func(_ context.Context, _ uuid.UUID, _ float64) (domain.Alerts, error) {
		return domain.Alerts{}, nil
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/alerts?odometer=100", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alerts":{}}`, rec.Body.String())
}

func TestAlerts_MissingOdometer_Returns422(t *testing.T) {
	ts := newTestServer()

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/alerts", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "odometer")
}

func TestMonthlySummary_Success(t *testing.T) {
	ts := newTestServer()

	var gotMonth, gotYear int
	ts.reports.monthlySummary = func(_ context.Context, _ uuid.UUID, month, year int) (domain.MonthlySummary, error) {
		gotMonth, gotYear = month, year
		return domain.MonthlySummary{
			Month:           month,
			Year:            year,
			FuelCost:        53.75,
			MaintenanceCost: 120.10,
			TotalCost:       173.85,
		}, nil
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/summary?month=3&year=2025", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotMonth)
	assert.Equal(t, 2025, gotYear)

	var got domain.MonthlySummary
	decodeBody(t, rec, &got)
	assert.Equal(t, 173.85, got.TotalCost)
}

func TestMonthlySummary_MissingParams_Returns422(t *testing.T) {
	ts := newTestServer()

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/summary?year=2025", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "month")
}

func TestMonthlySummary_InvalidMonth_Returns422(t *testing.T) {
	ts := newTestServer()

	ts.reports.monthlySummary = func(_ context.Context, _ uuid.UUID, _, _ int) (domain.MonthlySummary, error) {
		return domain.MonthlySummary{}, fmt.Errorf("service.ReportService.MonthlySummary: %w: month must be between 1 and 12, got 13", domain.ErrValidation)
	}

	rec := doRequest(t, ts, http.MethodGet, "/vehicles/"+uuid.NewString()+"/summary?month=13&year=2025", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "month must be between 1 and 12")
}
