package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/handler"
)

// The mocks below use function fields so each test overrides only the calls
// it cares about. A nil field means "this call is unexpected" and panics,
// which surfaces accidental calls immediately.

type mockVehicleService struct {
	register func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	list     func(ctx context.Context) ([]domain.Vehicle, error)
	delete   func(ctx context.Context, id uuid.UUID) error
}

var _ handler.VehicleServicer = (*mockVehicleService)(nil)

func (m *mockVehicleService) Register(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.register(ctx, v)
}

func (m *mockVehicleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	return m.getByID(ctx, id)
}

func (m *mockVehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return m.list(ctx)
}

func (m *mockVehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockRecordService struct {
	registerFuelLoad    func(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error)
	registerOilChange   func(ctx context.Context, oc domain.OilChange) (domain.OilChange, error)
	registerMaintenance func(ctx context.Context, m domain.MaintenanceRecord) (domain.MaintenanceRecord, error)
	listFuelLoads       func(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error)
	listOilChanges      func(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error)
	listMaintenances    func(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error)
}

var _ handler.RecordServicer = (*mockRecordService)(nil)

func (m *mockRecordService) RegisterFuelLoad(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error) {
	return m.registerFuelLoad(ctx, f)
}

func (m *mockRecordService) RegisterOilChange(ctx context.Context, oc domain.OilChange) (domain.OilChange, error) {
	return m.registerOilChange(ctx, oc)
}

func (m *mockRecordService) RegisterMaintenance(ctx context.Context, rec domain.MaintenanceRecord) (domain.MaintenanceRecord, error) {
	return m.registerMaintenance(ctx, rec)
}

func (m *mockRecordService) ListFuelLoads(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error) {
	return m.listFuelLoads(ctx, vehicleID)
}

func (m *mockRecordService) ListOilChanges(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error) {
	return m.listOilChanges(ctx, vehicleID)
}

func (m *mockRecordService) ListMaintenances(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error) {
	return m.listMaintenances(ctx, vehicleID)
}

type mockReportService struct {
	efficiency       func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
	nextOilChangeDue func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
	alerts           func(ctx context.Context, vehicleID uuid.UUID, currentOdometerKM float64) (domain.Alerts, error)
	monthlySummary   func(ctx context.Context, vehicleID uuid.UUID, month, year int) (domain.MonthlySummary, error)
}

var _ handler.ReportServicer = (*mockReportService)(nil)

func (m *mockReportService) Efficiency(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	return m.efficiency(ctx, vehicleID)
}

func (m *mockReportService) NextOilChangeDue(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	return m.nextOilChangeDue(ctx, vehicleID)
}

func (m *mockReportService) Alerts(ctx context.Context, vehicleID uuid.UUID, currentOdometerKM float64) (domain.Alerts, error) {
	return m.alerts(ctx, vehicleID, currentOdometerKM)
}

func (m *mockReportService) MonthlySummary(ctx context.Context, vehicleID uuid.UUID, month, year int) (domain.MonthlySummary, error) {
	return m.monthlySummary(ctx, vehicleID, month, year)
}

type mockUserService struct {
	register func(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error)
	login    func(ctx context.Context, email, password string) (string, domain.User, error)
}

var _ handler.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) Register(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	return m.register(ctx, name, email, password, role)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	return m.login(ctx, email, password)
}

// testServer bundles the server under test with its mocks so tests can
// override only the behavior they exercise.
type testServer struct {
	http.Handler
	vehicles *mockVehicleService
	records  *mockRecordService
	reports  *mockReportService
	users    *mockUserService
}

// newTestServer builds a Server with fresh mocks and no auth middleware.
func newTestServer() *testServer {
	vehicles := &mockVehicleService{}
	records := &mockRecordService{}
	reports := &mockReportService{}
	users := &mockUserService{}
	srv := handler.NewServer(vehicles, records, reports, users)
	return &testServer{
		Handler:  srv.Routes(nil),
		vehicles: vehicles,
		records:  records,
		reports:  reports,
		users:    users,
	}
}

// doRequest performs an in-memory HTTP request against the test server and
// returns the recorded response.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
