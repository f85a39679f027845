// Package handler implements the HTTP handlers for the Control Car API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (vehicle.go, record.go, report.go, ...) but all share the same Server
// struct so they can access its dependencies. Handlers decode and encode JSON,
// delegate to the service layer, and map sentinel errors to status codes —
// no business logic lives here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
)

// VehicleServicer defines the business operations the vehicle handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VehicleServicer interface {
	Register(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordServicer defines the business operations the record handlers depend on.
type RecordServicer interface {
	RegisterFuelLoad(ctx context.Context, f domain.FuelLoad) (domain.FuelLoad, error)
	RegisterOilChange(ctx context.Context, oc domain.OilChange) (domain.OilChange, error)
	RegisterMaintenance(ctx context.Context, m domain.MaintenanceRecord) (domain.MaintenanceRecord, error)
	ListFuelLoads(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error)
	ListOilChanges(ctx context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error)
	ListMaintenances(ctx context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error)
}

// ReportServicer defines the derived-insight operations the report handlers
// depend on.
type ReportServicer interface {
	Efficiency(ctx context.Context, vehicleID uuid.UUID) (float64, error)
	NextOilChangeDue(ctx context.Context, vehicleID uuid.UUID) (float64, error)
	Alerts(ctx context.Context, vehicleID uuid.UUID, currentOdometerKM float64) (domain.Alerts, error)
	MonthlySummary(ctx context.Context, vehicleID uuid.UUID, month, year int) (domain.MonthlySummary, error)
}

// UserServicer defines the account operations the auth handlers depend on.
type UserServicer interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
}

// Server holds the handler dependencies. Wire it in main.go via Routes.
type Server struct {
	vehicles VehicleServicer
	records  RecordServicer
	reports  ReportServicer
	users    UserServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(vehicles VehicleServicer, records RecordServicer, reports ReportServicer, users UserServicer) *Server {
	return &Server{vehicles: vehicles, records: records, reports: reports, users: users}
}

// Routes builds the chi router for the full API surface. authMW, when non-nil,
// guards everything under /vehicles; auth and health endpoints stay open.
// Tests pass nil to skip authentication.
func (s *Server) Routes(authMW func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(g chi.Router) {
		if authMW != nil {
			g.Use(authMW)
		}
		g.Route("/vehicles", func(vr chi.Router) {
			vr.Post("/", s.handleCreateVehicle)
			vr.Get("/", s.handleListVehicles)

			vr.Route("/{vehicleID}", func(ir chi.Router) {
				ir.Get("/", s.handleGetVehicle)
				ir.Delete("/", s.handleDeleteVehicle)

				ir.Post("/fuel-loads", s.handleCreateFuelLoad)
				ir.Get("/fuel-loads", s.handleListFuelLoads)
				ir.Post("/oil-changes", s.handleCreateOilChange)
				ir.Get("/oil-changes", s.handleListOilChanges)
				ir.Post("/maintenances", s.handleCreateMaintenance)
				ir.Get("/maintenances", s.handleListMaintenances)

				ir.Get("/efficiency", s.handleEfficiency)
				ir.Get("/oil-change-due", s.handleOilChangeDue)
				ir.Get("/alerts", s.handleAlerts)
				ir.Get("/summary", s.handleMonthlySummary)
			})
		})
	})

	return r
}

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures are logged, not surfaced — headers are already written.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// vehicleIDParam parses the {vehicleID} URL parameter.
// Writes a 422 and returns false when it is not a valid UUID.
func vehicleIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
	if err != nil {
		writeValidationError(w, "vehicleID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
