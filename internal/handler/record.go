package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/controlcar/backend/internal/domain"
)

// dateLayout is the wire format for record dates. Records carry a calendar
// date, not a timestamp.
const dateLayout = "2006-01-02"

// createFuelLoadRequest is the body for POST /vehicles/{vehicleID}/fuel-loads.
type createFuelLoadRequest struct {
	Date       string  `json:"date"`
	Liters     float64 `json:"liters"`
	Cost       float64 `json:"cost"`
	OdometerKM float64 `json:"odometer_km"`
	FuelType   string  `json:"fuel_type"`
}

// createOilChangeRequest is the body for POST /vehicles/{vehicleID}/oil-changes.
type createOilChangeRequest struct {
	Date       string  `json:"date"`
	OilType    string  `json:"oil_type"`
	OdometerKM float64 `json:"odometer_km"`
	IntervalKM float64 `json:"interval_km"`
}

// createMaintenanceRequest is the body for POST /vehicles/{vehicleID}/maintenances.
type createMaintenanceRequest struct {
	Date            string  `json:"date"`
	MaintenanceType string  `json:"maintenance_type"`
	Cost            float64 `json:"cost"`
	Note            string  `json:"note,omitempty"`
}

// handleCreateFuelLoad handles POST /vehicles/{vehicleID}/fuel-loads.
func (s *Server) handleCreateFuelLoad(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	var req createFuelLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "request body must be valid JSON")
		return
	}
	date, ok := parseDate(w, req.Date)
	if !ok {
		return
	}

	load, err := domain.NewFuelLoad(vehicleID, date, req.Liters, req.Cost, req.OdometerKM, req.FuelType)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.records.RegisterFuelLoad(r.Context(), load)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// handleListFuelLoads handles GET /vehicles/{vehicleID}/fuel-loads.
func (s *Server) handleListFuelLoads(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	loads, err := s.records.ListFuelLoads(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": loads})
}

// handleCreateOilChange handles POST /vehicles/{vehicleID}/oil-changes.
func (s *Server) handleCreateOilChange(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	var req createOilChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "request body must be valid JSON")
		return
	}
	date, ok := parseDate(w, req.Date)
	if !ok {
		return
	}

	change, err := domain.NewOilChange(vehicleID, date, req.OilType, req.OdometerKM, req.IntervalKM)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.records.RegisterOilChange(r.Context(), change)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// handleListOilChanges handles GET /vehicles/{vehicleID}/oil-changes.
func (s *Server) handleListOilChanges(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	changes, err := s.records.ListOilChanges(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": changes})
}

// handleCreateMaintenance handles POST /vehicles/{vehicleID}/maintenances.
func (s *Server) handleCreateMaintenance(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	var req createMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "request body must be valid JSON")
		return
	}
	date, ok := parseDate(w, req.Date)
	if !ok {
		return
	}

	record, err := domain.NewMaintenanceRecord(vehicleID, date, req.MaintenanceType, req.Cost, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.records.RegisterMaintenance(r.Context(), record)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// handleListMaintenances handles GET /vehicles/{vehicleID}/maintenances.
func (s *Server) handleListMaintenances(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	records, err := s.records.ListMaintenances(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": records})
}

// parseDate parses a "YYYY-MM-DD" date. Writes a 422 and returns false when
// the value is missing or malformed.
func parseDate(w http.ResponseWriter, value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		writeValidationError(w, "date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return date, true
}
