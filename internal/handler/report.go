package handler

import (
	"net/http"
	"strconv"
)

// efficiencyResponse is the body for GET /vehicles/{vehicleID}/efficiency.
type efficiencyResponse struct {
	EfficiencyKMPerL float64 `json:"efficiency_km_per_l"`
}

// oilChangeDueResponse is the body for GET /vehicles/{vehicleID}/oil-change-due.
type oilChangeDueResponse struct {
	DueAtKM float64 `json:"due_at_km"`
}

// handleEfficiency handles GET /vehicles/{vehicleID}/efficiency.
func (s *Server) handleEfficiency(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	efficiency, err := s.reports.Efficiency(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, efficiencyResponse{EfficiencyKMPerL: efficiency})
}

// handleOilChangeDue handles GET /vehicles/{vehicleID}/oil-change-due.
func (s *Server) handleOilChangeDue(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	due, err := s.reports.NextOilChangeDue(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, oilChangeDueResponse{DueAtKM: due})
}

// handleAlerts handles GET /vehicles/{vehicleID}/alerts?odometer=N.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	odometer, err := strconv.ParseFloat(r.URL.Query().Get("odometer"), 64)
	if err != nil {
		writeValidationError(w, "odometer query parameter is required and must be a number")
		return
	}

	alerts, err := s.reports.Alerts(r.Context(), vehicleID, odometer)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// handleMonthlySummary handles GET /vehicles/{vehicleID}/summary?month=M&year=Y.
func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		writeValidationError(w, "month query parameter is required and must be an integer")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeValidationError(w, "year query parameter is required and must be an integer")
		return
	}

	summary, err := s.reports.MonthlySummary(r.Context(), vehicleID, month, year)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
