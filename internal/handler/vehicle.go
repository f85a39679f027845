package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
	"github.com/controlcar/backend/internal/middleware"
)

// createVehicleRequest is the body for POST /vehicles.
// OwnerID is optional: when omitted, the authenticated user becomes the owner.
type createVehicleRequest struct {
	OwnerID string `json:"owner_id,omitempty"`
	Plate   string `json:"plate"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
}

// handleCreateVehicle handles POST /vehicles.
func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "request body must be valid JSON")
		return
	}

	ownerID, err := resolveOwnerID(r, req.OwnerID)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	vehicle, err := domain.NewVehicle(ownerID, req.Plate, req.Make, req.Model, req.Year)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.vehicles.Register(r.Context(), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// handleListVehicles handles GET /vehicles.
func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": vehicles})
}

// handleGetVehicle handles GET /vehicles/{vehicleID}.
func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, vehicle)
}

// handleDeleteVehicle handles DELETE /vehicles/{vehicleID}.
func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleIDParam(w, r)
	if !ok {
		return
	}

	if err := s.vehicles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveOwnerID picks the vehicle owner: an explicit owner_id from the body
// wins; otherwise the authenticated user from the request context is used.
func resolveOwnerID(r *http.Request, explicit string) (uuid.UUID, error) {
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err != nil {
			return uuid.Nil, errors.New("owner_id must be a valid UUID")
		}
		return id, nil
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.UserID, nil
	}
	return uuid.Nil, errors.New("owner_id is required")
}
