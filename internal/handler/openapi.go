package handler

import (
	"net/http"

	"github.com/controlcar/backend/spec"
)

// handleOpenAPI handles GET /openapi.yaml. Serving the embedded document means
// the spec and the running code are always shipped together.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
