// Package api exposes the four library operations over HTTP. It is the
// external dispatch layer: a thin binding that parses already simple
// arguments and passes records through unchanged. All operation endpoints
// answer 200 with a well-formed record; failures are inside the records.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
)

// Handler binds the library facade to HTTP endpoints.
type Handler struct {
	lib     *library.Library
	version string
}

// NewHandler creates a Handler for the given facade.
func NewHandler(lib *library.Library, version string) *Handler {
	return &Handler{lib: lib, version: version}
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the payload for dispatch-level failures (bad routes,
// rate limits); operation-level failures live inside operation records.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// ListPapers handles GET /api/v1/papers?offset=&limit=.
// Absent or malformed parameters fall back to offset 0 and the default
// page size, matching the facade's own coercion.
func (h *Handler) ListPapers(w http.ResponseWriter, r *http.Request) {
	offset := intParam(r, "offset", 0)
	limit := intParam(r, "limit", 0)
	writeJSON(w, http.StatusOK, h.lib.ListPapers(offset, limit))
}

// SearchPapers handles GET /api/v1/papers/search?query=.
func (h *Handler) SearchPapers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lib.SearchPapers(r.URL.Query().Get("query")))
}

// ReadPaper handles GET /api/v1/papers/text?title=.
func (h *Handler) ReadPaper(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lib.ReadPaper(r.URL.Query().Get("title")))
}

// RefreshBackup handles POST /api/v1/backup/refresh.
func (h *Handler) RefreshBackup(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lib.RefreshBackup())
}

// intParam reads an integer query parameter, falling back on absence or a
// malformed value.
func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}
