package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/syncbridge/syncbridge/internal/core"
)

// syncRequest is the inbound body for a sync call: a model key and the raw
// records to ingest under it.
type syncRequest struct {
	Model string        `json:"model"`
	Data  []core.Record `json:"data"`
}

// handleSync ingests one batch of records for a declared model.
// POST /api/v1/sync
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, &core.ValidationError{Field: "body", Message: "malformed JSON request body"})
		return
	}
	if req.Model == "" {
		s.respondError(w, r, &core.ValidationError{Field: "model", Message: "model is required"})
		return
	}
	if len(req.Data) > s.cfg.Sync.MaxBatchItems {
		s.respondError(w, r, &core.ValidationError{Field: "data", Message: "batch exceeds maximum item count"})
		return
	}

	result, err := s.service.Sync(r.Context(), req.Model, req.Data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Sync successful", result)
}

// modelInfo describes one registered model in the models listing.
type modelInfo struct {
	Key string `json:"key"`
}

// handleListModels lists the model keys accepted by the sync endpoint.
// GET /api/v1/models
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	descriptors := s.service.Models()
	models := make([]modelInfo, 0, len(descriptors))
	for _, d := range descriptors {
		models = append(models, modelInfo{Key: d.Key})
	}
	respond(w, http.StatusOK, "Models retrieved", models)
}

// handleListHistory returns a page of sync history entries, newest first.
// GET /api/v1/sync-history?page=&size=&status=
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	filter := core.HistoryFilter{
		Page: s.queryInt(r, "page", 1),
		Size: s.queryInt(r, "size", s.cfg.Sync.HistoryPageSize),
	}
	if filter.Size > s.cfg.Sync.HistoryMaxPageSize {
		filter.Size = s.cfg.Sync.HistoryMaxPageSize
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := core.ParseStatus(raw)
		if err != nil {
			s.respondError(w, r, &core.ValidationError{Field: "status", Message: err.Error()})
			return
		}
		filter.Status = &status
	}

	page, err := s.service.ListHistory(r.Context(), filter)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sync history retrieved", page)
}

// handleGetHistory returns one sync history entry by id.
// GET /api/v1/sync-history/{id}
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	entry, err := s.service.GetHistory(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sync history retrieved", entry)
}

// handleRetryHistory flips a failed entry back to pending_retry.
// POST /api/v1/sync-history/{id}/retry
func (s *Server) handleRetryHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	entry, err := s.service.Retry(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sync history queued for retry", entry)
}

// handleDeleteHistory removes a sync history entry.
// DELETE /api/v1/sync-history/{id}
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.service.DeleteHistory(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sync history deleted", nil)
}

// handleStats reports ledger entry counts per status plus the total.
// GET /api/v1/sync-history/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sync stats retrieved", stats)
}

// healthStatus is the body of a health check response.
type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// handleHealth reports service and database reachability.
// GET /api/v1/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := healthStatus{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(s.started).Truncate(time.Second).String(),
	}

	status := http.StatusOK
	if err := s.db.Ping(r.Context()); err != nil {
		health.Status = "degraded"
		health.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	respond(w, status, "Health check", health)
}

// pathID parses the {id} path parameter, responding with a validation error
// on malformed input.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		s.respondError(w, r, &core.ValidationError{Field: "id", Message: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func (s *Server) queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
