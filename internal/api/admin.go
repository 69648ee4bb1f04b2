package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/cache"
	"github.com/admVeloHub/call-analytics/internal/storage"
)

// RefreshService triggers pulls and pipeline runs on demand
type RefreshService interface {
	Refresh(ctx context.Context) error
	Recompute(ctx context.Context)
}

// AdminHandler handles operational endpoints: forced refreshes and resets
type AdminHandler struct {
	refresher RefreshService
	cache     *cache.RecordCache
	store     storage.Store
	logger    zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(refresher RefreshService, recordCache *cache.RecordCache, store storage.Store, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		cache:     recordCache,
		store:     store,
		logger:    logger.With().Str("component", "admin_handler").Logger(),
	}
}

// TriggerRefresh pulls the export immediately instead of waiting for the
// next tick
// POST /api/admin/refresh
func (h *AdminHandler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("manual refresh failed")
		http.Error(w, fmt.Sprintf(`{"error":"refresh failed: %s"}`, err), http.StatusBadGateway)
		return
	}

	h.logger.Info().Msg("manual refresh completed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "refresh completed",
		"records": h.cache.Size(),
	})
}

// Reset clears the in-memory collection, truncates the archive tables and
// broadcasts the resulting empty dashboard
// POST /api/admin/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	cleared := h.cache.Size()
	h.cache.Replace(nil)

	if err := h.store.TruncateAll(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to truncate archive tables")
		http.Error(w, fmt.Sprintf(`{"error":"failed to truncate: %s"}`, err), http.StatusInternalServerError)
		return
	}

	h.refresher.Recompute(r.Context())

	h.logger.Info().Int("cleared", cleared).Msg("collection and archive reset")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":        "collection and archive reset",
		"recordsCleared": cleared,
	})
}
