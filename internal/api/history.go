package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/storage"
	"github.com/admVeloHub/call-analytics/internal/types"
)

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// HistoryHandler serves archived data from the store: per-operator daily
// stats and raw call records by day
type HistoryHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(store storage.Store, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{
		store:  store,
		logger: logger.With().Str("component", "history_handler").Logger(),
	}
}

// GetOperatorHistory returns archived daily stats for one operator
// GET /api/operators/{operator}/history
func (h *HistoryHandler) GetOperatorHistory(w http.ResponseWriter, r *http.Request) {
	operator := chi.URLParam(r, "operator")
	if operator == "" {
		http.Error(w, "operator is required", http.StatusBadRequest)
		return
	}

	stats, err := h.store.GetOperatorDailyStats(r.Context(), operator)
	if err != nil {
		h.logger.Error().Err(err).Str("operator", operator).Msg("failed to get operator daily stats")
		http.Error(w, "failed to retrieve history", http.StatusInternalServerError)
		return
	}

	if stats == nil {
		stats = []types.OperatorDailyStats{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetRecordsByDate returns archived call records for one day
// GET /api/records?date=YYYY-MM-DD
func (h *HistoryHandler) GetRecordsByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !dateKeyPattern.MatchString(date) {
		http.Error(w, "date query parameter is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	stored, err := h.store.GetCallRecords(r.Context(), date)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("failed to get call records")
		http.Error(w, "failed to retrieve records", http.StatusInternalServerError)
		return
	}

	records := make([]types.CallRecord, 0, len(stored))
	for _, s := range stored {
		records = append(records, s.Record())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
