package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/analytics"
	"github.com/admVeloHub/call-analytics/internal/cache"
)

// ComparisonHandler serves the month-over-month comparison view
type ComparisonHandler struct {
	cache  *cache.RecordCache
	logger zerolog.Logger
}

// NewComparisonHandler creates a new ComparisonHandler
func NewComparisonHandler(recordCache *cache.RecordCache, logger zerolog.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		cache:  recordCache,
		logger: logger.With().Str("component", "comparison_handler").Logger(),
	}
}

// GetComparison compares metrics across two periods. Without parameters it
// compares the last closed month against the one before it.
// GET /api/comparison?current=ultimoMes&previous=penultimoMes
// Custom bounds: currentStart/currentEnd and previousStart/previousEnd (DD/MM/YYYY)
func (h *ComparisonHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	current := resolvePeriod(q.Get("current"), q.Get("currentStart"), q.Get("currentEnd"), analytics.PeriodLastMonth)
	previous := resolvePeriod(q.Get("previous"), q.Get("previousStart"), q.Get("previousEnd"), analytics.PeriodPenultimateMonth)

	if current == nil || previous == nil {
		http.Error(w, `{"error":"both comparison periods must be resolvable"}`, http.StatusBadRequest)
		return
	}

	report := analytics.ComparePeriods(h.cache.Snapshot(), *previous, *current)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
