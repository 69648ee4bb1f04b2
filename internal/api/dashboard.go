package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/aggregator"
	"github.com/admVeloHub/call-analytics/internal/analytics"
	"github.com/admVeloHub/call-analytics/internal/cache"
	"github.com/admVeloHub/call-analytics/internal/config"
	"github.com/admVeloHub/call-analytics/internal/types"
)

// DashboardHandler serves the aggregated dashboard view over REST. It runs
// the same pipeline the refresh loop broadcasts, so polling clients and
// websocket clients always see identical numbers.
type DashboardHandler struct {
	cache  *cache.RecordCache
	cfg    *config.Config
	logger zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(recordCache *cache.RecordCache, cfg *config.Config, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		cache:  recordCache,
		cfg:    cfg,
		logger: logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// resolvePeriod reads a period selection from query parameters. A nil result
// means no period was selected: the caller serves the unfiltered collection
// with the ranking suppressed.
func resolvePeriod(token, customStart, customEnd, defaultToken string) *types.Period {
	if token == "" {
		token = defaultToken
	}

	custom := analytics.CustomBounds{Start: customStart, End: customEnd}

	period, err := analytics.ResolvePeriod(token, custom, time.Now())
	if errors.Is(err, analytics.ErrNoPeriod) {
		return nil
	}
	return &period
}

// GetDashboard returns summary, per-operator metrics, ranking and alerts
// for the requested period
// GET /api/dashboard?period=last7Days&customStart=DD/MM/YYYY&customEnd=DD/MM/YYYY&hideInactive=true
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	period := resolvePeriod(q.Get("period"), q.Get("customStart"), q.Get("customEnd"), h.cfg.DefaultPeriod)

	hideInactive := h.cfg.HideInactive
	if raw := q.Get("hideInactive"); raw != "" {
		if v, perr := strconv.ParseBool(raw); perr == nil {
			hideInactive = v
		}
	}

	snapshot := aggregator.BuildSnapshot(h.cache.Snapshot(), period, h.cfg.RankingLimit, hideInactive)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
