package aggregator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/alerts"
	"github.com/admVeloHub/call-analytics/internal/analytics"
	"github.com/admVeloHub/call-analytics/internal/cache"
	"github.com/admVeloHub/call-analytics/internal/config"
	"github.com/admVeloHub/call-analytics/internal/metrics"
	"github.com/admVeloHub/call-analytics/internal/storage"
	"github.com/admVeloHub/call-analytics/internal/types"
)

// RecordSource delivers the full record collection from the export endpoint
type RecordSource interface {
	Fetch(ctx context.Context) ([]types.CallRecord, error)
}

// Broadcaster fans a payload out to the connected dashboard clients
type Broadcaster interface {
	Broadcast(message []byte)
	ClientCount() int
}

// Service periodically pulls the record export, swaps the in-memory
// collection and re-runs the analytics pipeline, pushing the resulting
// dashboard snapshot to every connected client. The pipeline itself is pure;
// this service is the only place that schedules it.
type Service struct {
	source RecordSource
	cache  *cache.RecordCache
	store  storage.Store
	hub    Broadcaster
	cfg    *config.Config
	logger zerolog.Logger
}

// NewService creates a new refresh service
func NewService(source RecordSource, recordCache *cache.RecordCache, store storage.Store, hub Broadcaster, cfg *config.Config, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		cache:  recordCache,
		store:  store,
		hub:    hub,
		cfg:    cfg,
		logger: logger.With().Str("component", "aggregator").Logger(),
	}
}

// Start begins the periodic refresh loop
func (s *Service) Start(ctx context.Context) {
	if s.source == nil {
		s.logger.Info().Msg("no record source configured, refresh loop disabled")
		return
	}

	s.logger.Info().Dur("interval", s.cfg.RefreshInterval).Msg("aggregator started")

	// Load immediately so the dashboard is not empty until the first tick
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error().Err(err).Msg("initial refresh failed")
	}

	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("aggregator stopped")
			return

		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Error().Err(err).Msg("refresh failed")
			}
		}
	}
}

// Refresh pulls the export, replaces the cached collection and recomputes.
// A failed pull keeps the previous collection; the dashboard degrades to
// stale data rather than to an error.
func (s *Service) Refresh(ctx context.Context) error {
	m := metrics.Get()
	start := time.Now()

	records, err := s.source.Fetch(ctx)
	if err != nil {
		m.RecordRefreshError()
		return err
	}

	s.cache.Replace(records)
	m.RecordRefresh(time.Since(start), len(records))

	s.Recompute(ctx)
	return nil
}

// Recompute runs the analytics pipeline over the cached collection,
// persists today's per-operator stats and broadcasts the fresh snapshot.
// Also invoked by the records receiver after a manual upload.
func (s *Service) Recompute(ctx context.Context) {
	start := time.Now()
	records := s.cache.Snapshot()

	var period *types.Period
	if p, err := analytics.ResolvePeriod(s.cfg.DefaultPeriod, analytics.CustomBounds{}, time.Now()); err == nil {
		period = &p
	}

	snapshot := BuildSnapshot(records, period, s.cfg.RankingLimit, s.cfg.HideInactive)
	metrics.Get().RecordPipelineRun(time.Since(start), len(snapshot.Operators))

	s.persistDailyStats(ctx, records)

	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal dashboard snapshot")
		return
	}
	s.hub.Broadcast(data)

	s.logger.Debug().
		Int("records", len(records)).
		Int("operators", len(snapshot.Operators)).
		Int("clients", s.hub.ClientCount()).
		Msg("dashboard snapshot broadcasted")
}

// persistDailyStats upserts today's per-operator aggregates. Keyed by
// operator and day, so re-running within the same day overwrites instead of
// duplicating. Storage failures are logged, never propagated.
func (s *Service) persistDailyStats(ctx context.Context, records []types.CallRecord) {
	now := time.Now()
	today, err := analytics.ResolvePeriod(analytics.PeriodCustom, analytics.CustomBounds{
		Start: now.Format("02/01/2006"),
		End:   now.Format("02/01/2006"),
	}, now)
	if err != nil {
		return
	}

	operators := analytics.AggregateOperators(analytics.FilterByPeriod(records, today))
	dateKey := now.Format("2006-01-02")

	for _, op := range operators {
		stats := types.OperatorDailyStats{
			Operator:            op.Operator,
			Date:                dateKey,
			TotalCalls:          op.TotalCalls,
			AnswerRate:          op.AnswerRate,
			AvgRatingAttendance: op.AvgRatingAttendance,
			AvgRatingSolution:   op.AvgRatingSolution,
			AvgTalkMinutes:      op.AvgTalkMinutes,
			AvgWaitMinutes:      op.AvgWaitMinutes,
			EvaluatedCalls:      op.EvaluatedCalls,
			Score:               op.Score,
		}
		if err := s.store.SaveOperatorDailyStats(ctx, stats); err != nil {
			s.logger.Error().Err(err).Str("operator", op.Operator).Msg("failed to persist daily stats")
		}
	}
}

// BuildSnapshot runs the full pure pipeline for one period selection. A nil
// period means "no period selected": the whole collection is summarized and
// the ranking is suppressed, matching what the dashboard expects in that
// state. Both the HTTP handler and the refresh loop go through here, so the
// broadcast payload and the REST payload can never drift apart.
func BuildSnapshot(records []types.CallRecord, period *types.Period, rankingLimit int, hideInactive bool) types.DashboardSnapshot {
	filtered := records
	if period != nil {
		filtered = analytics.Filter(records, *period, hideInactive)
	} else if hideInactive {
		filtered = analytics.ExcludeInactiveOperators(records)
	}

	operators := analytics.AggregateOperators(filtered)

	ranking := []types.RankingEntry{}
	if period != nil {
		ranking = analytics.BuildRanking(operators, rankingLimit)
	}

	return types.DashboardSnapshot{
		Type:      "dashboard_snapshot",
		Timestamp: time.Now(),
		Period:    period,
		Summary:   analytics.Summarize(filtered),
		Operators: operators,
		Ranking:   ranking,
		Alerts:    alerts.CheckOperatorAlerts(operators),
	}
}
