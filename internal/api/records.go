package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/analytics"
	"github.com/admVeloHub/call-analytics/internal/cache"
	"github.com/admVeloHub/call-analytics/internal/ingest"
	"github.com/admVeloHub/call-analytics/internal/metrics"
	"github.com/admVeloHub/call-analytics/internal/storage"
	"github.com/admVeloHub/call-analytics/internal/types"
)

const maxUploadBytes = 32 << 20

// Recomputer re-runs the analytics pipeline and pushes the result to
// connected clients
type Recomputer interface {
	Recompute(ctx context.Context)
}

// RecordsHandler receives manual record uploads and reports collection stats.
// Uploads replace the whole in-memory collection, matching the semantics of
// the periodic export pull.
type RecordsHandler struct {
	cache      *cache.RecordCache
	store      storage.Store
	recomputer Recomputer
	logger     zerolog.Logger
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(recordCache *cache.RecordCache, store storage.Store, recomputer Recomputer, logger zerolog.Logger) *RecordsHandler {
	return &RecordsHandler{
		cache:      recordCache,
		store:      store,
		recomputer: recomputer,
		logger:     logger.With().Str("component", "records_handler").Logger(),
	}
}

// ReceiveRecords replaces the record collection with the uploaded payload.
// The body may be an array of row objects or of positional row arrays;
// both shapes are accepted, mixed freely.
// POST /internal/records
func (h *RecordsHandler) ReceiveRecords(w http.ResponseWriter, r *http.Request) {
	m := metrics.Get()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		m.RecordIngestError()
		http.Error(w, `{"error":"failed to read request body"}`, http.StatusBadRequest)
		return
	}

	records, err := ingest.DecodeRows(body)
	if err != nil {
		m.RecordIngestError()
		h.logger.Warn().Err(err).Msg("rejected records upload")
		http.Error(w, `{"error":"body must be a JSON array of rows"}`, http.StatusBadRequest)
		return
	}

	h.cache.Replace(records)
	m.RecordRowsIngested(len(records))

	persisted := h.persist(r.Context(), records)
	h.recomputer.Recompute(r.Context())

	h.logger.Info().
		Int("records", len(records)).
		Int("persisted", persisted).
		Msg("record collection replaced via upload")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "records replaced",
		"received":  len(records),
		"persisted": persisted,
	})
}

// persist archives the uploaded rows by day. Rows whose date cannot be
// normalized have no partition key and are skipped. Storage failures are
// logged but never fail the upload; the in-memory collection is already live.
func (h *RecordsHandler) persist(ctx context.Context, records []types.CallRecord) int {
	stored := make([]types.StoredCallRecord, 0, len(records))
	for _, rec := range records {
		day, ok := analytics.NormalizeDate(rec.Date)
		if !ok {
			continue
		}
		stored = append(stored, types.StoredCallRecord{
			DateKey:          day.Format("2006-01-02"),
			RecordID:         uuid.NewString(),
			Date:             rec.Date,
			Hour:             rec.Hour,
			Operator:         rec.Operator,
			Outcome:          rec.Outcome,
			RatingAttendance: rec.RatingAttendance,
			RatingSolution:   rec.RatingSolution,
			TalkDuration:     rec.TalkDuration,
			WaitDuration:     rec.WaitDuration,
			IVRDuration:      rec.IVRDuration,
		})
	}

	if len(stored) == 0 {
		return 0
	}
	if err := h.store.SaveCallRecords(ctx, stored); err != nil {
		h.logger.Error().Err(err).Int("records", len(stored)).Msg("failed to archive records")
		return 0
	}
	return len(stored)
}

// GetStats reports the size and freshness of the in-memory collection
// GET /internal/records/stats
func (h *RecordsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	updated := h.cache.LastUpdated()

	resp := map[string]interface{}{
		"records": h.cache.Size(),
	}
	if !updated.IsZero() {
		resp["lastUpdated"] = updated.Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
