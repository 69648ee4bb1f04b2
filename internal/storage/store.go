package storage

import (
	"context"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// Store defines the persistence interface. Persistence is optional: the
// analytics pipeline runs entirely from the in-memory record cache, the
// store only keeps history for the record and operator-history endpoints.
type Store interface {
	SaveCallRecords(ctx context.Context, records []types.StoredCallRecord) error
	GetCallRecords(ctx context.Context, dateKey string) ([]types.StoredCallRecord, error)
	SaveOperatorDailyStats(ctx context.Context, stats types.OperatorDailyStats) error
	GetOperatorDailyStats(ctx context.Context, operator string) ([]types.OperatorDailyStats, error)
	TruncateAll(ctx context.Context) error
}

// NoopStore is a no-op implementation when DynamoDB is disabled
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (s *NoopStore) SaveCallRecords(_ context.Context, _ []types.StoredCallRecord) error { return nil }
func (s *NoopStore) GetCallRecords(_ context.Context, _ string) ([]types.StoredCallRecord, error) {
	return nil, nil
}
func (s *NoopStore) SaveOperatorDailyStats(_ context.Context, _ types.OperatorDailyStats) error {
	return nil
}
func (s *NoopStore) GetOperatorDailyStats(_ context.Context, _ string) ([]types.OperatorDailyStats, error) {
	return nil, nil
}
func (s *NoopStore) TruncateAll(_ context.Context) error { return nil }
