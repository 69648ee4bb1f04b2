package cache

import (
	"sync"
	"time"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// RecordCache holds the current call-record collection in memory. The
// collection is only ever replaced wholesale: a refresh swaps the whole
// slice, so readers never observe a partially loaded dataset.
type RecordCache struct {
	records []types.CallRecord
	updated time.Time
	mu      sync.RWMutex
}

// NewRecordCache creates an empty record cache
func NewRecordCache() *RecordCache {
	return &RecordCache{}
}

// Replace swaps in a new record collection
func (c *RecordCache) Replace(records []types.CallRecord) {
	copied := make([]types.CallRecord, len(records))
	copy(copied, records)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = copied
	c.updated = time.Now()
}

// Snapshot returns a copy of the current collection. The copy keeps the
// analytics pipeline pure: no caller can mutate what another reader sees.
func (c *RecordCache) Snapshot() []types.CallRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.CallRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Size returns the current number of cached records
func (c *RecordCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// LastUpdated returns when the collection was last replaced
func (c *RecordCache) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updated
}
