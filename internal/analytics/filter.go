package analytics

import (
	"strings"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// Substrings that mark an operator name as disengaged (fired, removed,
// inactive). Matched case-insensitively against the full name.
var inactiveMarkers = []string{"desl", "excluido", "desligado", "inativo"}

// Filter returns the order-preserving subset of records inside the period,
// optionally dropping records of disengaged operators. Records whose date
// cannot be normalized are excluded from any bounded period.
func Filter(records []types.CallRecord, period types.Period, hideInactive bool) []types.CallRecord {
	out := FilterByPeriod(records, period)
	if hideInactive {
		out = ExcludeInactiveOperators(out)
	}
	return out
}

// FilterByPeriod keeps records whose normalized date d satisfies
// period.Start <= d <= period.End. An unbounded period passes everything.
func FilterByPeriod(records []types.CallRecord, period types.Period) []types.CallRecord {
	out := make([]types.CallRecord, 0, len(records))
	if period.Unbounded {
		return append(out, records...)
	}

	for _, r := range records {
		d, ok := NormalizeDate(r.Date)
		if !ok {
			continue
		}
		if period.Contains(d) {
			out = append(out, r)
		}
	}
	return out
}

// ExcludeInactiveOperators drops records whose operator name carries one of
// the disengagement markers.
func ExcludeInactiveOperators(records []types.CallRecord) []types.CallRecord {
	out := make([]types.CallRecord, 0, len(records))
	for _, r := range records {
		if IsInactiveOperator(r.Operator) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// IsInactiveOperator reports whether the operator name marks a disengaged
// operator.
func IsInactiveOperator(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range inactiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
