package analytics

import (
	"github.com/admVeloHub/call-analytics/internal/types"
)

// trendThreshold is the percent movement below which a metric is neutral
const trendThreshold = 5.0

type trackedMetric struct {
	name  string
	kind  types.MetricKind
	value func(types.MetricsSnapshot) float64
}

// The tracked comparison metrics. The kind tag is what decides the favorable
// direction; it is never inferred from the metric name.
var trackedMetrics = []trackedMetric{
	{"totalCalls", types.KindVolume, func(s types.MetricsSnapshot) float64 { return float64(s.TotalCalls) }},
	{"answered", types.KindVolume, func(s types.MetricsSnapshot) float64 { return float64(s.Answered) }},
	{"answerRate", types.KindVolume, func(s types.MetricsSnapshot) float64 { return s.AnswerRate }},
	{"abandonRate", types.KindVolume, func(s types.MetricsSnapshot) float64 { return s.AbandonRate }},
	{"avgRatingAttendance", types.KindVolume, func(s types.MetricsSnapshot) float64 { return s.AvgRatingAttendance }},
	{"avgRatingSolution", types.KindVolume, func(s types.MetricsSnapshot) float64 { return s.AvgRatingSolution }},
	{"evaluatedCalls", types.KindVolume, func(s types.MetricsSnapshot) float64 { return float64(s.EvaluatedCalls) }},
	{"avgTalkMinutes", types.KindTime, func(s types.MetricsSnapshot) float64 { return s.AvgTalkMinutes }},
	{"avgWaitMinutes", types.KindTime, func(s types.MetricsSnapshot) float64 { return s.AvgWaitMinutes }},
	{"avgIVRMinutes", types.KindTime, func(s types.MetricsSnapshot) float64 { return s.AvgIVRMinutes }},
}

// ComparePeriods filters and summarizes the collection once per period and
// diffs the two snapshots metric by metric. Only the company-wide snapshot
// participates; no operator breakdown is computed here.
func ComparePeriods(records []types.CallRecord, previous, current types.Period) types.ComparisonReport {
	prevSnapshot := Summarize(FilterByPeriod(records, previous))
	curSnapshot := Summarize(FilterByPeriod(records, current))

	metrics := make([]types.MetricComparison, 0, len(trackedMetrics))
	for _, m := range trackedMetrics {
		prevValue := m.value(prevSnapshot)
		curValue := m.value(curSnapshot)
		delta := PercentDelta(curValue, prevValue)

		metrics = append(metrics, types.MetricComparison{
			Metric:       m.name,
			Kind:         m.kind,
			Current:      curValue,
			Previous:     prevValue,
			PercentDelta: delta,
			Trend:        ClassifyTrend(delta, m.kind),
		})
	}

	return types.ComparisonReport{
		Previous: types.PeriodSummary{Period: previous, Summary: prevSnapshot},
		Current:  types.PeriodSummary{Period: current, Summary: curSnapshot},
		Metrics:  metrics,
	}
}

// PercentDelta is the relative movement from previous to current, in
// percent, rounded to one decimal. A zero baseline yields 0 rather than a
// division error.
func PercentDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// ClassifyTrend maps a raw percent movement to a displayed trend. For
// time-like metrics a decrease is favorable, so the growth and decline
// labels are swapped relative to volume-like metrics.
func ClassifyTrend(delta float64, kind types.MetricKind) types.Trend {
	var t types.Trend
	switch {
	case delta > trendThreshold:
		t = types.TrendGrowth
	case delta < -trendThreshold:
		t = types.TrendDecline
	default:
		return types.TrendNeutral
	}

	if kind == types.KindTime {
		if t == types.TrendGrowth {
			return types.TrendDecline
		}
		return types.TrendGrowth
	}
	return t
}
