package types

import "time"

// Period is an inclusive day-granular date range. Start is pinned to
// 00:00:00.000 and End to 23:59:59.999 of their respective days. Unbounded
// marks the "allRecords" selection (and the fallback for invalid custom
// bounds), where no date filtering applies at all.
type Period struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TotalDays int       `json:"totalDays"`
	Label     string    `json:"label"`
	Unbounded bool      `json:"unbounded,omitempty"`
}

// Contains reports whether t falls inside the period [Start, End]
func (p Period) Contains(t time.Time) bool {
	if p.Unbounded {
		return true
	}
	return !t.Before(p.Start) && !t.After(p.End)
}

// MetricsSnapshot is the company-wide aggregate over a record collection.
// Every rate and average is already rounded to one decimal and falls back to
// 0 on empty input; consumers never see NaN or a missing field.
type MetricsSnapshot struct {
	TotalCalls          int     `json:"totalCalls"`
	Answered            int     `json:"answered"`
	RetainedIVR         int     `json:"retainedIVR"`
	Abandoned           int     `json:"abandoned"`
	AnswerRate          float64 `json:"answerRate"`
	AbandonRate         float64 `json:"abandonRate"`
	AvgRatingAttendance float64 `json:"avgRatingAttendance"`
	AvgRatingSolution   float64 `json:"avgRatingSolution"`
	AvgTalkMinutes      float64 `json:"avgTalkMinutes"`
	AvgWaitMinutes      float64 `json:"avgWaitMinutes"`
	AvgIVRMinutes       float64 `json:"avgIVRMinutes"`
	EvaluatedCalls      int     `json:"evaluatedCalls"`
}

// OperatorMetrics is one operator's MetricsSnapshot plus the quality score
// (sum of the two average ratings, one decimal).
type OperatorMetrics struct {
	Operator string `json:"operator"`
	MetricsSnapshot
	Score float64 `json:"score"`
}

// RankingEntry is one row of the operator leaderboard
type RankingEntry struct {
	Position            int     `json:"position"`
	Operator            string  `json:"operator"`
	TotalCalls          int     `json:"totalCalls"`
	AvgTalkMinutes      float64 `json:"avgTalkMinutes"`
	AvgRatingAttendance float64 `json:"avgRatingAttendance"`
	AvgRatingSolution   float64 `json:"avgRatingSolution"`
	EvaluatedCalls      int     `json:"evaluatedCalls"`
	Score               float64 `json:"score"`
}

// MetricKind tags how a metric's direction should be read when comparing
// periods: for volume-like metrics an increase is favorable, for time-like
// metrics (durations) a decrease is favorable.
type MetricKind string

const (
	KindVolume MetricKind = "volume"
	KindTime   MetricKind = "time"
)

// Trend classifies a period-over-period movement after the favorable
// direction of the metric's kind has been applied.
type Trend string

const (
	TrendGrowth  Trend = "growth"
	TrendDecline Trend = "decline"
	TrendNeutral Trend = "neutral"
)

// MetricComparison is one tracked metric diffed between two periods
type MetricComparison struct {
	Metric       string     `json:"metric"`
	Kind         MetricKind `json:"kind"`
	Current      float64    `json:"currentValue"`
	Previous     float64    `json:"previousValue"`
	PercentDelta float64    `json:"percentDelta"`
	Trend        Trend      `json:"trend"`
}

// ComparisonReport is the full period-over-period comparison payload
type ComparisonReport struct {
	Current  PeriodSummary      `json:"current"`
	Previous PeriodSummary      `json:"previous"`
	Metrics  []MetricComparison `json:"metrics"`
}

// PeriodSummary pairs a period with its company-wide snapshot
type PeriodSummary struct {
	Period  Period          `json:"period"`
	Summary MetricsSnapshot `json:"summary"`
}

// AlertSeverity represents the severity of a quality alert
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// OperatorAlert flags an operator whose period metrics crossed a quality
// threshold. Purely informational, attached to the dashboard payload.
type OperatorAlert struct {
	Operator string        `json:"operator"`
	Rule     string        `json:"rule"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// DashboardSnapshot is the single payload served to the dashboard and pushed
// over the websocket after each refresh. Period is nil when no period token
// was selected (the UI then shows the unfiltered set without ranking or a
// period label — Ranking stays empty in that case too).
type DashboardSnapshot struct {
	Type      string            `json:"type"` // always "dashboard_snapshot"
	Timestamp time.Time         `json:"timestamp"`
	Period    *Period           `json:"period,omitempty"`
	Summary   MetricsSnapshot   `json:"summary"`
	Operators []OperatorMetrics `json:"operators"`
	Ranking   []RankingEntry    `json:"ranking"`
	Alerts    []OperatorAlert   `json:"alerts,omitempty"`
}
