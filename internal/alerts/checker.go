package alerts

import (
	"fmt"

	"github.com/admVeloHub/call-analytics/internal/analytics"
	"github.com/admVeloHub/call-analytics/internal/types"
)

// Thresholds for the quality rules. Operators with too little data are
// skipped so a single bad call does not page anyone.
const (
	minCallsForAlerts   = 10
	minRatedForAlerts   = 5
	lowRatingWarning    = 3.0
	lowRatingCritical   = 2.0
	lowAnswerRateLimit  = 50.0
	highWaitWarningMin  = 5.0
	highWaitCriticalMin = 10.0
)

// CheckOperatorAlerts evaluates the quality rules over a period's operator
// metrics and returns the alerts to attach to the dashboard snapshot.
func CheckOperatorAlerts(operators []types.OperatorMetrics) []types.OperatorAlert {
	var out []types.OperatorAlert

	for _, op := range operators {
		if op.EvaluatedCalls >= minRatedForAlerts {
			switch {
			case op.AvgRatingAttendance < lowRatingCritical:
				out = append(out, types.OperatorAlert{
					Operator: op.Operator,
					Rule:     "low_rating",
					Severity: types.SeverityCritical,
					Message:  fmt.Sprintf("nota média de atendimento %.1f", op.AvgRatingAttendance),
				})
			case op.AvgRatingAttendance < lowRatingWarning:
				out = append(out, types.OperatorAlert{
					Operator: op.Operator,
					Rule:     "low_rating",
					Severity: types.SeverityWarning,
					Message:  fmt.Sprintf("nota média de atendimento %.1f", op.AvgRatingAttendance),
				})
			}
		}

		if op.TotalCalls >= minCallsForAlerts && op.AnswerRate < lowAnswerRateLimit {
			out = append(out, types.OperatorAlert{
				Operator: op.Operator,
				Rule:     "low_answer_rate",
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("taxa de atendimento %.1f%%", op.AnswerRate),
			})
		}

		if op.TotalCalls >= minCallsForAlerts {
			switch {
			case op.AvgWaitMinutes > highWaitCriticalMin:
				out = append(out, types.OperatorAlert{
					Operator: op.Operator,
					Rule:     "high_wait",
					Severity: types.SeverityCritical,
					Message:  fmt.Sprintf("espera média de %s", analytics.FormatMinutes(op.AvgWaitMinutes)),
				})
			case op.AvgWaitMinutes > highWaitWarningMin:
				out = append(out, types.OperatorAlert{
					Operator: op.Operator,
					Rule:     "high_wait",
					Severity: types.SeverityWarning,
					Message:  fmt.Sprintf("espera média de %s", analytics.FormatMinutes(op.AvgWaitMinutes)),
				})
			}
		}
	}

	return out
}
