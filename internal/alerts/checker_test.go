package alerts

import (
	"testing"

	"github.com/admVeloHub/call-analytics/internal/types"
)

func operator(name string, total, evaluated int, avgAtt, answerRate, avgWait float64) types.OperatorMetrics {
	return types.OperatorMetrics{
		Operator: name,
		MetricsSnapshot: types.MetricsSnapshot{
			TotalCalls:          total,
			EvaluatedCalls:      evaluated,
			AvgRatingAttendance: avgAtt,
			AnswerRate:          answerRate,
			AvgWaitMinutes:      avgWait,
		},
	}
}

func TestCheckOperatorAlerts(t *testing.T) {
	tests := []struct {
		name         string
		op           types.OperatorMetrics
		wantRules    []string
		wantSeverity types.AlertSeverity
	}{
		{
			name:         "critical low rating",
			op:           operator("Ana", 20, 10, 1.5, 90, 1),
			wantRules:    []string{"low_rating"},
			wantSeverity: types.SeverityCritical,
		},
		{
			name:         "warning low rating",
			op:           operator("Bruna", 20, 10, 2.5, 90, 1),
			wantRules:    []string{"low_rating"},
			wantSeverity: types.SeverityWarning,
		},
		{
			name:         "low answer rate",
			op:           operator("Carla", 20, 10, 4.5, 40, 1),
			wantRules:    []string{"low_answer_rate"},
			wantSeverity: types.SeverityWarning,
		},
		{
			name:         "critical wait",
			op:           operator("Duda", 20, 10, 4.5, 90, 12),
			wantRules:    []string{"high_wait"},
			wantSeverity: types.SeverityCritical,
		},
		{
			name:      "healthy operator",
			op:        operator("Elisa", 20, 10, 4.8, 95, 0.5),
			wantRules: nil,
		},
		{
			name:      "too few calls for alerts",
			op:        operator("Fabi", 3, 1, 1.0, 0, 20),
			wantRules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckOperatorAlerts([]types.OperatorMetrics{tt.op})

			if len(got) != len(tt.wantRules) {
				t.Fatalf("expected %d alerts, got %d: %+v", len(tt.wantRules), len(got), got)
			}
			for i, rule := range tt.wantRules {
				if got[i].Rule != rule {
					t.Errorf("expected rule %s, got %s", rule, got[i].Rule)
				}
				if got[i].Severity != tt.wantSeverity {
					t.Errorf("expected severity %s, got %s", tt.wantSeverity, got[i].Severity)
				}
				if got[i].Operator != tt.op.Operator {
					t.Errorf("expected operator %s, got %s", tt.op.Operator, got[i].Operator)
				}
			}
		})
	}
}

func TestCheckOperatorAlertsMultipleRules(t *testing.T) {
	// One operator can trip several rules at once
	got := CheckOperatorAlerts([]types.OperatorMetrics{
		operator("Gina", 30, 10, 1.2, 20, 15),
	})

	if len(got) != 3 {
		t.Fatalf("expected 3 alerts, got %d: %+v", len(got), got)
	}
}
