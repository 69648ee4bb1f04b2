package ingest

import (
	"testing"

	"github.com/admVeloHub/call-analytics/internal/types"
)

func TestDecodeRowsObjectShape(t *testing.T) {
	payload := `[
		{"date":"15/03/2026","hour":"09:30:00","operator":"Ana","callOutcome":"Atendida",
		 "ratingAttendance":4,"ratingSolution":"5","talkDuration":"00:05:00",
		 "waitDuration":"00:00:30","ivrDuration":"00:01:00"}
	]`

	records, err := DecodeRows([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Date != "15/03/2026" {
		t.Errorf("expected date 15/03/2026, got %s", r.Date)
	}
	if r.Operator != "Ana" {
		t.Errorf("expected operator Ana, got %s", r.Operator)
	}
	if r.Outcome != types.OutcomeAnswered {
		t.Errorf("expected outcome %s, got %s", types.OutcomeAnswered, r.Outcome)
	}
	if r.RatingAttendance == nil || *r.RatingAttendance != 4 {
		t.Errorf("expected attendance rating 4, got %v", r.RatingAttendance)
	}
	if r.RatingSolution == nil || *r.RatingSolution != 5 {
		t.Errorf("expected solution rating 5 from numeric text, got %v", r.RatingSolution)
	}
	if r.TalkDuration != "00:05:00" {
		t.Errorf("expected talk duration 00:05:00, got %s", r.TalkDuration)
	}
}

func TestDecodeRowsPositionalShape(t *testing.T) {
	// 29-column sheet row with only the mapped positions filled
	cells := make([]any, 29)
	cells[colDate] = "15/03/2026"
	cells[colOperator] = "Bruna"
	cells[colHour] = "10:00:00"
	cells[colIVRDuration] = "00:01:00"
	cells[colWaitDuration] = "00:00:45"
	cells[colTalkDuration] = "00:07:30"
	cells[colOutcome] = "Abandonada"
	cells[colRatingAttendance] = float64(3)
	cells[colRatingSolution] = "abc" // non-numeric, must come through as absent

	records := AdaptRows([]any{cells})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Operator != "Bruna" {
		t.Errorf("expected operator Bruna, got %s", r.Operator)
	}
	if r.Outcome != types.OutcomeAbandoned {
		t.Errorf("expected outcome Abandonada, got %s", r.Outcome)
	}
	if r.WaitDuration != "00:00:45" {
		t.Errorf("expected wait duration 00:00:45, got %s", r.WaitDuration)
	}
	if r.RatingAttendance == nil || *r.RatingAttendance != 3 {
		t.Errorf("expected attendance rating 3, got %v", r.RatingAttendance)
	}
	if r.RatingSolution != nil {
		t.Errorf("expected absent solution rating, got %v", *r.RatingSolution)
	}
}

func TestDecodeRowsMixedShapes(t *testing.T) {
	payload := `[
		{"date":"15/03/2026","operator":"Ana"},
		["16/03/2026","Bruna"],
		"not a row",
		42,
		null
	]`

	records, err := DecodeRows([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records (malformed rows skipped), got %d", len(records))
	}
	if records[0].Operator != "Ana" || records[1].Operator != "Bruna" {
		t.Errorf("unexpected operators: %s, %s", records[0].Operator, records[1].Operator)
	}
}

func TestDecodeRowsShortArray(t *testing.T) {
	// Rows shorter than the rating columns must not panic
	records := AdaptRows([]any{[]any{"15/03/2026", "Carla"}})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].RatingAttendance != nil {
		t.Error("expected absent rating for short row")
	}
	if records[0].TalkDuration != "" {
		t.Errorf("expected empty talk duration, got %s", records[0].TalkDuration)
	}
}

func TestDecodeRowsBadEnvelope(t *testing.T) {
	if _, err := DecodeRows([]byte(`{"rows": []}`)); err == nil {
		t.Error("expected error for non-array payload")
	}
	if _, err := DecodeRows([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestRatingValueCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"number", float64(4), ptr(4)},
		{"numeric text", "4", ptr(4)},
		{"out of range passes through", float64(6), ptr(6)},
		{"garbage text", "abc", nil},
		{"empty text", "", nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ratingValue(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }
