package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"hour and a half", "01:30:00", 90},
		{"two minutes", "00:02:00", 2},
		{"thirty seconds", "0:00:30", 0.5},
		{"single digit hour", "1:05:00", 65},
		{"zero clock", "00:00:00", 0},
		{"bare float", 12.5, 12.5},
		{"bare int", 7, 7},
		{"numeric text", "12.5", 12.5},
		{"negative clamps to zero", -3.0, 0},
		{"negative text clamps to zero", "-3", 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"partial clock", "01:30", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseMinutes(tt.input), 1e-9)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    string
	}{
		{"hour and a half", 90, "1:30:00"},
		{"zero", 0, "0:00:00"},
		{"fractional", 125.5, "2:05:30"},
		{"under a minute", 0.5, "0:00:30"},
		{"negative renders as zero", -10, "0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	assert.InDelta(t, 90.0, ParseMinutes(FormatMinutes(90)), 1e-9)
	assert.Equal(t, "1:30:00", FormatMinutes(ParseMinutes("01:30:00")))
}
