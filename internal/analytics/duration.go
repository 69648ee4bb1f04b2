package analytics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)

// ParseMinutes converts a duration value into fractional minutes. Accepted
// shapes: H:MM:SS / HH:MM:SS text, a bare number (already minutes), or
// numeric text. Anything else yields 0. The result is never negative.
//
// The parser does not distinguish "missing" from "zero"; when that matters
// (the talk-duration and zero-inflation rules) the aggregator decides before
// calling in.
func ParseMinutes(v any) float64 {
	switch d := v.(type) {
	case float64:
		return nonNegative(d)
	case float32:
		return nonNegative(float64(d))
	case int:
		return nonNegative(float64(d))
	case int64:
		return nonNegative(float64(d))
	case string:
		return parseMinutesText(d)
	}
	return 0
}

func parseMinutesText(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if clockPattern.MatchString(s) {
		parts := strings.Split(s, ":")
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		sec, _ := strconv.Atoi(parts[2])
		return float64(h)*60 + float64(m) + float64(sec)/60
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return nonNegative(f)
	}

	return 0
}

func nonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// FormatMinutes renders fractional minutes as H:MM:SS text, the inverse of
// ParseMinutes for clock input: FormatMinutes(90) == "1:30:00".
func FormatMinutes(minutes float64) string {
	total := int(math.Round(nonNegative(minutes) * 60))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
