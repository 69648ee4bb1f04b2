// Package ingest is the boundary between the raw telephony export and the
// analytics pipeline. The export delivers rows either as JSON objects or as
// positional arrays (the legacy spreadsheet layout); everything is converted
// to the canonical CallRecord here so no downstream code ever sniffs shapes.
package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// Column positions of the legacy spreadsheet export. Operator, the three
// durations and the two ratings are the contract inherited from the sheet;
// date, hour and outcome ride in the same layout.
const (
	colDate             = 0
	colOperator         = 1
	colHour             = 2
	colIVRDuration      = 11
	colWaitDuration     = 12
	colTalkDuration     = 14
	colOutcome          = 16
	colRatingAttendance = 27
	colRatingSolution   = 28
)

// DecodeRows parses a JSON array of rows (object or positional form, freely
// mixed) into canonical records. Only the envelope not being a JSON array is
// an error; individual malformed rows are skipped.
func DecodeRows(data []byte) ([]types.CallRecord, error) {
	var rows []any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("rows payload is not a JSON array: %w", err)
	}
	return AdaptRows(rows), nil
}

// AdaptRows converts decoded rows into canonical records, dropping rows of
// neither supported shape.
func AdaptRows(rows []any) []types.CallRecord {
	out := make([]types.CallRecord, 0, len(rows))
	for _, row := range rows {
		if r, ok := adaptRow(row); ok {
			out = append(out, r)
		}
	}
	return out
}

func adaptRow(row any) (types.CallRecord, bool) {
	switch v := row.(type) {
	case map[string]any:
		return adaptObject(v), true
	case []any:
		return adaptArray(v), true
	}
	return types.CallRecord{}, false
}

func adaptObject(m map[string]any) types.CallRecord {
	return types.CallRecord{
		Date:             textValue(m["date"]),
		Hour:             textValue(m["hour"]),
		Operator:         textValue(m["operator"]),
		Outcome:          textValue(m["callOutcome"]),
		RatingAttendance: ratingValue(m["ratingAttendance"]),
		RatingSolution:   ratingValue(m["ratingSolution"]),
		TalkDuration:     textValue(m["talkDuration"]),
		WaitDuration:     textValue(m["waitDuration"]),
		IVRDuration:      textValue(m["ivrDuration"]),
	}
}

func adaptArray(cells []any) types.CallRecord {
	return types.CallRecord{
		Date:             textValue(cellAt(cells, colDate)),
		Hour:             textValue(cellAt(cells, colHour)),
		Operator:         textValue(cellAt(cells, colOperator)),
		Outcome:          textValue(cellAt(cells, colOutcome)),
		RatingAttendance: ratingValue(cellAt(cells, colRatingAttendance)),
		RatingSolution:   ratingValue(cellAt(cells, colRatingSolution)),
		TalkDuration:     textValue(cellAt(cells, colTalkDuration)),
		WaitDuration:     textValue(cellAt(cells, colWaitDuration)),
		IVRDuration:      textValue(cellAt(cells, colIVRDuration)),
	}
}

func cellAt(cells []any, i int) any {
	if i < 0 || i >= len(cells) {
		return nil
	}
	return cells[i]
}

// textValue renders a cell as trimmed text. Numeric cells are formatted so
// the duration parser can still read bare-number durations.
func textValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// ratingValue coerces a rating cell into a number, or nil when the cell is
// missing or non-numeric. Range validation happens in the aggregator; "6"
// comes through here and is discarded there.
func ratingValue(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}
