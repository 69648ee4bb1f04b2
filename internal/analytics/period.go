package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// Period tokens accepted by ResolvePeriod. The mixed English/Portuguese
// vocabulary is the wire contract with the dashboard frontend.
const (
	PeriodLast7Days        = "last7Days"
	PeriodLast15Days       = "last15Days"
	PeriodCurrentMonth     = "currentMonth"
	PeriodLastMonth        = "ultimoMes"
	PeriodPenultimateMonth = "penultimoMes"
	PeriodAllRecords       = "allRecords"
	PeriodCustom           = "custom"
)

// ErrNoPeriod signals that no period token was selected. Callers are expected
// to present the unfiltered record collection and suppress the ranking and
// period label, not to treat this as a failure.
var ErrNoPeriod = errors.New("no period selected")

// CustomBounds carries the explicit date pair for the "custom" token, each
// bound accepted as DD/MM/YYYY or YYYY-MM-DD text.
type CustomBounds struct {
	Start string
	End   string
}

// ResolvePeriod maps a period token (plus custom bounds when the token is
// "custom") and a reference instant into an inclusive day-granular Period.
// "allRecords" resolves to an unbounded period, and invalid custom bounds
// fall back to unbounded rather than failing the pipeline. An empty or
// unrecognized token returns ErrNoPeriod.
func ResolvePeriod(token string, custom CustomBounds, now time.Time) (types.Period, error) {
	switch token {
	case PeriodLast7Days:
		return lastNDays(now, 7, "Últimos 7 dias"), nil

	case PeriodLast15Days:
		return lastNDays(now, 15, "Últimos 15 dias"), nil

	case PeriodCurrentMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		end := DayEnd(now)
		return types.Period{
			Start:     start,
			End:       end,
			TotalDays: inclusiveDays(start, end),
			Label:     "Mês atual",
		}, nil

	case PeriodLastMonth:
		return wholeMonth(now, -1, "Mês passado"), nil

	case PeriodPenultimateMonth:
		return wholeMonth(now, -2, "Mês retrasado"), nil

	case PeriodAllRecords:
		return types.Period{Unbounded: true, Label: "Todos os registros"}, nil

	case PeriodCustom:
		return resolveCustom(custom), nil
	}

	return types.Period{}, ErrNoPeriod
}

func lastNDays(now time.Time, n int, label string) types.Period {
	start := DayStart(now.AddDate(0, 0, -(n - 1)))
	return types.Period{
		Start:     start,
		End:       DayEnd(now),
		TotalDays: n,
		Label:     label,
	}
}

// wholeMonth resolves the full calendar month `offset` months before now
func wholeMonth(now time.Time, offset int, label string) types.Period {
	first := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return types.Period{
		Start:     first,
		End:       DayEnd(last),
		TotalDays: inclusiveDays(first, last),
		Label:     label,
	}
}

func resolveCustom(custom CustomBounds) types.Period {
	start, okStart := NormalizeDate(custom.Start)
	end, okEnd := NormalizeDate(custom.End)
	if !okStart || !okEnd {
		// Missing or unparsable bounds degrade to the full collection
		return types.Period{Unbounded: true, Label: "Todos os registros"}
	}

	return types.Period{
		Start:     start,
		End:       DayEnd(end),
		TotalDays: inclusiveDays(start, end),
		Label:     fmt.Sprintf("%s a %s", start.Format("02/01/2006"), end.Format("02/01/2006")),
	}
}

func inclusiveDays(start, end time.Time) int {
	days := int(DayStart(end).Sub(DayStart(start)).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}
