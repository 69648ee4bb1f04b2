package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admVeloHub/call-analytics/internal/types"
)

func marchPeriod(t *testing.T) types.Period {
	t.Helper()
	p, err := ResolvePeriod(PeriodCustom, CustomBounds{Start: "01/03/2026", End: "31/03/2026"}, refNow)
	require.NoError(t, err)
	return p
}

func TestFilterByPeriodInclusivity(t *testing.T) {
	records := []types.CallRecord{
		{Date: "28/02/2026", Operator: "Ana"},
		{Date: "01/03/2026", Operator: "Bruna"}, // first day, included
		{Date: "2026-03-15", Operator: "Carla"},
		{Date: "31/03/2026", Operator: "Duda"}, // last day, included
		{Date: "01/04/2026", Operator: "Elisa"},
		{Date: "not a date", Operator: "Fabi"}, // unparsable, excluded
	}

	got := FilterByPeriod(records, marchPeriod(t))

	require.Len(t, got, 3)
	assert.Equal(t, "Bruna", got[0].Operator)
	assert.Equal(t, "Carla", got[1].Operator)
	assert.Equal(t, "Duda", got[2].Operator)
}

func TestFilterByPeriodEmptyResult(t *testing.T) {
	var records []types.CallRecord
	for day := 1; day <= 10; day++ {
		records = append(records, types.CallRecord{Date: time.Date(2026, 3, day, 0, 0, 0, 0, time.Local).Format("02/01/2006")})
	}

	april, err := ResolvePeriod(PeriodCustom, CustomBounds{Start: "01/04/2026", End: "30/04/2026"}, refNow)
	require.NoError(t, err)

	assert.Empty(t, FilterByPeriod(records, april))
}

func TestFilterByPeriodUnbounded(t *testing.T) {
	records := []types.CallRecord{
		{Date: "01/03/2026"},
		{Date: "garbage"}, // no date filter applies, kept
	}

	got := FilterByPeriod(records, types.Period{Unbounded: true})
	assert.Len(t, got, 2)
}

func TestExcludeInactiveOperators(t *testing.T) {
	records := []types.CallRecord{
		{Date: "15/03/2026", Operator: "Ana Souza"},
		{Date: "15/03/2026", Operator: "Bruno DESLIGADO"},
		{Date: "15/03/2026", Operator: "carla (excluido)"},
		{Date: "15/03/2026", Operator: "Duda Inativo"},
		{Date: "15/03/2026", Operator: "Edu Desl."},
		{Date: "15/03/2026", Operator: "Fernanda"},
	}

	got := Filter(records, marchPeriod(t), true)

	require.Len(t, got, 2)
	assert.Equal(t, "Ana Souza", got[0].Operator)
	assert.Equal(t, "Fernanda", got[1].Operator)
}

func TestFilterWithoutExclusionKeepsInactive(t *testing.T) {
	records := []types.CallRecord{
		{Date: "15/03/2026", Operator: "Bruno DESLIGADO"},
	}
	assert.Len(t, Filter(records, marchPeriod(t), false), 1)
}
