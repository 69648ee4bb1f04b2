package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 8, 20, 14, 30, 0, 0, time.Local)

func TestResolvePeriodNamedTokens(t *testing.T) {
	tests := []struct {
		token     string
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
		wantLabel string
	}{
		{
			token:     PeriodLast7Days,
			wantStart: time.Date(2026, 8, 14, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 20, 23, 59, 59, 999e6, time.Local),
			wantDays:  7,
			wantLabel: "Últimos 7 dias",
		},
		{
			token:     PeriodLast15Days,
			wantStart: time.Date(2026, 8, 6, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 20, 23, 59, 59, 999e6, time.Local),
			wantDays:  15,
			wantLabel: "Últimos 15 dias",
		},
		{
			token:     PeriodCurrentMonth,
			wantStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 20, 23, 59, 59, 999e6, time.Local),
			wantDays:  20,
			wantLabel: "Mês atual",
		},
		{
			token:     PeriodLastMonth,
			wantStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 7, 31, 23, 59, 59, 999e6, time.Local),
			wantDays:  31,
			wantLabel: "Mês passado",
		},
		{
			token:     PeriodPenultimateMonth,
			wantStart: time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 6, 30, 23, 59, 59, 999e6, time.Local),
			wantDays:  30,
			wantLabel: "Mês retrasado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ResolvePeriod(tt.token, CustomBounds{}, refNow)
			require.NoError(t, err)
			assert.False(t, p.Unbounded)
			assert.True(t, p.Start.Equal(tt.wantStart), "start: got %v want %v", p.Start, tt.wantStart)
			assert.True(t, p.End.Equal(tt.wantEnd), "end: got %v want %v", p.End, tt.wantEnd)
			assert.Equal(t, tt.wantDays, p.TotalDays)
			assert.Equal(t, tt.wantLabel, p.Label)
		})
	}
}

func TestResolvePeriodMonthTokensAcrossYearBoundary(t *testing.T) {
	january := time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)

	p, err := ResolvePeriod(PeriodLastMonth, CustomBounds{}, january)
	require.NoError(t, err)
	assert.True(t, p.Start.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, p.End.Equal(time.Date(2025, 12, 31, 23, 59, 59, 999e6, time.Local)))
	assert.Equal(t, 31, p.TotalDays)

	p, err = ResolvePeriod(PeriodPenultimateMonth, CustomBounds{}, january)
	require.NoError(t, err)
	assert.True(t, p.Start.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, p.End.Equal(time.Date(2025, 11, 30, 23, 59, 59, 999e6, time.Local)))
	assert.Equal(t, 30, p.TotalDays)
}

func TestResolvePeriodAllRecords(t *testing.T) {
	p, err := ResolvePeriod(PeriodAllRecords, CustomBounds{}, refNow)
	require.NoError(t, err)
	assert.True(t, p.Unbounded)
	assert.Equal(t, "Todos os registros", p.Label)
}

func TestResolvePeriodCustom(t *testing.T) {
	t.Run("brazilian bounds", func(t *testing.T) {
		p, err := ResolvePeriod(PeriodCustom, CustomBounds{Start: "02/03/2026", End: "15/03/2026"}, refNow)
		require.NoError(t, err)
		assert.True(t, p.Start.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)))
		assert.True(t, p.End.Equal(time.Date(2026, 3, 15, 23, 59, 59, 999e6, time.Local)))
		assert.Equal(t, 14, p.TotalDays)
		assert.Equal(t, "02/03/2026 a 15/03/2026", p.Label)
	})

	t.Run("iso bounds", func(t *testing.T) {
		p, err := ResolvePeriod(PeriodCustom, CustomBounds{Start: "2026-03-02", End: "2026-03-15"}, refNow)
		require.NoError(t, err)
		assert.True(t, p.Start.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)))
		assert.Equal(t, 14, p.TotalDays)
	})

	t.Run("invalid bounds fall back to unbounded", func(t *testing.T) {
		p, err := ResolvePeriod(PeriodCustom, CustomBounds{Start: "not-a-date", End: "15/03/2026"}, refNow)
		require.NoError(t, err)
		assert.True(t, p.Unbounded)
	})

	t.Run("missing bounds fall back to unbounded", func(t *testing.T) {
		p, err := ResolvePeriod(PeriodCustom, CustomBounds{}, refNow)
		require.NoError(t, err)
		assert.True(t, p.Unbounded)
	})
}

func TestResolvePeriodNoSelection(t *testing.T) {
	_, err := ResolvePeriod("", CustomBounds{}, refNow)
	assert.ErrorIs(t, err, ErrNoPeriod)

	_, err = ResolvePeriod("lastCentury", CustomBounds{}, refNow)
	assert.ErrorIs(t, err, ErrNoPeriod)
}
