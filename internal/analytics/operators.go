package analytics

import (
	"sort"
	"strings"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// DefaultRankingLimit bounds the leaderboard when no explicit limit is
// configured.
const DefaultRankingLimit = 10

// AggregateOperators groups the collection by operator name and summarizes
// each group under the same rules as the company-wide snapshot (formatting
// and zero-inflation applied per group). Calls with a blank name or the
// "Sem Operador" sentinel are unassigned and skipped. The result is ordered
// by operator name so repeated runs over the same input are identical.
func AggregateOperators(records []types.CallRecord) []types.OperatorMetrics {
	groups := make(map[string][]types.CallRecord)
	for _, r := range records {
		name := strings.TrimSpace(r.Operator)
		if name == "" || name == types.NoOperator {
			continue
		}
		groups[name] = append(groups[name], r)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.OperatorMetrics, 0, len(names))
	for _, name := range names {
		snapshot := Summarize(groups[name])
		out = append(out, types.OperatorMetrics{
			Operator:        name,
			MetricsSnapshot: snapshot,
			Score:           round1(snapshot.AvgRatingAttendance + snapshot.AvgRatingSolution),
		})
	}
	return out
}

// BuildRanking orders operator metrics by call volume (descending) and
// truncates to the leaderboard limit. Ties on call volume break by operator
// name ascending, which keeps the ordering deterministic across runs.
// A non-positive limit falls back to DefaultRankingLimit.
func BuildRanking(operators []types.OperatorMetrics, limit int) []types.RankingEntry {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	ranked := make([]types.OperatorMetrics, len(operators))
	copy(ranked, operators)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalCalls != ranked[j].TotalCalls {
			return ranked[i].TotalCalls > ranked[j].TotalCalls
		}
		return ranked[i].Operator < ranked[j].Operator
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]types.RankingEntry, 0, len(ranked))
	for i, op := range ranked {
		out = append(out, types.RankingEntry{
			Position:            i + 1,
			Operator:            op.Operator,
			TotalCalls:          op.TotalCalls,
			AvgTalkMinutes:      op.AvgTalkMinutes,
			AvgRatingAttendance: op.AvgRatingAttendance,
			AvgRatingSolution:   op.AvgRatingSolution,
			EvaluatedCalls:      op.EvaluatedCalls,
			Score:               op.Score,
		})
	}
	return out
}
