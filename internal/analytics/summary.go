package analytics

import (
	"math"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// EmptyTalkDuration is the ambiguous export sentinel for talk time: it may
// mean "no time recorded" or "zero elapsed". Talk-duration averaging always
// treats it as missing.
const EmptyTalkDuration = "00:00:00"

// zeroInflationThreshold: when more than this share of the non-empty wait or
// IVR values is exactly zero, the zeros are treated as "not recorded" and the
// average is taken over the non-zero subset only.
const zeroInflationThreshold = 0.9

// Summarize reduces a record collection into the company-wide snapshot.
// Recomputed from scratch on every call; an empty collection yields an
// all-zero snapshot.
func Summarize(records []types.CallRecord) types.MetricsSnapshot {
	s := types.MetricsSnapshot{TotalCalls: len(records)}

	var attendance, solution []float64
	var talk, wait, ivr []float64

	for _, r := range records {
		switch r.Outcome {
		case types.OutcomeAnswered:
			s.Answered++
		case types.OutcomeRetained:
			s.RetainedIVR++
		case types.OutcomeAbandoned:
			s.Abandoned++
		}

		if ValidRating(r.RatingAttendance) {
			attendance = append(attendance, *r.RatingAttendance)
		}
		if ValidRating(r.RatingSolution) {
			solution = append(solution, *r.RatingSolution)
		}
		if ValidRating(r.RatingAttendance) || ValidRating(r.RatingSolution) {
			s.EvaluatedCalls++
		}

		// Talk time is stricter than wait/IVR: the empty sentinel and
		// non-positive values never enter the average.
		if r.TalkDuration != "" && r.TalkDuration != EmptyTalkDuration {
			if v := ParseMinutes(r.TalkDuration); v > 0 {
				talk = append(talk, v)
			}
		}
		if r.WaitDuration != "" {
			wait = append(wait, ParseMinutes(r.WaitDuration))
		}
		if r.IVRDuration != "" {
			ivr = append(ivr, ParseMinutes(r.IVRDuration))
		}
	}

	if s.TotalCalls > 0 {
		s.AnswerRate = round1(float64(s.Answered) / float64(s.TotalCalls) * 100)
		s.AbandonRate = round1(float64(s.Abandoned) / float64(s.TotalCalls) * 100)
	}

	s.AvgRatingAttendance = round1(mean(attendance))
	s.AvgRatingSolution = round1(mean(solution))
	s.AvgTalkMinutes = round1(mean(talk))
	s.AvgWaitMinutes = round1(zeroInflatedMean(wait))
	s.AvgIVRMinutes = round1(zeroInflatedMean(ivr))

	return s
}

// ValidRating reports whether the rating is a finite number inside the
// closed [1,5] range. Anything else counts as absent, not as zero.
func ValidRating(r *float64) bool {
	if r == nil || math.IsNaN(*r) || math.IsInf(*r, 0) {
		return false
	}
	return *r >= 1 && *r <= 5
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// zeroInflatedMean averages the given values, except when zeros dominate:
// if more than 90% of the values are exactly zero the zeros are read as
// "not recorded" and only the non-zero subset is averaged.
func zeroInflatedMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var nonZero []float64
	for _, v := range values {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}

	zeros := len(values) - len(nonZero)
	if float64(zeros)/float64(len(values)) > zeroInflationThreshold {
		return mean(nonZero)
	}
	return mean(values)
}

func round1(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*10) / 10
}
