package types

// Outcome values as produced by the telephony export (pt-BR, matched exactly)
const (
	OutcomeAnswered  = "Atendida"
	OutcomeRetained  = "Retida na URA"
	OutcomeAbandoned = "Abandonada"
)

// NoOperator marks a call that was never assigned to an operator. Such calls
// count toward company-wide totals but never toward per-operator metrics.
const NoOperator = "Sem Operador"

// CallRecord is the canonical shape of one call-detail row. Rows arrive from
// the export either as objects or as positional arrays; the ingest adapter
// converts both into this struct so nothing downstream ever sniffs shapes.
//
// Date and the durations are kept as the raw text the export produced:
// the date may be DD/MM/YYYY or ISO and is normalized lazily, and the
// durations need the literal "00:00:00" preserved because it is ambiguous
// between "no data" and "zero elapsed" (see analytics zero-inflation rule).
type CallRecord struct {
	Date             string   `json:"date"`
	Hour             string   `json:"hour,omitempty"`
	Operator         string   `json:"operator"`
	Outcome          string   `json:"callOutcome,omitempty"`
	RatingAttendance *float64 `json:"ratingAttendance,omitempty"`
	RatingSolution   *float64 `json:"ratingSolution,omitempty"`
	TalkDuration     string   `json:"talkDuration,omitempty"`
	WaitDuration     string   `json:"waitDuration,omitempty"`
	IVRDuration      string   `json:"ivrDuration,omitempty"`
}

// StoredCallRecord is the DynamoDB projection of a CallRecord. DateKey is the
// normalized YYYY-MM-DD day (partition key) and RecordID a generated UUID
// (sort key); the raw row fields are carried unchanged.
type StoredCallRecord struct {
	DateKey          string   `json:"dateKey" dynamodbav:"DateKey"`
	RecordID         string   `json:"recordId" dynamodbav:"RecordID"`
	Date             string   `json:"date" dynamodbav:"Date"`
	Hour             string   `json:"hour" dynamodbav:"Hour"`
	Operator         string   `json:"operator" dynamodbav:"Operator"`
	Outcome          string   `json:"callOutcome" dynamodbav:"Outcome"`
	RatingAttendance *float64 `json:"ratingAttendance,omitempty" dynamodbav:"RatingAttendance"`
	RatingSolution   *float64 `json:"ratingSolution,omitempty" dynamodbav:"RatingSolution"`
	TalkDuration     string   `json:"talkDuration" dynamodbav:"TalkDuration"`
	WaitDuration     string   `json:"waitDuration" dynamodbav:"WaitDuration"`
	IVRDuration      string   `json:"ivrDuration" dynamodbav:"IVRDuration"`
}

// Record converts the stored projection back to the canonical shape.
func (s StoredCallRecord) Record() CallRecord {
	return CallRecord{
		Date:             s.Date,
		Hour:             s.Hour,
		Operator:         s.Operator,
		Outcome:          s.Outcome,
		RatingAttendance: s.RatingAttendance,
		RatingSolution:   s.RatingSolution,
		TalkDuration:     s.TalkDuration,
		WaitDuration:     s.WaitDuration,
		IVRDuration:      s.IVRDuration,
	}
}

// OperatorDailyStats is one operator's aggregated day for DynamoDB
type OperatorDailyStats struct {
	Operator            string  `json:"operator" dynamodbav:"Operator"` // partition key
	Date                string  `json:"date" dynamodbav:"Date"`         // YYYY-MM-DD (sort key)
	TotalCalls          int     `json:"totalCalls" dynamodbav:"TotalCalls"`
	AnswerRate          float64 `json:"answerRate" dynamodbav:"AnswerRate"`
	AvgRatingAttendance float64 `json:"avgRatingAttendance" dynamodbav:"AvgRatingAttendance"`
	AvgRatingSolution   float64 `json:"avgRatingSolution" dynamodbav:"AvgRatingSolution"`
	AvgTalkMinutes      float64 `json:"avgTalkMinutes" dynamodbav:"AvgTalkMinutes"`
	AvgWaitMinutes      float64 `json:"avgWaitMinutes" dynamodbav:"AvgWaitMinutes"`
	EvaluatedCalls      int     `json:"evaluatedCalls" dynamodbav:"EvaluatedCalls"`
	Score               float64 `json:"score" dynamodbav:"Score"`
}
