package domain

// Severity classifies a validation issue. Errors block downstream use of
// the record; warnings are informational and never block.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Code identifies the rule that produced an issue. Tests and alerting
// assert on codes rather than message text.
type Code string

const (
	// structural
	CodeMalformedPayload Code = "MALFORMED_PAYLOAD"
	CodeMissingField     Code = "MISSING_FIELD"
	CodeInvalidField     Code = "INVALID_FIELD"

	// business rules
	CodeNegativeSpend           Code = "NEGATIVE_SPEND"
	CodeClicksExceedImpressions Code = "CLICKS_EXCEED_IMPRESSIONS"
	CodeConversionsExceedClicks Code = "CONVERSIONS_EXCEED_CLICKS"
	CodeNegativeRevenue         Code = "NEGATIVE_REVENUE"
	CodeFutureDate              Code = "FUTURE_DATE"
	CodeStaleDate               Code = "STALE_DATE"

	// anomalies
	CodeZeroClicks       Code = "ZERO_CLICKS"
	CodeImpossibleClicks Code = "IMPOSSIBLE_CLICKS"
	CodeExtremeCTR       Code = "EXTREME_CTR"
	CodeHighSpend        Code = "HIGH_SPEND"
	CodeNoRevenue        Code = "NO_REVENUE"
)
