package domain

import "time"

// Issue is a single validation finding: severity, a stable code, the field
// it refers to (empty for record-level findings) and a human-readable
// message. Several issues may reference the same field.
type Issue struct {
	Severity Severity
	Code     Code
	Field    string
	Message  string
}

// Report is the outcome of validating one record. Errors and Warnings hold
// message strings in the order the checks were evaluated; Valid is true
// exactly when Errors is empty. CampaignID carries the input's campaign id
// when it passed presence and type checks, otherwise null. Issues carries
// the full typed findings for in-process consumers and is not part of the
// serialized contract.
type Report struct {
	Valid       bool      `json:"valid"`
	Errors      []string  `json:"errors"`
	Warnings    []string  `json:"warnings"`
	CampaignID  *string   `json:"campaign_id"`
	ValidatedAt time.Time `json:"validated_at"`

	Issues []Issue `json:"-"`
}

// ErrorCount returns the number of error-severity issues.
func (r Report) ErrorCount() int { return len(r.Errors) }

// WarningCount returns the number of warning-severity issues.
func (r Report) WarningCount() int { return len(r.Warnings) }

// HasCode reports whether any issue carries the given code.
func (r Report) HasCode(code Code) bool {
	for _, is := range r.Issues {
		if is.Code == code {
			return true
		}
	}
	return false
}
