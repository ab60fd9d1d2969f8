package validate

import (
	"time"

	"dataguard/internal/core/domain"
)

// staleAfterDays is how far in the past a record date may lie before it is
// flagged as stale.
const staleAfterDays = 90

// businessRules evaluates cross-field invariants on fields that passed
// structural validation. Each rule fires independently; one violation never
// suppresses another, even on the same field.
func businessRules(rec domain.Record, fields fieldSet, now time.Time) []domain.Issue {
	var issues []domain.Issue

	errf := func(code domain.Code, field, msg string) {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError, Code: code, Field: field, Message: msg,
		})
	}

	// Negative values cannot survive coercion, but the invariant is cheap
	// to re-assert and keeps this stage correct on its own terms.
	if fields.has(fieldSpend) && rec.Spend < 0 {
		errf(domain.CodeNegativeSpend, fieldSpend, "spend must be non-negative")
	}

	// The zero-impressions case is classified by the logically stronger
	// impossibility check in the anomaly stage, so it is excluded here:
	// one impossible combination yields one error.
	if fields.has(fieldClicks) && fields.has(fieldImpressions) &&
		rec.Impressions > 0 && rec.Clicks > rec.Impressions {
		errf(domain.CodeClicksExceedImpressions, fieldClicks, "clicks exceed impressions")
	}

	if rec.Conversions != nil && fields.has(fieldClicks) && *rec.Conversions > rec.Clicks {
		errf(domain.CodeConversionsExceedClicks, fieldConversions, "conversions exceed clicks")
	}

	if rec.Revenue != nil && *rec.Revenue < 0 {
		errf(domain.CodeNegativeRevenue, fieldRevenue, "revenue must be non-negative")
	}

	if fields.has(fieldDate) {
		today := civilDate(now)
		switch {
		case rec.Date.After(today):
			errf(domain.CodeFutureDate, fieldDate, "date is in the future")
		case rec.Date.Before(today.AddDate(0, 0, -staleAfterDays)):
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityWarning,
				Code:     domain.CodeStaleDate,
				Field:    fieldDate,
				Message:  "date is more than 90 days in the past",
			})
		}
	}

	return issues
}

// civilDate truncates an instant to its UTC calendar date at midnight,
// matching how record dates parse.
func civilDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
