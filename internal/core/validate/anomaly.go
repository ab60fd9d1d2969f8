package validate

import (
	"dataguard/internal/core/domain"
)

const (
	// maxCTR is the click-through rate above which a record is treated as
	// a data error rather than a mere outlier.
	maxCTR = 0.50
	// highDailySpend flags unusually large single-day spend for review.
	highDailySpend = 100_000
)

// detectAnomalies flags records that are structurally sound but
// statistically suspicious. Most findings are warnings; logically
// impossible combinations are elevated to errors.
func detectAnomalies(rec domain.Record, fields fieldSet) []domain.Issue {
	var issues []domain.Issue

	add := func(sev domain.Severity, code domain.Code, field, msg string) {
		issues = append(issues, domain.Issue{Severity: sev, Code: code, Field: field, Message: msg})
	}

	traffic := fields.has(fieldImpressions) && fields.has(fieldClicks)

	if traffic && rec.Impressions > 0 && rec.Clicks == 0 {
		add(domain.SeverityWarning, domain.CodeZeroClicks, fieldClicks,
			"zero clicks despite nonzero impressions")
	}

	if traffic && rec.Impressions == 0 && rec.Clicks > 0 {
		add(domain.SeverityError, domain.CodeImpossibleClicks, fieldClicks,
			"nonzero clicks with zero impressions (impossible)")
	}

	// CTR is only defined for nonzero impressions; the zero case is covered
	// by the impossibility rule above, so no division by zero can occur.
	if traffic && rec.Impressions > 0 {
		ctr := float64(rec.Clicks) / float64(rec.Impressions)
		if ctr > maxCTR {
			add(domain.SeverityError, domain.CodeExtremeCTR, fieldClicks,
				"click-through rate exceeds 50%, likely data error")
		}
	}

	if fields.has(fieldSpend) && rec.Spend > highDailySpend {
		add(domain.SeverityWarning, domain.CodeHighSpend, fieldSpend,
			"unusually high single-day spend")
	}

	// Absent revenue and zero revenue are equivalent here: conversions
	// should have money attributed either way.
	if rec.Conversions != nil && *rec.Conversions > 0 &&
		(rec.Revenue == nil || *rec.Revenue == 0) {
		add(domain.SeverityWarning, domain.CodeNoRevenue, fieldRevenue,
			"conversions recorded with no attributed revenue")
	}

	return issues
}
