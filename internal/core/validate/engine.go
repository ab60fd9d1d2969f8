// Package validate implements the campaign record validation engine. A raw
// untyped payload goes through three stages: structural validation (presence
// and type coercion), business rules (cross-field invariants) and anomaly
// detection (statistical flags). The engine is a pure function of the
// payload and the supplied clock reading; it performs no I/O, keeps no
// state and never panics, so it may be called concurrently without
// coordination.
package validate

import (
	"time"

	"dataguard/internal/core/domain"
)

// Result couples the assembled report with the normalized record. Record is
// non-nil only when every structural check passed, so callers can persist
// it without re-checking types.
type Result struct {
	Report domain.Report
	Record *domain.Record
}

// Validate runs the full pipeline against payload and returns the report.
// It is total: any input shape, including nil or a non-object value,
// produces a well-formed report rather than a panic. The now argument is
// read once and stamps the report, keeping a single call internally
// time-consistent.
func Validate(payload any, now time.Time) domain.Report {
	return Run(payload, now).Report
}

// Run is Validate plus the normalized record for callers that persist
// structurally valid input.
func Run(payload any, now time.Time) Result {
	obj, ok := payload.(map[string]any)
	if !ok || obj == nil {
		issues := []domain.Issue{{
			Severity: domain.SeverityError,
			Code:     domain.CodeMalformedPayload,
			Message:  "payload must be a JSON object",
		}}
		return Result{Report: assemble(issues, nil, now)}
	}

	rec, fields, structIssues := normalize(obj)

	issues := structIssues
	issues = append(issues, businessRules(rec, fields, now)...)
	issues = append(issues, detectAnomalies(rec, fields)...)

	var campaignID *string
	if fields.has(fieldCampaignID) {
		id := rec.CampaignID
		campaignID = &id
	}

	res := Result{Report: assemble(issues, campaignID, now)}
	if len(structIssues) == 0 {
		res.Record = &rec
	}
	return res
}

// assemble splits issues into error and warning message lists, preserving
// evaluation order within each severity. Valid holds exactly when no error
// was recorded. Both lists are allocated even when empty so the report
// serializes as [] rather than null.
func assemble(issues []domain.Issue, campaignID *string, now time.Time) domain.Report {
	errs := make([]string, 0, len(issues))
	warns := make([]string, 0)
	for _, is := range issues {
		switch is.Severity {
		case domain.SeverityError:
			errs = append(errs, is.Message)
		case domain.SeverityWarning:
			warns = append(warns, is.Message)
		}
	}
	return domain.Report{
		Valid:       len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		CampaignID:  campaignID,
		ValidatedAt: now.UTC(),
		Issues:      issues,
	}
}
