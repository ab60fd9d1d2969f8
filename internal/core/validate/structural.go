package validate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"dataguard/internal/core/domain"
)

// Field names of the wire schema.
const (
	fieldCampaignID   = "campaign_id"
	fieldCampaignName = "campaign_name"
	fieldSource       = "source"
	fieldDate         = "date"
	fieldSpend        = "spend"
	fieldImpressions  = "impressions"
	fieldClicks       = "clicks"
	fieldConversions  = "conversions"
	fieldRevenue      = "revenue"
	fieldCurrency     = "currency"
)

// requiredFields is the fixed evaluation order for presence checks; it also
// fixes the ordering of missing-field errors in the report.
var requiredFields = []string{
	fieldCampaignID, fieldSource, fieldDate, fieldSpend, fieldImpressions, fieldClicks,
}

// typedFields is the fixed evaluation order for type checks across all
// schema fields, required and optional alike.
var typedFields = []string{
	fieldCampaignID, fieldCampaignName, fieldSource, fieldDate,
	fieldSpend, fieldImpressions, fieldClicks,
	fieldConversions, fieldRevenue, fieldCurrency,
}

const dateLayout = "2006-01-02"

// fieldSet records which fields passed both presence and type checks. Later
// stages consult it instead of re-deriving type assumptions.
type fieldSet map[string]struct{}

func (s fieldSet) add(name string)      { s[name] = struct{}{} }
func (s fieldSet) has(name string) bool { _, ok := s[name]; return ok }

// normalize performs structural validation: presence checks on required
// fields in fixed order, then type/format checks on every present field.
// A field that is absent (or null) gets a missing-field error and no type
// error; a field that fails coercion gets a type error and is excluded
// from the returned fieldSet, so later rules that depend on it are skipped
// rather than fed a default.
func normalize(obj map[string]any) (domain.Record, fieldSet, []domain.Issue) {
	var (
		rec    domain.Record
		fields = make(fieldSet, len(typedFields))
		issues []domain.Issue
	)

	present := func(name string) bool {
		v, ok := obj[name]
		return ok && v != nil
	}

	for _, name := range requiredFields {
		if !present(name) {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Code:     domain.CodeMissingField,
				Field:    name,
				Message:  fmt.Sprintf("missing required field: %s", name),
			})
		}
	}

	for _, name := range typedFields {
		if !present(name) {
			continue
		}
		if reason := coerceField(&rec, name, obj[name]); reason != "" {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Code:     domain.CodeInvalidField,
				Field:    name,
				Message:  fmt.Sprintf("invalid type/format for %s: %s", name, reason),
			})
			continue
		}
		fields.add(name)
	}

	return rec, fields, issues
}

// coerceField validates and stores one raw value on rec. It returns an
// empty string on success and the failure reason otherwise.
func coerceField(rec *domain.Record, name string, raw any) string {
	switch name {
	case fieldCampaignID:
		return coerceString(raw, true, &rec.CampaignID)
	case fieldCampaignName:
		return coerceString(raw, false, &rec.CampaignName)
	case fieldSource:
		return coerceString(raw, true, &rec.Source)
	case fieldCurrency:
		return coerceString(raw, false, &rec.Currency)
	case fieldDate:
		var s string
		if reason := coerceString(raw, true, &s); reason != "" {
			return reason
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return "must be a YYYY-MM-DD calendar date"
		}
		rec.Date = d
		return ""
	case fieldSpend:
		return coerceDecimal(raw, &rec.Spend)
	case fieldRevenue:
		var v float64
		if reason := coerceDecimal(raw, &v); reason != "" {
			return reason
		}
		rec.Revenue = &v
		return ""
	case fieldImpressions:
		return coerceCount(raw, &rec.Impressions)
	case fieldClicks:
		return coerceCount(raw, &rec.Clicks)
	case fieldConversions:
		var n int64
		if reason := coerceCount(raw, &n); reason != "" {
			return reason
		}
		rec.Conversions = &n
		return ""
	}
	return ""
}

func coerceString(raw any, nonEmpty bool, dst *string) string {
	s, ok := raw.(string)
	if !ok {
		return fmt.Sprintf("expected string, got %T", raw)
	}
	if nonEmpty && strings.TrimSpace(s) == "" {
		return "must be a non-empty string"
	}
	*dst = s
	return ""
}

// coerceDecimal accepts JSON numbers (float64 after decoding) and native
// integer values. Numeric-looking strings are rejected: the normalization
// step is the single point of type truth, and a connector serializing
// numbers as strings is a bug worth surfacing.
func coerceDecimal(raw any, dst *float64) string {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		return fmt.Sprintf("expected number, got %T", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "must be a finite number"
	}
	if v < 0 {
		return "must be non-negative"
	}
	*dst = v
	return ""
}

// coerceCount accepts non-negative integers. JSON has no integer type, so
// a float64 is accepted only when integral.
func coerceCount(raw any, dst *int64) string {
	var v int64
	switch n := raw.(type) {
	case int:
		v = int64(n)
	case int64:
		v = n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return "must be an integer"
		}
		v = int64(n)
	default:
		return fmt.Sprintf("expected integer, got %T", raw)
	}
	if v < 0 {
		return "must be non-negative"
	}
	*dst = v
	return ""
}
