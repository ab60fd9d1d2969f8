package validate

import (
	"slices"
	"testing"
	"time"

	"dataguard/internal/core/domain"
)

// testNow pins the clock so date-boundary rules are deterministic.
var testNow = time.Date(2024, 10, 15, 12, 30, 0, 0, time.UTC)

// baseRecord returns a fully valid payload in the shape encoding/json
// produces: all numbers are float64.
func baseRecord() map[string]any {
	return map[string]any{
		"campaign_id":   "camp_123",
		"campaign_name": "Summer Sale 2024",
		"source":        "google_ads",
		"date":          "2024-10-10",
		"spend":         5000.0,
		"impressions":   100000.0,
		"clicks":        2500.0,
		"conversions":   50.0,
		"revenue":       7500.0,
		"currency":      "USD",
	}
}

func hasMessage(msgs []string, want string) bool {
	return slices.Contains(msgs, want)
}

func TestValidRecord(t *testing.T) {
	rep := Validate(baseRecord(), testNow)
	if !rep.Valid {
		t.Fatalf("expected valid, got errors %v", rep.Errors)
	}
	if len(rep.Errors) != 0 || len(rep.Warnings) != 0 {
		t.Fatalf("expected clean report, got errors=%v warnings=%v", rep.Errors, rep.Warnings)
	}
	if rep.CampaignID == nil || *rep.CampaignID != "camp_123" {
		t.Fatalf("expected campaign_id camp_123, got %v", rep.CampaignID)
	}
	if !rep.ValidatedAt.Equal(testNow) {
		t.Fatalf("expected validated_at %v, got %v", testNow, rep.ValidatedAt)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	rep := Validate(map[string]any{}, testNow)
	if rep.Valid {
		t.Fatal("expected invalid report")
	}
	want := []string{
		"missing required field: campaign_id",
		"missing required field: source",
		"missing required field: date",
		"missing required field: spend",
		"missing required field: impressions",
		"missing required field: clicks",
	}
	if !slices.Equal(rep.Errors, want) {
		t.Fatalf("expected %v, got %v", want, rep.Errors)
	}
	if rep.CampaignID != nil {
		t.Fatalf("expected nil campaign_id, got %q", *rep.CampaignID)
	}
}

func TestNullCountsAsMissing(t *testing.T) {
	rec := baseRecord()
	rec["spend"] = nil
	rep := Validate(rec, testNow)
	if !hasMessage(rep.Errors, "missing required field: spend") {
		t.Fatalf("expected missing-field error, got %v", rep.Errors)
	}
	// presence and type errors are mutually exclusive per field
	for _, msg := range rep.Errors {
		if msg == "invalid type/format for spend: expected number, got <nil>" {
			t.Fatalf("type error emitted for missing field: %v", rep.Errors)
		}
	}
	if len(rep.Errors) != 1 {
		t.Fatalf("expected single error, got %v", rep.Errors)
	}
}

func TestTypeErrors(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
	}{
		{"non-string campaign_id", "campaign_id", 123.0},
		{"numeric string spend", "spend", "5000"},
		{"negative spend", "spend", -10.0},
		{"fractional clicks", "clicks", 10.5},
		{"negative impressions", "impressions", -5.0},
		{"boolean revenue", "revenue", true},
		{"bad date format", "date", "2024/10/15"},
		{"whitespace campaign_id", "campaign_id", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := baseRecord()
			rec[tc.field] = tc.value
			rep := Validate(rec, testNow)
			if rep.Valid {
				t.Fatal("expected invalid report")
			}
			if !rep.HasCode(domain.CodeInvalidField) {
				t.Fatalf("expected INVALID_FIELD code, got %v", rep.Errors)
			}
			if rep.HasCode(domain.CodeMissingField) {
				t.Fatalf("present field reported as missing: %v", rep.Errors)
			}
		})
	}
}

func TestCoercedFieldSkipsDependentRules(t *testing.T) {
	rec := baseRecord()
	rec["impressions"] = "lots"
	rec["clicks"] = 5000.0
	rep := Validate(rec, testNow)
	// impressions failed coercion, so every rule comparing clicks against
	// impressions must be skipped rather than run against a default zero
	if rep.HasCode(domain.CodeClicksExceedImpressions) {
		t.Fatalf("clicks/impressions rule ran on malformed impressions: %v", rep.Errors)
	}
	if rep.HasCode(domain.CodeImpossibleClicks) {
		t.Fatalf("impossibility rule ran on malformed impressions: %v", rep.Errors)
	}
}

func TestClicksExceedImpressionsFiresWithCTR(t *testing.T) {
	rec := baseRecord()
	rec["impressions"] = 50.0
	rec["clicks"] = 60.0
	rec["conversions"] = 10.0
	rep := Validate(rec, testNow)
	// both rules involve clicks; neither suppresses the other
	if !hasMessage(rep.Errors, "clicks exceed impressions") {
		t.Fatalf("expected clicks-exceed error, got %v", rep.Errors)
	}
	if !hasMessage(rep.Errors, "click-through rate exceeds 50%, likely data error") {
		t.Fatalf("expected CTR error, got %v", rep.Errors)
	}
}

func TestConversionsExceedClicks(t *testing.T) {
	rec := baseRecord()
	rec["conversions"] = 3000.0
	rep := Validate(rec, testNow)
	if !hasMessage(rep.Errors, "conversions exceed clicks") {
		t.Fatalf("expected conversions-exceed error, got %v", rep.Errors)
	}
}

func TestDateBoundaries(t *testing.T) {
	day := func(offset int) string {
		return testNow.AddDate(0, 0, offset).Format("2006-01-02")
	}
	cases := []struct {
		name        string
		date        string
		wantErr     bool
		wantWarning bool
	}{
		{"tomorrow", day(1), true, false},
		{"today", day(0), false, false},
		{"89 days ago", day(-89), false, false},
		{"90 days ago", day(-90), false, false},
		{"91 days ago", day(-91), false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := baseRecord()
			rec["date"] = tc.date
			rep := Validate(rec, testNow)
			gotErr := hasMessage(rep.Errors, "date is in the future")
			gotWarn := hasMessage(rep.Warnings, "date is more than 90 days in the past")
			if gotErr != tc.wantErr {
				t.Fatalf("future-date error: want %v, got %v (%v)", tc.wantErr, gotErr, rep.Errors)
			}
			if gotWarn != tc.wantWarning {
				t.Fatalf("stale-date warning: want %v, got %v (%v)", tc.wantWarning, gotWarn, rep.Warnings)
			}
		})
	}
}

func TestCTRBoundary(t *testing.T) {
	rec := baseRecord()
	rec["impressions"] = 100.0
	rec["clicks"] = 50.0
	rec["conversions"] = 0.0
	rep := Validate(rec, testNow)
	if rep.HasCode(domain.CodeExtremeCTR) {
		t.Fatalf("exactly 50%% CTR must not fire: %v", rep.Errors)
	}

	rec["clicks"] = 51.0
	rep = Validate(rec, testNow)
	if !rep.HasCode(domain.CodeExtremeCTR) {
		t.Fatalf("51%% CTR must fire: %v", rep.Errors)
	}
}

func TestImpossibleClicks(t *testing.T) {
	rec := baseRecord()
	rec["impressions"] = 0.0
	rec["clicks"] = 5.0
	delete(rec, "conversions")
	delete(rec, "revenue")
	rep := Validate(rec, testNow)
	want := []string{"nonzero clicks with zero impressions (impossible)"}
	if !slices.Equal(rep.Errors, want) {
		t.Fatalf("expected exactly %v, got %v", want, rep.Errors)
	}
	if rep.HasCode(domain.CodeExtremeCTR) {
		t.Fatal("CTR rule must be skipped when impressions is zero")
	}
}

func TestZeroClicksWarning(t *testing.T) {
	rec := baseRecord()
	rec["clicks"] = 0.0
	rec["conversions"] = 0.0
	rep := Validate(rec, testNow)
	if !rep.Valid {
		t.Fatalf("expected valid report, got %v", rep.Errors)
	}
	if !hasMessage(rep.Warnings, "zero clicks despite nonzero impressions") {
		t.Fatalf("expected zero-clicks warning, got %v", rep.Warnings)
	}
}

func TestHighSpendWarning(t *testing.T) {
	rec := baseRecord()
	rec["spend"] = 150000.0
	rec["impressions"] = 1000.0
	rec["clicks"] = 10.0
	rec["conversions"] = 0.0
	rep := Validate(rec, testNow)
	if !rep.Valid {
		t.Fatalf("expected valid report, got %v", rep.Errors)
	}
	want := []string{"unusually high single-day spend"}
	if !slices.Equal(rep.Warnings, want) {
		t.Fatalf("expected exactly %v, got %v", want, rep.Warnings)
	}
}

func TestConversionsWithoutRevenue(t *testing.T) {
	const want = "conversions recorded with no attributed revenue"

	rec := baseRecord()
	rec["conversions"] = 5.0
	rec["revenue"] = 0.0
	rep := Validate(rec, testNow)
	if !hasMessage(rep.Warnings, want) {
		t.Fatalf("zero revenue: expected warning, got %v", rep.Warnings)
	}

	// absence and zero are equivalent for this rule
	rec = baseRecord()
	rec["conversions"] = 5.0
	delete(rec, "revenue")
	rep = Validate(rec, testNow)
	if !hasMessage(rep.Warnings, want) {
		t.Fatalf("absent revenue: expected warning, got %v", rep.Warnings)
	}

	rec = baseRecord()
	rec["conversions"] = 5.0
	rec["revenue"] = 100.0
	rep = Validate(rec, testNow)
	if hasMessage(rep.Warnings, want) {
		t.Fatalf("attributed revenue: unexpected warning %v", rep.Warnings)
	}
}

func TestMalformedPayload(t *testing.T) {
	for _, payload := range []any{nil, []any{"a", "b"}, "record", 42.0} {
		rep := Validate(payload, testNow)
		if rep.Valid {
			t.Fatalf("payload %v: expected invalid", payload)
		}
		if len(rep.Errors) != 1 || !rep.HasCode(domain.CodeMalformedPayload) {
			t.Fatalf("payload %v: expected single malformed-payload error, got %v", payload, rep.Errors)
		}
		if rep.CampaignID != nil {
			t.Fatalf("payload %v: campaign_id must never be fabricated", payload)
		}
	}
}

func TestIdempotence(t *testing.T) {
	rec := baseRecord()
	rec["clicks"] = 90000.0 // CTR 0.9 trips the extreme-CTR rule
	a := Validate(rec, testNow)
	b := Validate(rec, testNow)
	if !slices.Equal(a.Errors, b.Errors) || !slices.Equal(a.Warnings, b.Warnings) || a.Valid != b.Valid {
		t.Fatalf("reports differ: %+v vs %+v", a, b)
	}
	if !a.ValidatedAt.Equal(b.ValidatedAt) {
		t.Fatal("same clock reading must stamp the same validated_at")
	}
}

func TestMonotonicity(t *testing.T) {
	rec := baseRecord()
	rec["conversions"] = 3000.0
	before := Validate(rec, testNow)

	rec["spend"] = 150000.0 // add one more violation
	after := Validate(rec, testNow)

	for _, msg := range before.Errors {
		if !hasMessage(after.Errors, msg) {
			t.Fatalf("adding a violation removed existing error %q", msg)
		}
	}
	for _, msg := range before.Warnings {
		if !hasMessage(after.Warnings, msg) {
			t.Fatalf("adding a violation removed existing warning %q", msg)
		}
	}
}

func TestRunNormalizedRecord(t *testing.T) {
	res := Run(baseRecord(), testNow)
	if res.Record == nil {
		t.Fatal("expected normalized record for structurally valid payload")
	}
	rec := res.Record
	if rec.CampaignID != "camp_123" || rec.Source != "google_ads" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.Impressions != 100000 || rec.Clicks != 2500 {
		t.Fatalf("counts not coerced: %+v", rec)
	}
	if rec.Conversions == nil || *rec.Conversions != 50 {
		t.Fatalf("conversions not coerced: %+v", rec.Conversions)
	}
	if rec.Revenue == nil || *rec.Revenue != 7500 {
		t.Fatalf("revenue not coerced: %+v", rec.Revenue)
	}
	if rec.Date.Format("2006-01-02") != "2024-10-10" {
		t.Fatalf("date not parsed: %v", rec.Date)
	}

	bad := baseRecord()
	bad["spend"] = "5000"
	if res = Run(bad, testNow); res.Record != nil {
		t.Fatal("expected nil record when a structural check fails")
	}
}

func TestInputNotMutated(t *testing.T) {
	rec := baseRecord()
	Validate(rec, testNow)
	if len(rec) != len(baseRecord()) || rec["spend"] != 5000.0 {
		t.Fatalf("engine mutated its input: %v", rec)
	}
}
