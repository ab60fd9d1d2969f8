package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dataguard/internal/core/domain"
	"dataguard/internal/core/port"
	"dataguard/internal/core/validate"
	"dataguard/internal/metrics"
)

// ValidationService implements port.Validator. It runs the pure validation
// engine, emits one structured log line and metrics per invocation, and
// hands the outcome to the repository. The engine itself never fails;
// errors returned from this service are persistence errors only and never
// alter the report content.
type ValidationService struct {
	repo   port.ResultRepository
	logger *slog.Logger

	// now supplies the engine's clock reading. Injected so tests can pin
	// date-boundary rules.
	now func() time.Time
}

// NewValidationService creates a service using the wall clock.
func NewValidationService(repo port.ResultRepository, logger *slog.Logger) *ValidationService {
	return &ValidationService{repo: repo, logger: logger, now: time.Now}
}

// WithClock overrides the time source and returns the service for chaining.
func (s *ValidationService) WithClock(now func() time.Time) *ValidationService {
	s.now = now
	return s
}

// ValidateRecord validates one raw payload, records the outcome and
// persists it. The returned report is complete even when persistence
// fails; callers that only need classification may ignore the error.
func (s *ValidationService) ValidateRecord(ctx context.Context, payload any) (domain.Report, error) {
	start := time.Now()
	res := validate.Run(payload, s.now())
	report := res.Report

	source := extractSource(payload)
	outcome := "invalid"
	if report.Valid {
		outcome = "valid"
	}
	metrics.ValidationsTotal.WithLabelValues(source, outcome).Inc()
	for _, is := range report.Issues {
		metrics.IssuesTotal.WithLabelValues(string(is.Severity), string(is.Code)).Inc()
	}

	campaignID := ""
	if report.CampaignID != nil {
		campaignID = *report.CampaignID
	}
	s.logger.Info("record validated",
		slog.String("campaign_id", campaignID),
		slog.String("source", source),
		slog.Bool("valid", report.Valid),
		slog.Int("errors", len(report.Errors)),
		slog.Int("warnings", len(report.Warnings)),
	)

	if err := s.repo.SaveResult(ctx, res.Record, report); err != nil {
		return report, fmt.Errorf("save validation result: %w", err)
	}
	metrics.ObserveDuration(start)
	return report, nil
}

// ValidateBatch validates payloads in input order. The first persistence
// failure aborts the batch and returns the reports produced so far.
func (s *ValidationService) ValidateBatch(ctx context.Context, payloads []any) ([]domain.Report, error) {
	reports := make([]domain.Report, 0, len(payloads))
	for _, p := range payloads {
		report, err := s.ValidateRecord(ctx, p)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Stats aggregates persisted valid records and derives CTR, conversion
// rate and ROAS. Ratios with zero denominators are reported as zero
// instead of dividing.
func (s *ValidationService) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	totals, err := s.repo.GetStats(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := &port.StatsResp{
		Spend:       totals.Spend,
		Impressions: totals.Impressions,
		Clicks:      totals.Clicks,
		Conversions: totals.Conversions,
		Revenue:     totals.Revenue,
	}
	if totals.Impressions > 0 {
		resp.CTR = float64(totals.Clicks) / float64(totals.Impressions)
	}
	if totals.Clicks > 0 {
		resp.ConversionRate = float64(totals.Conversions) / float64(totals.Clicks)
	}
	if totals.Spend > 0 {
		resp.ROAS = totals.Revenue / totals.Spend
	}
	return resp, nil
}

// extractSource pulls the source field out of an arbitrary payload for
// logging and metric labels. It deliberately bypasses validation: an
// invalid record still needs a correlatable log line.
func extractSource(payload any) string {
	if m, ok := payload.(map[string]any); ok {
		if s, ok := m["source"].(string); ok && s != "" {
			return s
		}
	}
	return "unknown"
}
