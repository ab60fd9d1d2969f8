package port

import (
	"context"
	"time"

	"dataguard/internal/core/domain"
)

// Validator is the primary port into the application: it validates raw
// campaign payloads, records the outcome and serves aggregated statistics.
// The HTTP layer and the sync worker both consume this interface. Mock
// implementations can be generated from it for testing.
type Validator interface {
	// ValidateRecord runs the validation engine over one raw payload,
	// persists the outcome and returns the report. The report is produced
	// for any payload shape; the error covers persistence failures only.
	ValidateRecord(ctx context.Context, payload any) (domain.Report, error)

	// ValidateBatch validates payloads in order and returns one report per
	// payload. Persistence failures abort the batch.
	ValidateBatch(ctx context.Context, payloads []any) ([]domain.Report, error)

	// Stats returns aggregated metrics over persisted valid records for
	// the requested period, optionally filtered by source platform.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq bounds a stats query. When Source is nil all platforms are
// aggregated together.
type StatsReq struct {
	From   time.Time
	To     time.Time
	Source *string
}

// StatsResp carries aggregated campaign metrics plus derived ratios. The
// ratios are zero when their denominators are zero.
type StatsResp struct {
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	ROAS           float64 `json:"roas"`
}
