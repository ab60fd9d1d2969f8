package port

import (
	"context"

	"dataguard/internal/core/domain"
)

// ResultRepository persists validation outcomes. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe: the
// sync worker and HTTP handlers call them from independent goroutines.
type ResultRepository interface {
	// SaveResult stores the report and, when rec is non-nil, upserts the
	// normalized record keyed by (campaign_id, source, date). Invalid
	// records are retained as reports only.
	SaveResult(ctx context.Context, rec *domain.Record, report domain.Report) error

	// GetStats returns summed metrics over stored valid records in a
	// period. Derived ratios are left for the caller.
	GetStats(ctx context.Context, req StatsReq) (*StatsTotals, error)
}

// StatsTotals holds the raw sums a repository produces for a stats query.
type StatsTotals struct {
	Spend       float64
	Impressions int64
	Clicks      int64
	Conversions int64
	Revenue     float64
}
