package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dataguard/internal/core/domain"
	"dataguard/internal/core/port"
)

// ResultRepository implements port.ResultRepository using pgxpool for
// PostgreSQL. Reports are append-only; records are upserted on their
// (campaign_id, source, date) natural key so a re-sync of the same day
// overwrites rather than duplicates.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository returns a new repository instance.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// SaveResult stores the report and, for reports with no errors, upserts the
// normalized record. Both writes happen in one transaction.
func (r *ResultRepository) SaveResult(ctx context.Context, rec *domain.Record, report domain.Report) error {
	errsJSON, err := json.Marshal(report.Errors)
	if err != nil {
		return fmt.Errorf("marshal errors: %w", err)
	}
	warnsJSON, err := json.Marshal(report.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings: %w", err)
	}

	var source *string
	if rec != nil {
		source = &rec.Source
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO validation_reports
    (id, campaign_id, source, valid, errors, warnings, validated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.NewString(), report.CampaignID, source, report.Valid, errsJSON, warnsJSON, report.ValidatedAt)
	if err != nil {
		return err
	}

	if rec == nil || !report.Valid {
		return nil
	}

	_, err = tx.Exec(ctx, `INSERT INTO campaign_records
    (campaign_id, campaign_name, source, date, spend, impressions, clicks,
     conversions, revenue, currency, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())
ON CONFLICT (campaign_id, source, date) DO UPDATE SET
    campaign_name = EXCLUDED.campaign_name,
    spend = EXCLUDED.spend,
    impressions = EXCLUDED.impressions,
    clicks = EXCLUDED.clicks,
    conversions = EXCLUDED.conversions,
    revenue = EXCLUDED.revenue,
    currency = EXCLUDED.currency,
    updated_at = now()`,
		rec.CampaignID, rec.CampaignName, rec.Source, rec.Date, rec.Spend,
		rec.Impressions, rec.Clicks, rec.Conversions, rec.Revenue, rec.Currency)
	return err
}

// GetStats returns summed metrics over stored records in a period,
// optionally filtered by source platform.
func (r *ResultRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsTotals, error) {
	args := []interface{}{req.From, req.To}
	whereSource := ""
	if req.Source != nil {
		whereSource = "AND source = $3"
		args = append(args, *req.Source)
	}
	query := fmt.Sprintf(`SELECT
    COALESCE(sum(spend),0),
    COALESCE(sum(impressions),0),
    COALESCE(sum(clicks),0),
    COALESCE(sum(conversions),0),
    COALESCE(sum(revenue),0)
FROM campaign_records
WHERE date >= $1 AND date <= $2 %s`, whereSource)

	var t port.StatsTotals
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&t.Spend, &t.Impressions, &t.Clicks, &t.Conversions, &t.Revenue)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
