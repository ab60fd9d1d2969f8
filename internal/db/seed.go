package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaign records and matching validation reports into
// the database. Generated metrics respect the engine's invariants
// (clicks <= impressions, conversions <= clicks) so seeded data reads as
// valid on dashboards.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	sources := []string{"google_ads", "facebook_ads", "tiktok_ads"}
	emptyList, _ := json.Marshal([]string{})

	for i := 1; i <= 5; i++ {
		campaignID := fmt.Sprintf("camp_%03d", i)
		name := fmt.Sprintf("Demo Campaign %d", i)
		source := sources[r.Intn(len(sources))]

		for d := 0; d < 30; d++ {
			date := time.Now().UTC().AddDate(0, 0, -d)
			impressions := int64(r.Intn(100000) + 1000)
			clicks := int64(r.Intn(int(impressions/20) + 1))
			conversions := int64(0)
			if clicks > 0 {
				conversions = int64(r.Intn(int(clicks) + 1))
			}
			spend := float64(r.Intn(500000)) / 100
			revenue := float64(conversions) * (50 + float64(r.Intn(10000))/100)

			_, err := db.Exec(ctx, `INSERT INTO campaign_records
    (campaign_id, campaign_name, source, date, spend, impressions, clicks,
     conversions, revenue, currency, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
				campaignID, name, source, date, spend, impressions, clicks,
				conversions, revenue, "USD")
			if err != nil {
				return err
			}

			_, err = db.Exec(ctx, `INSERT INTO validation_reports
    (id, campaign_id, source, valid, errors, warnings, validated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, source, true, emptyList, emptyList, date)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
