package domain

import "time"

// Record is a normalized campaign performance observation: one campaign,
// one platform, one calendar day. It is produced by the structural
// validation stage from an untyped payload and is the only representation
// the later stages operate on. Optional metrics are pointers so that
// "absent" and "zero" stay distinguishable.
type Record struct {
	CampaignID   string
	CampaignName string
	Source       string
	Date         time.Time
	Spend        float64
	Impressions  int64
	Clicks       int64
	Conversions  *int64
	Revenue      *float64
	Currency     string
}
