package configs

// Platform holds credentials for one advertising platform. A platform is
// active only when its API key is set; keys never appear in logs.
type Platform struct {
	APIKey    string `env:"API_KEY"`
	AccountID string `env:"ACCOUNT_ID"`
}

// Connectors groups per-platform credentials. Each nested struct is
// populated from environment variables with the platform's prefix, e.g.
// CONNECTOR_GOOGLE_ADS_API_KEY.
type Connectors struct {
	GoogleAds   Platform `envPrefix:"GOOGLE_ADS_"`
	FacebookAds Platform `envPrefix:"FACEBOOK_ADS_"`
	TikTokAds   Platform `envPrefix:"TIKTOK_ADS_"`
}
