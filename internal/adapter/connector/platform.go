// Package connector fetches raw campaign payloads from advertising
// platform APIs. Connectors are thin transport wrappers: they authenticate,
// bound the request and decode the body, and leave every content check to
// the validation engine.
package connector

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"context"

	"dataguard/internal/config/configs"
	"dataguard/internal/core/port"
)

// placeholderPatterns are substrings that mark an API key as an unfilled
// template value. Keys containing one are rejected at startup.
var placeholderPatterns = []string{
	"your_api_key", "api_key_here", "secret_key", "placeholder",
}

// Platform is a generic HTTP connector for one advertising platform. It
// calls https://api.<platform>.com/v1/campaigns with bearer auth and a
// per-request deadline, and fails on non-2xx responses instead of
// decoding whatever came back.
type Platform struct {
	platform  string
	apiKey    string
	accountID string
	baseURL   string
	client    *http.Client
}

// New creates a connector for the given platform identifier. The API key
// must be non-blank and must not look like a placeholder value.
func New(platform string, cfg configs.Platform, timeout time.Duration) (*Platform, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, fmt.Errorf("connector %s: empty API key", platform)
	}
	lower := strings.ToLower(key)
	for _, p := range placeholderPatterns {
		if strings.Contains(lower, p) {
			return nil, fmt.Errorf("connector %s: API key looks like a placeholder", platform)
		}
	}
	return &Platform{
		platform:  platform,
		apiKey:    key,
		accountID: cfg.AccountID,
		baseURL:   fmt.Sprintf("https://api.%s.com", platform),
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Platform returns the source identifier, e.g. "google_ads".
func (p *Platform) Platform() string { return p.platform }

// FetchDay returns the raw per-campaign payloads the platform reports for
// one calendar day.
func (p *Platform) FetchDay(ctx context.Context, day time.Time) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/campaigns", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	q.Set("account_id", p.accountID)
	q.Set("date", day.Format("2006-01-02"))
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", p.platform, resp.StatusCode)
	}

	var body struct {
		Campaigns []map[string]any `json:"campaigns"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", p.platform, err)
	}
	return body.Campaigns, nil
}

// FromConfig builds one connector per platform that has an API key
// configured. It returns an error when no platform is configured or when
// a configured key fails validation.
func FromConfig(cfg configs.Connectors, timeout time.Duration) ([]port.Connector, error) {
	byPlatform := map[string]configs.Platform{
		"google_ads":   cfg.GoogleAds,
		"facebook_ads": cfg.FacebookAds,
		"tiktok_ads":   cfg.TikTokAds,
	}

	var conns []port.Connector
	for _, platform := range []string{"google_ads", "facebook_ads", "tiktok_ads"} {
		pc := byPlatform[platform]
		if strings.TrimSpace(pc.APIKey) == "" {
			continue
		}
		c, err := New(platform, pc, timeout)
		if err != nil {
			return nil, err
		}
		conns = append(conns, c)
	}
	if len(conns) == 0 {
		return nil, errors.New("no connectors configured: set CONNECTOR_<PLATFORM>_API_KEY")
	}
	return conns, nil
}
