package port

import (
	"context"
	"time"
)

// Connector fetches raw campaign payloads from one advertising platform.
// Connector output is untrusted input: the validation engine performs full
// structural checks on every payload it returns. Network policy (auth,
// timeouts, status handling) lives entirely inside the connector.
type Connector interface {
	// Platform returns the source identifier, e.g. "google_ads".
	Platform() string

	// FetchDay returns the raw per-campaign payloads reported by the
	// platform for one calendar day.
	FetchDay(ctx context.Context, day time.Time) ([]map[string]any, error)
}
