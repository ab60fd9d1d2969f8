package configs

import "time"

// Sync configures the periodic connector sync worker. When Enabled is
// false the worker is not started and records only arrive through the
// HTTP API.
type Sync struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Interval is how often the worker pulls the current day's data from
	// every configured platform.
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// Timeout bounds one platform fetch.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
