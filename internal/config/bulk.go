package config

import "time"

// Bulk paces batch lookups. Every BurstEvery-th request gets BurstPause on top
// of the fixed delay.
type Bulk struct {
	RequestDelay time.Duration `env:"BULK_REQUEST_DELAY" envDefault:"1500ms"`
	BurstEvery   int           `env:"BULK_BURST_EVERY" envDefault:"3" validate:"min=1"`
	BurstPause   time.Duration `env:"BULK_BURST_PAUSE" envDefault:"3s"`
}
