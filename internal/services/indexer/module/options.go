package module

import "hubgate/internal/platform/config"

// Options tune the index worker
type Options struct {
	// RatePerSec caps task admissions per second; 0 means unlimited
	RatePerSec float64
	// Burst is the admission burst size
	Burst int
}

// FromConfig loads options from the environment
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("INDEXER_")
	return Options{
		RatePerSec: c.MayFloat64("RATE_PER_SEC", 0),
		Burst:      c.MayInt("BURST", 1),
	}
}
