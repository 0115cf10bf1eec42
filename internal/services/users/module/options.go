package module

import "hubgate/internal/platform/config"

// Options tune the users module
type Options struct {
	// StrictReads surfaces storage errors on reads instead of falling
	// through to the hub
	StrictReads bool
}

// FromConfig loads options from the environment
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		StrictReads: c.MayBool("STRICT_READS", false),
	}
}
