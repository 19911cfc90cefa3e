package module

import "wattpool/internal/platform/config"

// Backend names
const (
	BackendAuto     = "auto"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Options controls which store backs the pool
type Options struct {
	// Backend is auto, memory or postgres; auto picks postgres when a pool is configured
	Backend string
}

// FromConfig reads with ENTRIES_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ENTRIES_")
	return Options{
		Backend: c.MayEnum("BACKEND", BackendAuto, BackendAuto, BackendMemory, BackendPostgres),
	}
}
