package module

import (
	"time"

	"wattpool/internal/platform/config"
)

// Options for the snapshot module
type Options struct {
	Interval     time.Duration
	SkipFresh    bool
	EnableLeases bool
	LeaseTTL     time.Duration
}

// FromConfig fills options from environment
// CORE_SNAPSHOT_INTERVAL (default 5m) is the time between passes
// CORE_SNAPSHOT_SKIP_FRESH (default true) skips the startup pass after a recent one
// CORE_SNAPSHOT_LEASES (default true) elects one writer through postgres when a pool is configured
// CORE_SNAPSHOT_LEASE_TTL (default 3x interval) bounds how long a silent writer keeps the lease
func FromConfig(cfg config.Conf) Options {
	n := cfg.Prefix("CORE_SNAPSHOT_")
	interval := n.MayDuration("INTERVAL", 5*time.Minute)
	return Options{
		Interval:     interval,
		SkipFresh:    n.MayBool("SKIP_FRESH", true),
		EnableLeases: n.MayBool("LEASES", true),
		LeaseTTL:     n.MayDuration("LEASE_TTL", 3*interval),
	}
}
