// Package module wires up the snapshot worker as a modkit module
package module

import (
	"context"

	"wattpool/internal/core/power"
	"wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"

	snapdom "wattpool/internal/services/snapshot/domain"
	"wattpool/internal/services/snapshot/guardrails"
	snaprepo "wattpool/internal/services/snapshot/repo"
	snapsvc "wattpool/internal/services/snapshot/service"
)

// Ports exported by the snapshot module
type Ports struct {
	Runner snapdom.RunnerPort
}

// Module implements modkit.Module for the snapshot worker
type Module struct {
	deps   modkit.Deps
	opts   Options
	leased bool
	sink   *snaprepo.CH
	ports  Ports
}

// New constructs the worker over the given entry reader
// deps.CH is required, deps.PG is only used for the writer lease
func New(deps modkit.Deps, reader snapdom.ReaderPort) *Module {
	opts := FromConfig(deps.Cfg)

	var lease snapdom.LeaseFunc
	leased := opts.EnableLeases && deps.PG != nil
	if leased {
		lease = guardrails.MakeLease(deps.PG, "stats_snapshots", "snapshot", opts.LeaseTTL)
	}

	sink := snaprepo.NewCH(deps.CH)
	svc := snapsvc.New(
		reader,
		sink,
		power.New(deps.Reference()),
		lease,
		snapsvc.Config{Interval: opts.Interval, SkipFresh: opts.SkipFresh},
	)
	return &Module{deps: deps, opts: opts, leased: leased, sink: sink, ports: Ports{Runner: svc}}
}

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// Migrate creates the snapshot table and, when leases are in use, the lease table
func (m *Module) Migrate(ctx context.Context) error {
	if err := m.sink.EnsureSchema(ctx); err != nil {
		return err
	}
	if !m.leased {
		return nil
	}
	return guardrails.EnsureLeaseSchema(ctx, m.deps.PG)
}

// Name returns the module name
func (m *Module) Name() string { return "snapshot" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
