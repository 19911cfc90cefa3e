// Package module wires the shared entry pool and exposes its ports
package module

import (
	"context"

	"wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"
	"wattpool/internal/modkit/repokit"
	"wattpool/internal/platform/logger"
	"wattpool/internal/services/entries/repo"
	"wattpool/internal/services/entries/service"
)

// Module defines the entries store module, it mounts no routes
type Module struct {
	deps    modkit.Deps
	backend string
	ports   Ports
}

// New constructs the entries module; zero fields in overrides keep config values
// panics when postgres is requested without a configured pool
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Backend != "" {
		opts.Backend = overrides.Backend
	}

	backend := opts.Backend
	if backend == BackendAuto {
		backend = BackendMemory
		if deps.PG != nil {
			backend = BackendPostgres
		}
	}

	var r repo.Repo
	switch backend {
	case BackendPostgres:
		// panics without SERVICE_PGSQL_DBURL
		r = repokit.MustBind(repo.NewPG(), deps.PG)
	default:
		r = repo.NewMemory()
	}
	logger.Named("entries").Info().Str("backend", backend).Msg("entry store ready")

	svc := service.New(r, deps.Reference())
	return &Module{
		deps:    deps,
		backend: backend,
		ports:   Ports{Reader: svc, Service: svc},
	}
}

// Backend returns the resolved backend name
func (m *Module) Backend() string { return m.backend }

// Migrate creates the postgres schema, a no op for the memory backend
func (m *Module) Migrate(ctx context.Context) error {
	if m.backend != BackendPostgres {
		return nil
	}
	return repo.Migrate(ctx, m.deps.PG)
}

// Ports returns the module ports (Reader, Service)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "entries" }

// Prefix returns the module prefix (none for a store only module)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
