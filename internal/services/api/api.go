// Package api provides the HTTP API for the application
package api

import (
	"context"

	"wattpool/internal/core/reference"
	"wattpool/internal/core/version"
	"wattpool/internal/platform/config"
	"wattpool/internal/platform/logger"
	phttp "wattpool/internal/platform/net/http"
	pmw "wattpool/internal/platform/net/middleware"
	"wattpool/internal/platform/store"

	"wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"
	"wattpool/internal/modkit/module"
	"wattpool/internal/modkit/swaggerkit"

	entriesapi "wattpool/internal/services/api/entries/module"
	lbmod "wattpool/internal/services/api/leaderboard/module"
	metamod "wattpool/internal/services/api/meta/module"
	statsmod "wattpool/internal/services/api/stats/module"

	// store module that owns the shared entry pool
	entriesmod "wattpool/internal/services/entries/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Ref            *reference.Tables
	EnableSwagger  bool
	EnableProfiler bool
	// Migrate creates the entry schema before routes are mounted
	Migrate bool
}

func init() { swaggerkit.Register(stampVersion) }

// stampVersion reports the running build in the served spec
func stampVersion(spec map[string]any) {
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	info["version"] = version.Info().Version
}

// Mount builds every module and mounts it onto the given router
// r must not have routes yet since a root heartbeat middleware is installed
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	if opt.Store == nil {
		opt.Store = &store.Store{}
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *logger.Named("api"),
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		Ref: opt.Ref,
	}

	// construct the store module first and extract its ports
	entries := entriesmod.New(deps, entriesmod.Options{})
	pool := module.MustPortsOf[entriesmod.Ports](entries)

	mods := []module.Module{
		metamod.New(deps),
		lbmod.New(deps, modkit.WithPorts(lbmod.Ports{Reader: pool.Reader})),
		statsmod.New(deps, modkit.WithPorts(statsmod.Ports{Reader: pool.Reader})),
		entriesapi.New(deps, modkit.WithPorts(entriesapi.Ports{Service: pool.Service})),
		entries, // include the store so its ports are registered
	}
	if opt.Migrate {
		if err := module.MigrateAll(ctx, mods...); err != nil {
			return err
		}
	}

	r.Use(pmw.Heartbeat("/ping"))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross module lookups
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// swagger and profiler live outside the versioned scope
	swaggerkit.Mount(r, swaggerkit.Options{
		Enabled: opt.EnableSwagger,
		Base:    opt.Config.MayString("SWAGGER_BASE", swaggerkit.DefaultBase),
		Expand:  opt.Config.MayEnum("SWAGGER_EXPAND", "list", "list", "full", "none"),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	logger.C(ctx).Info().Str("entries_backend", entries.Backend()).Int("modules", len(mods)).Msg("api mounted")
	return nil
}
