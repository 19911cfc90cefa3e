// @title         Wattpool API
// @version       0.1.0
// @description   Household energy leaderboard, pool statistics and entry uploads

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wattpool/internal/core/reference"
	"wattpool/internal/core/version"
	"wattpool/internal/modkit/repokit"
	"wattpool/internal/platform/config"
	"wattpool/internal/platform/logger"
	phttp "wattpool/internal/platform/net/http"
	"wattpool/internal/platform/store"

	"wattpool/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service scoped config for HTTP and modules (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // unset DBURL selects the memory entry store
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // only used for readiness here

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGFromConfig(pgCfg),
		CH: store.CHFromConfig(chCfg, "api"),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st, 10*time.Second)

	ref, err := reference.FromConfig(apiCfg)
	if err != nil {
		l.Panic().Err(err).Msg("reference tables failed to load")
	}

	info := version.Info()
	l.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("starting wattpool-api")

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	if err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Ref:            ref,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Migrate:        apiCfg.MayBool("MIGRATE", true),
	}); err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
