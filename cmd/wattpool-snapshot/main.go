package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wattpool/internal/core/reference"
	"wattpool/internal/core/version"
	"wattpool/internal/modkit"
	"wattpool/internal/modkit/module"
	"wattpool/internal/modkit/repokit"
	"wattpool/internal/platform/config"
	"wattpool/internal/platform/logger"
	"wattpool/internal/platform/store"

	entriesmod "wattpool/internal/services/entries/module"
	snapmod "wattpool/internal/services/snapshot/module"
)

func main() {
	fOnce := flag.Bool("once", false, "write a single snapshot and exit")
	flag.Parse()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	snapCfg := root.Prefix("CORE_SNAPSHOT_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	// the pool lives in postgres, a memory store would always be empty here
	pgCfg.MustString("DBURL")
	chCfg.MustString("DBURL")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGFromConfig(pgCfg),
		CH: store.CHFromConfig(chCfg, "snapshot"),
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

	ref, err := reference.FromConfig(snapCfg)
	if err != nil {
		l.Panic().Err(err).Msg("reference tables failed to load")
	}

	deps := modkit.Deps{Log: *l, Cfg: root, PG: st.PG, CH: st.CH, Ref: ref}

	entries := entriesmod.New(deps, entriesmod.Options{Backend: entriesmod.BackendPostgres})
	pool := module.MustPortsOf[entriesmod.Ports](entries)

	snap := snapmod.New(deps, pool.Reader)
	if err := module.MigrateAll(ctx, entries, snap); err != nil {
		l.Panic().Err(err).Msg("migrate failed")
	}
	runner := module.MustPortsOf[snapmod.Ports](snap).Runner

	info := version.For("wattpool-snapshot")
	l.Info().
		Str("version", info.Version).
		Dur("interval", snap.Options().Interval).
		Bool("once", *fOnce).
		Msg("starting wattpool-snapshot")

	if *fOnce {
		n, err := runner.Once(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("snapshot failed")
		}
		l.Info().Int("rows", n).Msg("snapshot done")
		return
	}

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		l.Fatal().Err(err).Msg("snapshot worker stopped")
	}
}
