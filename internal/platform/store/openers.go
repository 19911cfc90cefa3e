package store

import (
	"context"
	"fmt"
	"time"

	chx "wattpool/internal/platform/store/ch"
	"wattpool/internal/platform/store/pg"
)

// openPG opens pg, pings it with backoff and wraps it with the sql adapter
func openPG(ctx context.Context, cfg PGConfig, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:         cfg.URL,
		MaxConns:    cfg.MaxConns,
		SlowMs:      cfg.SlowQueryMs,
		AppName:     cfg.AppName,
		MaxConnIdle: cfg.MaxConnIdle,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	err = retry(ctx, attempts, 150*time.Millisecond, 2*time.Second, func() error {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		// ping the pool directly so boot does not emit trace lines
		return p.Pool.Ping(toCtx)
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	s.Log.Info().Int32("max_conns", cfg.MaxConns).Msg("postgres connected")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg CHConfig) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.URL,
		ClientName: cfg.ClientName,
		ClientTag:  cfg.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

// retry runs fn up to attempts times with doubling backoff capped at ceiling
// it stops early when ctx is done
func retry(ctx context.Context, attempts int, start, ceiling time.Duration, fn func() error) error {
	var lastErr error
	backoff := start
	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, ceiling)
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
