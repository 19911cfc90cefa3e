// Package service runs the periodic stats snapshot
package service

import (
	"context"
	"errors"
	"time"

	"wattpool/internal/core/power"
	"wattpool/internal/core/stats"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/logger"
	"wattpool/internal/services/snapshot/domain"
	"wattpool/internal/services/snapshot/guardrails"
)

// Config tunes the worker loop
type Config struct {
	Interval time.Duration
	// SkipFresh skips the startup pass when the last one is younger than Interval
	SkipFresh bool
}

// Svc implements domain.RunnerPort
type Svc struct {
	reader domain.ReaderPort
	sink   domain.SinkPort
	calc   power.Calc
	lease  domain.LeaseFunc
	cfg    Config
	now    func() time.Time
}

var _ domain.RunnerPort = (*Svc)(nil)

// New constructs the worker, a nil lease runs every pass unguarded
func New(reader domain.ReaderPort, sink domain.SinkPort, calc power.Calc, lease domain.LeaseFunc, cfg Config) *Svc {
	if reader == nil || sink == nil {
		panic("snapshot.Service requires a reader and a sink")
	}
	if lease == nil {
		lease = guardrails.Unguarded()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	return &Svc{reader: reader, sink: sink, calc: calc, lease: lease, cfg: cfg, now: time.Now}
}

// Once aggregates the pool and writes one pass
func (s *Svc) Once(ctx context.Context) (int, error) {
	taken := s.now().UTC().Truncate(time.Millisecond)

	var written int
	err := s.lease(ctx, taken, func(ctx context.Context) error {
		entries, err := s.reader.All(ctx)
		if err != nil {
			return perr.Storage(err, "read entries")
		}
		rows := Rows(taken, stats.Aggregate(s.calc, entries))
		if err := s.sink.Write(ctx, rows); err != nil {
			return err
		}
		written = len(rows)
		logger.C(ctx).Info().
			Time("taken_at", taken).
			Int("entries", len(entries)).
			Int("rows", written).
			Msg("snapshot written")
		return nil
	})
	return written, err
}

// Run writes a pass at startup and then every Interval until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("snapshot")
	if err := s.sink.EnsureSchema(ctx); err != nil {
		return err
	}

	if !s.fresh(ctx) {
		s.pass(ctx)
	}

	t := time.NewTicker(s.cfg.Interval)
	defer t.Stop()
	log.Info().Dur("interval", s.cfg.Interval).Msg("snapshot loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("snapshot loop stopped")
			return ctx.Err()
		case <-t.C:
			s.pass(ctx)
		}
	}
}

// pass runs Once and logs the outcome, failures wait for the next tick
func (s *Svc) pass(ctx context.Context) {
	if _, err := s.Once(ctx); err != nil {
		switch {
		case errors.Is(err, guardrails.ErrLeaseHeld):
			logger.C(ctx).Debug().Msg("snapshot lease held elsewhere, skipping pass")
		case ctx.Err() != nil:
		default:
			logger.C(ctx).Error().Err(err).Msg("snapshot pass failed, retrying next tick")
		}
	}
}

// fresh reports whether a recent pass makes the startup pass redundant
func (s *Svc) fresh(ctx context.Context) bool {
	if !s.cfg.SkipFresh {
		return false
	}
	last, ok, err := s.sink.Last(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("could not read last snapshot")
		return false
	}
	return ok && s.now().Sub(last) < s.cfg.Interval
}

// Rows flattens an aggregation into snapshot rows, total first
func Rows(taken time.Time, res stats.Result) []domain.Row {
	rows := make([]domain.Row, 0, 1+len(res.ByRegion)+len(res.BySource)+len(res.ByAppliance))
	rows = append(rows, domain.Row{TakenAt: taken, Dimension: domain.DimensionTotal, Name: domain.TotalName, WeightWh: res.TotalEnergy})
	add := func(dim string, buckets []stats.Bucket) {
		for _, b := range buckets {
			rows = append(rows, domain.Row{TakenAt: taken, Dimension: dim, Name: b.Name, WeightWh: b.Weight})
		}
	}
	add(domain.DimensionRegion, res.ByRegion)
	add(domain.DimensionSource, res.BySource)
	add(domain.DimensionAppliance, res.ByAppliance)
	return rows
}
