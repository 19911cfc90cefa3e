// Package service contains stats workflows
package service

import (
	"context"

	"wattpool/internal/core/power"
	"wattpool/internal/core/stats"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/logger"
	"wattpool/internal/services/api/stats/domain"
	entries "wattpool/internal/services/entries/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	reader entries.ReaderPort
	calc   power.Calc
}

// New constructs a stats service
func New(reader entries.ReaderPort, calc power.Calc) *Svc {
	if reader == nil {
		panic("stats.Service requires a non nil entry reader")
	}
	return &Svc{reader: reader, calc: calc}
}

// Aggregate reduces one snapshot of the pool
func (s *Svc) Aggregate(ctx context.Context) (domain.Result, error) {
	all, err := s.reader.All(ctx)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("stats: read pool")
		return domain.Result{}, perr.Storage(err, "read entry pool")
	}
	res := stats.Aggregate(s.calc, all)
	logger.C(ctx).Debug().Int("entries", len(all)).Float64("total_wh", res.TotalEnergy).Msg("stats aggregate")
	return res, nil
}
