// Package service runs leaderboard queries over a pool snapshot
package service

import (
	"context"

	"wattpool/internal/core/leaderboard"
	"wattpool/internal/core/power"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/logger"
	"wattpool/internal/services/api/leaderboard/domain"
	entries "wattpool/internal/services/entries/domain"
)

// Service defines the leaderboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the leaderboard service
type Svc struct {
	reader   entries.ReaderPort
	calc     power.Calc
	pageSize int
}

// New constructs a leaderboard service, a non positive pageSize selects the default
func New(reader entries.ReaderPort, calc power.Calc, pageSize int) *Svc {
	if reader == nil {
		panic("leaderboard.Service requires a non nil entry reader")
	}
	if pageSize <= 0 {
		pageSize = leaderboard.DefaultPageSize
	}
	return &Svc{reader: reader, calc: calc, pageSize: pageSize}
}

// Query normalizes req and runs it over one snapshot of the pool
func (s *Svc) Query(ctx context.Context, req domain.Request) (domain.Result, error) {
	all, err := s.reader.All(ctx)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("leaderboard: read pool")
		return domain.Result{}, perr.Storage(err, "read entry pool")
	}
	req = leaderboard.Normalize(req, s.calc.Ref())
	res := leaderboard.Query(s.calc, all, req, s.pageSize)
	logger.C(ctx).Debug().
		Str("appliance", req.Appliance).
		Str("source", req.Source).
		Str("region", req.Region).
		Str("sort", req.Sort).
		Int("page", res.CurrentPage).
		Int("total", res.TotalEntries).
		Msg("leaderboard query")
	return res, nil
}
