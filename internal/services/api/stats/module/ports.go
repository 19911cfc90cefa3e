package module

import (
	"context"

	"wattpool/internal/services/api/stats/domain"
	statssvc "wattpool/internal/services/api/stats/service"
	entries "wattpool/internal/services/entries/domain"
)

// Ports are injected with modkit.WithPorts
type Ports struct {
	Reader entries.ReaderPort
}

type adaptStatsPort struct{ svc statssvc.Service }

// Aggregate returns the totals over the whole pool
func (a adaptStatsPort) Aggregate(ctx context.Context) (domain.Result, error) {
	return a.svc.Aggregate(ctx)
}
