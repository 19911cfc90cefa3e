// Package module wires the leaderboard into the API using modkit
package module

import (
	"wattpool/internal/core/leaderboard"
	"wattpool/internal/core/power"
	modkit "wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"
	lbhttp "wattpool/internal/services/api/leaderboard/http"
	lbsvc "wattpool/internal/services/api/leaderboard/service"
)

// Module implements the leaderboard module
type Module struct {
	modkit.Base
	svc lbsvc.Service
}

// New constructs the leaderboard module
// the entry reader must be injected with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("leaderboard"), modkit.WithPrefix("/leaderboard")}, opts...)
	ports, ok := modkit.PortsAs[Ports](b)
	if !ok || ports.Reader == nil {
		panic("leaderboard module requires Ports{Reader}")
	}

	pageSize := deps.Cfg.MayInt("PAGE_SIZE", leaderboard.DefaultPageSize)
	svc := lbsvc.New(ports.Reader, power.New(deps.Reference()), pageSize)

	m := &Module{Base: modkit.NewBase(b), svc: svc}
	m.Exports = Exports{Leaderboard: svc}
	m.Routes = func(r httpkit.Router) { lbhttp.Register(r, m.svc) }
	return m
}
