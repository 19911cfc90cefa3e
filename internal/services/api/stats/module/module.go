// Package module wires stats into the API using modkit
package module

import (
	"wattpool/internal/core/power"
	modkit "wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"
	statshttp "wattpool/internal/services/api/stats/http"
	statssvc "wattpool/internal/services/api/stats/service"
)

// Module implements the stats module
type Module struct {
	modkit.Base
	svc statssvc.Service
}

// New constructs the stats module
// the entry reader must be injected with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)
	ports, ok := modkit.PortsAs[Ports](b)
	if !ok || ports.Reader == nil {
		panic("stats module requires Ports{Reader}")
	}

	svc := statssvc.New(ports.Reader, power.New(deps.Reference()))
	m := &Module{Base: modkit.NewBase(b), svc: svc}
	m.Exports = adaptStatsPort{svc: svc}
	m.Routes = func(r httpkit.Router) { statshttp.Register(r, m.svc) }
	return m
}
