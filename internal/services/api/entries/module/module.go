// Package module wires entry uploads into the API using modkit
package module

import (
	modkit "wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"
	entrieshttp "wattpool/internal/services/api/entries/http"
	"wattpool/internal/services/entries/domain"
)

// Ports are injected with modkit.WithPorts
type Ports struct {
	Service domain.ServicePort
}

// Module implements the entries api module
type Module struct {
	modkit.Base
}

// New constructs the entries api module
// the entry service must be injected with modkit.WithPorts(Ports{...})
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("entries-api"), modkit.WithPrefix("/entries")}, opts...)
	ports, ok := modkit.PortsAs[Ports](b)
	if !ok || ports.Service == nil {
		panic("entries api module requires Ports{Service}")
	}
	m := &Module{Base: modkit.NewBase(b)}
	m.Routes = func(r httpkit.Router) { entrieshttp.Register(r, ports.Service) }
	return m
}
