// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "wattpool/internal/modkit"
	"wattpool/internal/modkit/httpkit"

	metahttp "wattpool/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)
	m := &Module{Base: modkit.NewBase(b), startedAt: time.Now()}

	hd := metahttp.Deps{
		ServiceName: deps.Cfg.MayString("SERVICE_NAME", "wattpool-api"),
		StartedAt:   m.startedAt,
		Ref:         deps.Reference(),
	}
	// keep typed nils out of the interface fields so unconfigured backends report skipped
	if deps.PG != nil {
		hd.PG = deps.PG
	}
	if deps.CH != nil {
		hd.CH = deps.CH
	}
	m.Routes = func(r httpkit.Router) { metahttp.Register(r, hd) }
	return m
}
