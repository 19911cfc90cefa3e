package modkit

import (
	"net/http"

	phttp "wattpool/internal/platform/net/http"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register []func(phttp.Router)
}

// Build applies defaults first, then opts, and returns a plain struct
// later options win so callers can override a module's defaults
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&c)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: append(([]func(phttp.Router))(nil), c.register...),
	}
}

// PortsAs returns the injected ports as T, ok is false when none of that type were given
func PortsAs[T any](b Built) (T, bool) {
	p, ok := b.Ports.(T)
	return p, ok
}
