package modkit

import (
	"net/http"

	phttp "wattpool/internal/platform/net/http"
	str "wattpool/internal/platform/strings"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Base carries the name, prefix, middleware and route registration every module shares
// modules embed it and set Routes to their own handler registration
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	extra  []func(phttp.Router)

	// Routes registers the module's own endpoints
	Routes func(phttp.Router)
	// Exports is what Ports returns
	Exports any
}

// NewBase builds the shared module state from b
func NewBase(b Built) Base {
	return Base{name: b.Name, prefix: b.Prefix, mws: b.Mw, extra: b.Register}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m *Base) MountRoutes(r phttp.Router) {
	r.Route(m.Prefix(), func(rr phttp.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		if m.Routes != nil {
			m.Routes(rr)
		}
		for _, fn := range m.extra {
			fn(rr)
		}
	})
}

// Name returns the module name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module exports
func (m *Base) Ports() any { return m.Exports }

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
