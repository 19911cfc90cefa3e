// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"
	"strings"

	phttp "wattpool/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultBase is where the docs live unless Options.Base says otherwise
const DefaultBase = "/api/docs"

// Options configures the docs mount
type Options struct {
	Enabled bool
	// Base is the UI path, DefaultBase when empty
	Base string
	// Expand is the UI operation list state: list, full or none
	Expand string
}

// OptionsFrom returns enabled options with the default base
func OptionsFrom(enabled bool) Options { return Options{Enabled: enabled} }

// Mount serves the Swagger UI at Base and the decorated spec at Base/doc.json
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	base := "/" + strings.Trim(o.Base, "/")
	if base == "/" {
		base = DefaultBase
	}
	expand := o.Expand
	if expand == "" {
		expand = "list"
	}

	r.Get(base, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, base+"/", http.StatusPermanentRedirect)
	})
	r.Get(base+"/doc.json", serveDocJSON())
	r.Handle(base+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(base+"/doc.json"),
		httpSwagger.DocExpansion(expand),
		httpSwagger.DeepLinking(true),
	))
}
