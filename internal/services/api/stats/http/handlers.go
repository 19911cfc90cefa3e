// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"wattpool/internal/modkit/httpkit"
	svc "wattpool/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// totals by region, source and appliance type
	httpkit.Get(r, "/", h.aggregate)
}

type handlers struct{ svc svc.Service }

// @Summary Energy totals by region, source and appliance type
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.Result
// @Router /stats [get]
func (h *handlers) aggregate(r *stdhttp.Request) (any, error) {
	return h.svc.Aggregate(r.Context())
}
