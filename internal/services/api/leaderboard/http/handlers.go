// Package http provides http transport for the leaderboard
package http

import (
	stdhttp "net/http"

	"wattpool/internal/core/leaderboard"
	"wattpool/internal/modkit/httpkit"
	"wattpool/internal/services/api/leaderboard/domain"
	svc "wattpool/internal/services/api/leaderboard/service"
)

// Register mounts leaderboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// query string form for links and page flips
	httpkit.Get(r, "/", h.list)

	// same request as a JSON body, an empty body is the default view
	httpkit.PostJSON[domain.Request](r, "/query", h.query, httpkit.LooseJSON)
}

type handlers struct{ svc svc.Service }

// @Summary Filtered, sorted, paginated shared entries
// @Tags Leaderboard
// @Produce json
// @Param page query int false "page, clamped into range" default(1)
// @Param appliance query string false "appliance type or ANY" default(ANY)
// @Param source query string false "source name, GREEN or ANY" default(ANY)
// @Param region query string false "region code or ALL" default(ALL)
// @Param sort query string false "HIGH or LOW" default(HIGH)
// @Success 200 {object} domain.Result
// @Router /leaderboard [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.Query(r.Context(), domain.Request{
		Page:      httpkit.QueryInt(r, "page", 1),
		Appliance: httpkit.Query(r, "appliance", leaderboard.AnyAppliance),
		Source:    httpkit.Query(r, "source", leaderboard.AnySource),
		Region:    httpkit.Query(r, "region", leaderboard.AllRegions),
		Sort:      httpkit.Query(r, "sort", leaderboard.SortHigh),
	})
}

// @Summary Leaderboard query with a JSON body
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param payload body domain.Request false "Query"
// @Success 200 {object} domain.Result
// @Router /leaderboard/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.Request) (any, error) {
	return h.svc.Query(r.Context(), in)
}
