// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"wattpool/internal/core/leaderboard"
	"wattpool/internal/core/reference"
	"wattpool/internal/core/version"
	"wattpool/internal/modkit/httpkit"
	"wattpool/internal/modkit/repokit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Ref         *reference.Tables
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Ref == nil {
		d.Ref = reference.Defaults()
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/reference", h.reference)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"wattpool-api"`
	Started string `json:"started"  example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-19T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"wattpool-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// SourceLabel pairs a source key with its display name
type SourceLabel struct {
	Key   string `json:"key"   example:"solar"`
	Label string `json:"label" example:"Solar"`
}

// FilterOptions lists the values each leaderboard filter accepts
type FilterOptions struct {
	Appliance []string `json:"appliance"`
	Source    []string `json:"source"`
	Region    []string `json:"region"`
	Sort      []string `json:"sort"`
}

// ReferenceResponse is the reference data a client needs to label filters
type ReferenceResponse struct {
	Appliances []reference.ApplianceType `json:"appliances"`
	Regions    []reference.RegionMix     `json:"regions"`
	Sources    []SourceLabel             `json:"sources"`
	Filters    FilterOptions             `json:"filters"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := repokit.Ping(ctx, name, p); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	// unconfigured backends are skipped; the memory pool is always ready
	checks := []ReadyCheck{check("pg", h.deps.PG), check("ch", h.deps.CH)}
	resp := ReadyResponse{Status: "ok", Checks: checks, Now: time.Now().UTC().Format(time.RFC3339)}
	for _, c := range checks {
		if c.Status == "fail" {
			resp.Status = "fail"
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: resp}, nil
		}
	}
	return resp, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Appliance catalog, region mixes and filter options
// @Tags Meta
// @Produce json
// @Success 200 {object} ReferenceResponse
// @Router /meta/reference [get]
func (h *handlers) reference(_ *http.Request) (any, error) {
	ref := h.deps.Ref
	srcs := ref.Sources()
	labels := make([]SourceLabel, len(srcs))
	for i, s := range srcs {
		labels[i] = SourceLabel{Key: s, Label: reference.DisplaySource(s)}
	}
	return ReferenceResponse{
		Appliances: ref.Appliances(),
		Regions:    ref.Regions(),
		Sources:    labels,
		Filters: FilterOptions{
			Appliance: append([]string{leaderboard.AnyAppliance}, ref.ApplianceNames()...),
			Source:    append([]string{leaderboard.AnySource, leaderboard.GreenSource}, srcs...),
			Region:    append([]string{leaderboard.AllRegions}, ref.RegionCodes()...),
			Sort:      []string{leaderboard.SortHigh, leaderboard.SortLow},
		},
	}, nil
}
