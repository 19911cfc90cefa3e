// Package leaderboard filters, ranks and pages shared entries
package leaderboard

import (
	"cmp"
	"slices"
	"strings"

	"wattpool/internal/core/entry"
	"wattpool/internal/core/power"
	"wattpool/internal/core/reference"
	str "wattpool/internal/platform/strings"
)

// Filter and sort sentinels
const (
	AnyAppliance = "ANY"
	AnySource    = "ANY"
	GreenSource  = "GREEN"
	AllRegions   = "ALL"
	SortHigh     = "HIGH"
	SortLow      = "LOW"

	// DefaultPageSize is used when the configured size is not positive
	DefaultPageSize = 16
)

// Request selects, orders and pages entries
type Request struct {
	Page      int    `json:"page"`
	Appliance string `json:"appliance"`
	Source    string `json:"source"`
	Region    string `json:"region"`
	Sort      string `json:"sort"`
}

// Result is one page of sanitized entries
type Result struct {
	Entries      []entry.Sanitized `json:"entries"`
	CurrentPage  int               `json:"current_page"`
	TotalPages   int               `json:"total_pages"`
	TotalEntries int               `json:"total_entries"`
}

// Normalize resolves filters to canonical table spellings
// unknown values fall back to ANY, ALL and HIGH
func Normalize(req Request, ref *reference.Tables) Request {
	if ref == nil {
		ref = reference.Defaults()
	}
	out := Request{Page: req.Page}

	out.Appliance = AnyAppliance
	if name, ok := str.Canonical(req.Appliance, ref.ApplianceNames()...); ok {
		out.Appliance = name
	}

	out.Source = AnySource
	if src, ok := str.Canonical(req.Source, append([]string{GreenSource, AnySource}, ref.Sources()...)...); ok {
		out.Source = src
	}

	out.Region = AllRegions
	if code, ok := str.Canonical(req.Region, ref.RegionCodes()...); ok {
		out.Region = code
	}

	out.Sort = SortHigh
	if s, ok := str.Canonical(req.Sort, SortHigh, SortLow); ok {
		out.Sort = s
	}
	return out
}

type scored struct {
	e     *entry.Entry
	value float64
	total float64
}

// Query filters, scores, sorts and pages entries
// entries are read only; the result holds sanitized copies
func Query(c power.Calc, entries []entry.Entry, req Request, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	rows := make([]scored, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !matchRegion(e, req.Region) || !matchAppliance(e, req.Appliance) {
			continue
		}
		total := c.LocationWh(e.Appliances)
		rows = append(rows, scored{e: e, value: score(c, e, req.Source, total), total: total})
	}

	desc := !strings.EqualFold(req.Sort, SortLow)
	tieOnTotal := !anySource(req.Source)
	slices.SortStableFunc(rows, func(a, b scored) int {
		if r := directed(cmp.Compare(a.value, b.value), desc); r != 0 {
			return r
		}
		if tieOnTotal {
			if r := directed(cmp.Compare(a.total, b.total), desc); r != 0 {
				return r
			}
		}
		return strings.Compare(a.e.PublicID, b.e.PublicID)
	})

	total := len(rows)
	pages := max(1, (total+pageSize-1)/pageSize)
	page := min(max(req.Page, 1), pages)

	lo := min((page-1)*pageSize, total)
	hi := min(lo+pageSize, total)
	out := make([]entry.Sanitized, 0, hi-lo)
	for _, r := range rows[lo:hi] {
		out = append(out, r.e.Sanitize())
	}

	return Result{
		Entries:      out,
		CurrentPage:  page,
		TotalPages:   pages,
		TotalEntries: total,
	}
}

func matchRegion(e *entry.Entry, region string) bool {
	return region == "" || region == AllRegions || e.Region == region
}

func matchAppliance(e *entry.Entry, name string) bool {
	if name == "" || name == AnyAppliance {
		return true
	}
	for _, a := range e.Appliances {
		if a.Type == name {
			return true
		}
	}
	return false
}

func score(c power.Calc, e *entry.Entry, source string, total float64) float64 {
	switch {
	case anySource(source):
		return total
	case strings.EqualFold(source, GreenSource):
		return c.GreenFractionOf(e.Region)
	default:
		return c.SourceFraction(e.Region, source)
	}
}

func anySource(s string) bool { return s == "" || strings.EqualFold(s, AnySource) }

func directed(r int, desc bool) int {
	if desc {
		return -r
	}
	return r
}
