// Package stats reduces the shared pool into energy totals per region, source and appliance type
package stats

import (
	"cmp"
	"slices"

	"wattpool/internal/core/entry"
	"wattpool/internal/core/power"
	"wattpool/internal/core/reference"
)

// UnknownBucket collects missing or unmatched region codes and appliance types
const UnknownBucket = "Unknown"

// Bucket is one named total in watt-hours
type Bucket struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Result holds the grand total and the three breakdowns
// lists are ordered by weight descending then name
type Result struct {
	TotalEnergy float64  `json:"total_energy"`
	ByRegion    []Bucket `json:"by_region"`
	BySource    []Bucket `json:"by_source"`
	ByAppliance []Bucket `json:"by_appliance"`
}

// Aggregate reduces every entry, filters never apply here
func Aggregate(c power.Calc, entries []entry.Entry) Result {
	ref := c.Ref()
	var total float64
	regions := map[string]float64{}
	appliances := map[string]float64{}

	for i := range entries {
		e := &entries[i]
		loc := c.LocationWh(e.Appliances)
		total = power.Add(total, loc)
		region := regionBucket(ref, e.Region)
		regions[region] = power.Add(regions[region], loc)

		for _, a := range e.Appliances {
			name := applianceBucket(ref, a.Type)
			appliances[name] = power.Add(appliances[name], c.ApplianceWh(a))
		}
	}

	// region totals are split once per region, never per appliance
	sources := map[string]float64{}
	for code, wh := range regions {
		if wh <= 0 {
			continue
		}
		mix, ok := ref.Mix(code)
		if !ok {
			continue
		}
		for src, pct := range mix.Shares {
			name := reference.DisplaySource(src)
			sources[name] = power.Add(sources[name], wh*pct/100)
		}
	}

	return Result{
		TotalEnergy: total,
		ByRegion:    buckets(regions),
		BySource:    buckets(sources),
		ByAppliance: buckets(appliances),
	}
}

func regionBucket(ref *reference.Tables, code string) string {
	if _, ok := ref.Mix(code); ok {
		return code
	}
	return UnknownBucket
}

func applianceBucket(ref *reference.Tables, name string) string {
	if _, ok := ref.Watts(name); ok {
		return name
	}
	return UnknownBucket
}

func buckets(m map[string]float64) []Bucket {
	out := make([]Bucket, 0, len(m))
	for name, w := range m {
		out = append(out, Bucket{Name: name, Weight: w})
	}
	slices.SortFunc(out, func(a, b Bucket) int {
		if r := cmp.Compare(b.Weight, a.Weight); r != 0 {
			return r
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
