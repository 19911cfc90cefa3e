// Package power derives watt-hours per day from appliance instances and region mixes
// all functions are pure and degrade malformed input to zero
package power

import (
	"math"

	"wattpool/internal/core/entry"
	"wattpool/internal/core/reference"
)

// Calc evaluates energy against one set of reference tables
type Calc struct {
	ref *reference.Tables
}

// New returns a Calc over ref, nil selects the built in tables
func New(ref *reference.Tables) Calc {
	if ref == nil {
		ref = reference.Defaults()
	}
	return Calc{ref: ref}
}

// Ref returns the tables c evaluates against
func (c Calc) Ref() *reference.Tables { return c.ref }

// ApplianceWh is watts x hours x quantity, 0 for a type missing from the catalog
// or for a product that overflows
func (c Calc) ApplianceWh(a entry.Appliance) float64 {
	w, ok := c.ref.Watts(a.Type)
	if !ok {
		return 0
	}
	return finite(w * a.Hours.Value() * a.Quantity.Value())
}

// LocationWh sums ApplianceWh over apps
func (c Calc) LocationWh(apps []entry.Appliance) float64 {
	var sum float64
	for _, a := range apps {
		sum = Add(sum, c.ApplianceWh(a))
	}
	return sum
}

// Add returns sum + wh, or sum unchanged when the result would not be finite
func Add(sum, wh float64) float64 {
	if next := sum + wh; !math.IsNaN(next) && !math.IsInf(next, 0) {
		return next
	}
	return sum
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SourceShareWh is the part of e's energy drawn from source
func (c Calc) SourceShareWh(e entry.Entry, source string) float64 {
	return c.LocationWh(e.Appliances) * c.SourceFraction(e.Region, source)
}

// SourceFraction is the share of source in region as a 0..1 fraction
func (c Calc) SourceFraction(region, source string) float64 {
	return c.ref.Share(region, source) / 100
}

// GreenFractionOf is GreenFraction of region, 0 for an unknown region
func (c Calc) GreenFractionOf(region string) float64 {
	m, ok := c.ref.Mix(region)
	if !ok {
		return 0
	}
	return GreenFraction(m)
}

// GreenFraction is (solar + wind + hydro) / 100, missing sources count as 0
// it is a ranking signal and not an energy value
func GreenFraction(m reference.RegionMix) float64 {
	var pct float64
	for _, src := range reference.Green {
		pct += m.Shares[src]
	}
	return pct / 100
}
