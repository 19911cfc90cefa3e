// Package reference holds the appliance catalog and region power mix tables
// tables are immutable once built and safe for concurrent readers
package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"wattpool/internal/platform/config"
	str "wattpool/internal/platform/strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var embedded []byte

// Green lists the sources counted as green share
var Green = []string{"solar", "wind", "hydro"}

// ApplianceType is one catalog row
type ApplianceType struct {
	Name  string  `yaml:"name" json:"name"`
	Watts float64 `yaml:"watts" json:"watts"`
}

// RegionMix is the percentage share per source for one region
// share keys are lower case source names
type RegionMix struct {
	Code   string             `yaml:"code" json:"code"`
	Shares map[string]float64 `yaml:"shares" json:"shares"`
}

type rawTables struct {
	Version    int             `yaml:"version"`
	Appliances []ApplianceType `yaml:"appliances"`
	Regions    []RegionMix     `yaml:"regions"`
}

// Tables is the compiled reference data
type Tables struct {
	appliances []ApplianceType
	regions    []RegionMix

	watts   map[string]float64
	mixes   map[string]RegionMix
	sources []string
}

var (
	defaultsOnce sync.Once
	defaults     *Tables
)

// Defaults returns the built in tables
// panics if the embedded file is broken, which only a bad build can cause
func Defaults() *Tables {
	defaultsOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			panic(fmt.Errorf("reference: embedded defaults: %w", err))
		}
		defaults = t
	})
	return defaults
}

// FromConfig loads REFERENCE_FILE when set, otherwise returns Defaults
func FromConfig(cfg config.Conf) (*Tables, error) {
	path := cfg.MayString("REFERENCE_FILE", "")
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

// Load reads and compiles a YAML tables file
func Load(path string) (*Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference: read %s: %w", path, err)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: %w", path, err)
	}
	return t, nil
}

// Parse compiles YAML tables; unknown fields are rejected
func Parse(b []byte) (*Tables, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var raw rawTables
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("unsupported version %d (want 1)", raw.Version)
	}
	return New(raw.Appliances, raw.Regions)
}

// New validates and compiles tables from rows
// names and codes must be unique, watts and shares finite and non negative, shares at most 100
func New(appliances []ApplianceType, regions []RegionMix) (*Tables, error) {
	t := &Tables{
		watts: make(map[string]float64, len(appliances)),
		mixes: make(map[string]RegionMix, len(regions)),
	}
	for _, a := range appliances {
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			return nil, fmt.Errorf("appliance with empty name")
		}
		if _, dup := t.watts[a.Name]; dup {
			return nil, fmt.Errorf("duplicate appliance %q", a.Name)
		}
		if !finite(a.Watts) || a.Watts < 0 {
			return nil, fmt.Errorf("appliance %q: invalid watts %v", a.Name, a.Watts)
		}
		t.watts[a.Name] = a.Watts
		t.appliances = append(t.appliances, a)
	}

	seen := map[string]struct{}{}
	for _, r := range regions {
		r.Code = strings.TrimSpace(r.Code)
		if r.Code == "" {
			return nil, fmt.Errorf("region with empty code")
		}
		if _, dup := t.mixes[r.Code]; dup {
			return nil, fmt.Errorf("duplicate region %q", r.Code)
		}
		shares := make(map[string]float64, len(r.Shares))
		for src, pct := range r.Shares {
			key := str.Key(src)
			if key == "" {
				return nil, fmt.Errorf("region %q: empty source name", r.Code)
			}
			if !finite(pct) || pct < 0 || pct > 100 {
				return nil, fmt.Errorf("region %q: share %s=%v out of range", r.Code, key, pct)
			}
			shares[key] += pct
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				t.sources = append(t.sources, key)
			}
		}
		r.Shares = shares
		t.mixes[r.Code] = r
		t.regions = append(t.regions, r)
	}

	sort.Slice(t.appliances, func(i, j int) bool { return t.appliances[i].Name < t.appliances[j].Name })
	sort.Slice(t.regions, func(i, j int) bool { return t.regions[i].Code < t.regions[j].Code })
	sort.Strings(t.sources)
	return t, nil
}

// Watts returns the rated watts for an exact catalog name
func (t *Tables) Watts(name string) (float64, bool) {
	w, ok := t.watts[name]
	return w, ok
}

// Mix returns the power mix for an exact region code
func (t *Tables) Mix(code string) (RegionMix, bool) {
	m, ok := t.mixes[code]
	return m, ok
}

// Share returns the percentage of source in region code, 0 when either is unknown
// source is matched ignoring case
func (t *Tables) Share(code, source string) float64 {
	m, ok := t.mixes[code]
	if !ok {
		return 0
	}
	return m.Shares[str.Key(source)]
}

// Appliances returns catalog rows sorted by name
func (t *Tables) Appliances() []ApplianceType {
	return append([]ApplianceType(nil), t.appliances...)
}

// Regions returns region mixes sorted by code
// share maps are shared with the tables and must not be written
func (t *Tables) Regions() []RegionMix {
	return append([]RegionMix(nil), t.regions...)
}

// ApplianceNames returns catalog names sorted
func (t *Tables) ApplianceNames() []string {
	out := make([]string, len(t.appliances))
	for i, a := range t.appliances {
		out[i] = a.Name
	}
	return out
}

// RegionCodes returns region codes sorted
func (t *Tables) RegionCodes() []string {
	out := make([]string, len(t.regions))
	for i, r := range t.regions {
		out[i] = r.Code
	}
	return out
}

// Sources returns every lower case source name present in any region mix, sorted
func (t *Tables) Sources() []string {
	return append([]string(nil), t.sources...)
}

// DisplaySource returns the display spelling of a source name
func DisplaySource(source string) string { return str.Title(source) }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
