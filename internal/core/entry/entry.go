// Package entry defines the shared pool record and its public projection
package entry

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field
// it decodes from a JSON number or numeric string and never fails;
// anything else becomes NaN, which Value reports as 0
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = Number(math.NaN())
			return nil
		}
		b = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = Number(math.NaN())
		return nil
	}
	*n = Number(f)
	return nil
}

// MarshalJSON writes the raw value, 0 when it is not finite
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Value returns n clamped to a finite non negative float
func (n Number) Value() float64 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// Appliance is one appliance instance at a location
type Appliance struct {
	Type     string `json:"appliance_type"`
	Hours    Number `json:"daily_hours"`
	Quantity Number `json:"quantity"`
}

// Entry is one published location
// PrivateID is the owner capability for mutation and never leaves the write path
type Entry struct {
	PublicID   string      `json:"public_id"`
	PrivateID  string      `json:"private_id"`
	Address    string      `json:"address"`
	Region     string      `json:"region"`
	Appliances []Appliance `json:"appliances"`
}

// Sanitized is Entry without PrivateID
type Sanitized struct {
	PublicID   string      `json:"public_id"`
	Address    string      `json:"address"`
	Region     string      `json:"region"`
	Appliances []Appliance `json:"appliances"`
}

// Sanitize projects e for public output, the appliance slice is copied
func (e Entry) Sanitize() Sanitized {
	apps := make([]Appliance, len(e.Appliances))
	copy(apps, e.Appliances)
	return Sanitized{
		PublicID:   e.PublicID,
		Address:    e.Address,
		Region:     e.Region,
		Appliances: apps,
	}
}

// Clone returns a deep copy of e
func (e Entry) Clone() Entry {
	out := e
	if e.Appliances != nil {
		out.Appliances = append([]Appliance(nil), e.Appliances...)
	}
	return out
}
