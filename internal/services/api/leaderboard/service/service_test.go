package service

import (
	"context"
	"errors"
	"testing"

	"wattpool/internal/core/entry"
	"wattpool/internal/core/power"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/testkit"
	"wattpool/internal/services/api/leaderboard/domain"
)

type reader struct {
	es  []entry.Entry
	err error
}

func (r reader) All(context.Context) ([]entry.Entry, error) { return r.es, r.err }

func heater(id, region string, hours float64) entry.Entry {
	return entry.Entry{
		PublicID:   id,
		PrivateID:  "p" + id,
		Region:     region,
		Appliances: []entry.Appliance{{Type: "Heater", Hours: entry.Number(hours), Quantity: 1}},
	}
}

func TestQueryNormalizesFilters(t *testing.T) {
	s := New(reader{es: []entry.Entry{heater("a", "US", 1), heater("b", "NO", 2), heater("c", "US", 3)}}, power.New(nil), 2)

	res, err := s.Query(context.Background(), domain.Request{Region: "us", Sort: "low", Source: "nonsense"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.TotalEntries != 2 || res.TotalPages != 1 || res.Entries[0].PublicID != "a" {
		t.Fatalf("Query = %+v", res)
	}

	res, _ = s.Query(context.Background(), domain.Request{Page: 5, Appliance: "toaster"})
	if res.TotalEntries != 3 || res.CurrentPage != 2 || len(res.Entries) != 1 || res.Entries[0].PublicID != "a" {
		t.Fatalf("unknown appliance should mean ANY and page should clamp: %+v", res)
	}
}

func TestQueryStoreFailure(t *testing.T) {
	s := New(reader{err: errors.New("pool offline")}, power.New(nil), 0)
	_, err := s.Query(context.Background(), domain.Request{})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestNewRequiresReader(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, power.New(nil), 16) })
}
