package repo

import (
	"errors"
	"testing"

	perr "wattpool/internal/platform/errors"
	"wattpool/internal/services/entries/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dst {
		switch p := d.(type) {
		case *string:
			*p = r.vals[i].(string)
		case *[]byte:
			*p = r.vals[i].([]byte)
		}
	}
	return nil
}

func TestScanEntry(t *testing.T) {
	row := fakeRow{vals: []any{"pub", "priv", "addr", "US", []byte(`[{"appliance_type":"Heater","daily_hours":"2","quantity":1}]`)}}
	e, err := scanEntry(row)
	if err != nil {
		t.Fatalf("scanEntry: %v", err)
	}
	if e.PublicID != "pub" || len(e.Appliances) != 1 || e.Appliances[0].Hours != 2 {
		t.Fatalf("scanEntry = %+v", e)
	}

	corrupt := fakeRow{vals: []any{"pub", "priv", "addr", "US", []byte(`{not json`)}}
	e, err = scanEntry(corrupt)
	if err != nil || e.Appliances != nil || e.Address != "addr" {
		t.Fatalf("corrupt appliances should degrade: %+v %v", e, err)
	}

	if _, err := scanEntry(fakeRow{err: errors.New("scan")}); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestAppliancesDoc(t *testing.T) {
	doc, err := appliancesDoc(nil)
	if err != nil || doc != "[]" {
		t.Fatalf("nil doc = %q %v", doc, err)
	}
	doc, _ = appliancesDoc([]domain.Appliance{{Type: "Oven", Hours: 1, Quantity: 2}})
	if doc != `[{"appliance_type":"Oven","daily_hours":1,"quantity":2}]` {
		t.Fatalf("doc = %s", doc)
	}
}

func TestPass(t *testing.T) {
	if pass(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	if err := pass(perr.ErrNotFound, "x"); err != perr.ErrNotFound {
		t.Fatalf("NotFound should pass through, got %v", err)
	}
	dup := &pgconn.PgError{Code: "23505"}
	if err := pass(dup, "insert"); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("unique violation => %v", err)
	}
	if err := pass(errors.New("conn reset"), "list"); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("foreign error => %v", err)
	}
}
