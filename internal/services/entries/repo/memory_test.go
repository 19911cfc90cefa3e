package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	perr "wattpool/internal/platform/errors"
	"wattpool/internal/services/entries/domain"
)

func sample(id string) domain.Entry {
	return domain.Entry{
		PublicID:   "pub-" + id,
		PrivateID:  "priv-" + id,
		Address:    "addr " + id,
		Region:     "US",
		Appliances: []domain.Appliance{{Type: "Heater", Hours: 2, Quantity: 1}},
	}
}

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Insert(ctx, sample("a")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := m.Insert(ctx, sample("a")); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate Insert err = %v", err)
	}
	dupPriv := sample("b")
	dupPriv.PrivateID = "priv-a"
	if err := m.Insert(ctx, dupPriv); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate private id err = %v", err)
	}

	upd := domain.Entry{PublicID: "ignored", PrivateID: "ignored", Address: "new", Region: "DE"}
	got, err := m.Replace(ctx, "priv-a", upd)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got.PublicID != "pub-a" || got.PrivateID != "priv-a" || got.Address != "new" || got.Region != "DE" {
		t.Fatalf("Replace = %+v", got)
	}
	e, err := m.Get(ctx, "pub-a")
	if err != nil || e.Address != "new" {
		t.Fatalf("Get after replace = %+v %v", e, err)
	}
	if _, err := m.Get(ctx, "ignored"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Replace must keep the public id, Get(ignored) err = %v", err)
	}

	if _, err := m.Replace(ctx, "nope", upd); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Replace unknown err = %v", err)
	}
	if err := m.Delete(ctx, "nope"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Delete unknown err = %v", err)
	}
	if err := m.Delete(ctx, "pub-a"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Delete by public id must not work, err = %v", err)
	}
	if err := m.Delete(ctx, "priv-a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if all, _ := m.All(ctx); len(all) != 0 {
		t.Fatalf("All after delete = %+v", all)
	}
}

func TestMemoryAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, id := range []string{"c", "a", "b"} {
		if err := m.Insert(ctx, sample(id)); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := m.All(ctx)
	if len(all) != 3 || all[0].PublicID != "pub-a" || all[2].PublicID != "pub-c" {
		t.Fatalf("All order = %+v", all)
	}
	all[0].Address = "mutated"
	all[0].Appliances[0].Type = "mutated"

	again, _ := m.All(ctx)
	if again[0].Address != "addr a" || again[0].Appliances[0].Type != "Heater" {
		t.Fatalf("All leaked store state: %+v", again[0])
	}

	in := sample("d")
	_ = m.Insert(ctx, in)
	in.Appliances[0].Type = "mutated"
	if e, _ := m.Get(ctx, "pub-d"); e.Appliances[0].Type != "Heater" {
		t.Fatalf("Insert kept a reference to the caller's slice")
	}
}

func TestMemoryConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Insert(ctx, sample(fmt.Sprint(i)))
		}()
		go func() {
			defer wg.Done()
			all, _ := m.All(ctx)
			for _, e := range all {
				if e.PublicID == "" || len(e.Appliances) != 1 {
					t.Errorf("partial entry in snapshot: %+v", e)
				}
			}
		}()
	}
	wg.Wait()
	if all, _ := m.All(ctx); len(all) != 8 {
		t.Fatalf("All = %d entries", len(all))
	}
}
