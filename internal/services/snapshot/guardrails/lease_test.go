package guardrails

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wattpool/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

type row struct {
	claimed bool
	err     error
}

func (r row) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	*dst[0].(*bool) = r.claimed
	return nil
}

type tag struct{}

func (tag) String() string      { return "CREATE TABLE" }
func (tag) RowsAffected() int64 { return 0 }

type pg struct {
	row   row
	args  []any
	execs []string
}

func (p *pg) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	p.execs = append(p.execs, sql)
	return tag{}, nil
}

func (p *pg) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("unused")
}

func (p *pg) QueryRow(_ context.Context, _ string, args ...any) store.Row {
	p.args = args
	return p.row
}

func (p *pg) Tx(_ context.Context, fn func(q store.RowQuerier) error) error { return fn(p) }

func TestMakeLease(t *testing.T) {
	slot := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		row     row
		ran     bool
		wantErr error
	}{
		{"claimed", row{claimed: true}, true, nil},
		{"held", row{err: pgx.ErrNoRows}, false, ErrLeaseHeld},
		{"db error", row{err: errors.New("conn reset")}, false, nil},
	}
	for _, tc := range cases {
		db := &pg{row: tc.row}
		ran := false
		err := MakeLease(db, "stats_snapshots", "test", 90*time.Second)(context.Background(), slot, func(context.Context) error {
			ran = true
			return nil
		})
		if ran != tc.ran {
			t.Fatalf("%s: ran = %v", tc.name, ran)
		}
		switch {
		case tc.wantErr != nil && !errors.Is(err, tc.wantErr):
			t.Fatalf("%s: err = %v", tc.name, err)
		case tc.name == "db error" && err == nil:
			t.Fatalf("%s: expected error", tc.name)
		case tc.name == "claimed" && err != nil:
			t.Fatalf("%s: err = %v", tc.name, err)
		}
		if db.args[0] != "stats_snapshots" || !strings.HasPrefix(db.args[1].(string), "test:") || db.args[3] != "90 seconds" {
			t.Fatalf("%s: args = %v", tc.name, db.args)
		}
	}
}

func TestMakeLeaseBlankOwner(t *testing.T) {
	db := &pg{row: row{claimed: true}}
	slot := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := MakeLease(db, "stats_snapshots", " ", 0)(context.Background(), slot, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.HasPrefix(db.args[1].(string), "snapshot:") || db.args[3] != "180 seconds" {
		t.Fatalf("args = %v", db.args)
	}
}

func TestUnguardedAlwaysRuns(t *testing.T) {
	ran := false
	_ = Unguarded()(context.Background(), time.Now(), func(context.Context) error { ran = true; return nil })
	if !ran {
		t.Fatalf("unguarded lease skipped the pass")
	}
}

func TestEnsureLeaseSchema(t *testing.T) {
	db := &pg{}
	if err := EnsureLeaseSchema(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	if len(db.execs) != 1 || !strings.Contains(db.execs[0], "snapshot_leases") {
		t.Fatalf("execs = %v", db.execs)
	}
}
