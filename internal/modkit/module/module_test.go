package module

import (
	"context"
	"errors"
	"strings"
	"testing"

	phttp "wattpool/internal/platform/net/http"
	kit "wattpool/internal/platform/testkit"
)

type reader interface {
	Count(context.Context) int
}

type fixedReader int

func (f fixedReader) Count(context.Context) int { return int(f) }

type stubModule struct{ ports any }

func (s *stubModule) MountRoutes(phttp.Router) {}
func (s *stubModule) Ports() any               { return s.ports }
func (s *stubModule) Name() string             { return "stub" }

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Label  string
		Reader reader
		hidden reader
	}

	cases := []struct {
		name   string
		ports  any
		wantOK bool
		want   int
	}{
		{"nil", nil, false, 0},
		{"direct", fixedReader(3), true, 3},
		{"struct field", bundle{Label: "x", Reader: fixedReader(5)}, true, 5},
		{"pointer to struct", &bundle{Reader: fixedReader(7)}, true, 7},
		{"unexported only", bundle{hidden: fixedReader(9)}, false, 0},
		{"primitive", 42, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[reader](&stubModule{ports: c.ports})
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && got.Count(context.Background()) != c.want {
				t.Fatalf("count = %d, want %d", got.Count(context.Background()), c.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	m := &stubModule{ports: fixedReader(1)}
	if MustPortsOf[reader](m).Count(context.Background()) != 1 {
		t.Fatalf("wrong port")
	}
	kit.MustPanic(t, func() { MustPortsOf[reader](&stubModule{}) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("entries", fixedReader(2))
	Register("meta", nil)

	if got, ok := PortsAs[reader]("entries"); !ok || got.Count(context.Background()) != 2 {
		t.Fatalf("PortsAs entries = %v %v", got, ok)
	}
	if _, ok := PortsAs[reader]("meta"); ok {
		t.Fatalf("nil ports should not register")
	}
	if _, ok := PortsAs[string]("entries"); ok {
		t.Fatalf("wrong type should not assert")
	}
	if names := Names(); len(names) != 1 || names[0] != "entries" {
		t.Fatalf("Names = %v", names)
	}
}

type migrating struct {
	stubModule
	calls *[]string
	name  string
	err   error
}

func (m *migrating) Name() string { return m.name }

func (m *migrating) Migrate(context.Context) error {
	*m.calls = append(*m.calls, m.name)
	return m.err
}

func TestMigrateAll(t *testing.T) {
	var calls []string
	a := &migrating{calls: &calls, name: "a"}
	b := &migrating{calls: &calls, name: "b", err: errors.New("ddl")}
	c := &migrating{calls: &calls, name: "c"}

	if err := MigrateAll(context.Background(), a, &stubModule{}, c); err != nil || strings.Join(calls, ",") != "a,c" {
		t.Fatalf("MigrateAll = %v, calls %v", err, calls)
	}

	calls = nil
	err := MigrateAll(context.Background(), a, b, c)
	if err == nil || !strings.Contains(err.Error(), "migrate b: ddl") || strings.Join(calls, ",") != "a,b" {
		t.Fatalf("MigrateAll = %v, calls %v", err, calls)
	}
}
