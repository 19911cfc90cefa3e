package config

import (
	"testing"
	"time"

	kit "wattpool/internal/platform/testkit"
)

func TestPrefixAccumulates(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.key("PAGE_SIZE"); got != "CORE_API_PAGE_SIZE" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("WP_CFG_")
	t.Setenv("WP_CFG_URL", "  postgres://x ")
	if got := c.MustString("URL"); got != "postgres://x" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("NOPE") })
}

func TestMustIntAndDuration(t *testing.T) {
	c := New().Prefix("WP_CFG_")
	t.Setenv("WP_CFG_N", "7")
	if c.MustInt("N") != 7 {
		t.Fatalf("MustInt mismatch")
	}
	t.Setenv("WP_CFG_BAD", "seven")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })

	t.Setenv("WP_CFG_EVERY", "90s")
	if c.MustDuration("EVERY") != 90*time.Second {
		t.Fatalf("MustDuration mismatch")
	}
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("WP_CFG_MAY_")
	if c.MayString("S", "d") != "d" || c.MayInt("I", 16) != 16 || !c.MayBool("B", true) {
		t.Fatalf("defaults not honored")
	}
	if c.MayDuration("D", time.Minute) != time.Minute {
		t.Fatalf("duration default not honored")
	}

	t.Setenv("WP_CFG_MAY_I", "x")
	if c.MayInt("I", 16) != 16 {
		t.Fatalf("invalid int should fall back")
	}
	t.Setenv("WP_CFG_MAY_I", "32")
	if c.MayInt("I", 16) != 32 {
		t.Fatalf("MayInt did not read value")
	}
	t.Setenv("WP_CFG_MAY_B", "maybe")
	if c.MayBool("B", false) {
		t.Fatalf("invalid bool should fall back")
	}
	if c.Has("UNSET") {
		t.Fatalf("Has on unset key")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("WP_CFG_")
	t.Setenv("WP_CFG_ORIGINS", " a, ,b ,")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("WP_CFG_ORIGINS", " , ")
	if got := c.MayCSV("ORIGINS", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV blank = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("WP_CFG_")
	if got := c.MayEnum("STORE", "memory", "memory", "pg"); got != "memory" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("WP_CFG_STORE", "PG")
	if got := c.MayEnum("STORE", "memory", "memory", "pg"); got != "pg" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("WP_CFG_STORE", "mongo")
	kit.MustPanic(t, func() { _ = c.MayEnum("STORE", "memory", "memory", "pg") })
}
