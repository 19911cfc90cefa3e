package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wattpool/internal/modkit"
	phttp "wattpool/internal/platform/net/http"
	"wattpool/internal/platform/testkit"
	"wattpool/internal/services/entries/repo"
	"wattpool/internal/services/entries/service"

	"github.com/go-chi/chi/v5"
)

type client struct {
	t *testing.T
	h stdhttp.Handler
}

func (c client) do(method, path, body string) (int, map[string]any, string) {
	c.t.Helper()
	rr := httptest.NewRecorder()
	c.h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env struct {
		Data  map[string]any `json:"data"`
		Field string         `json:"field"`
	}
	if rr.Code != stdhttp.StatusNoContent {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			c.t.Fatalf("%s %s: decode %v (%s)", method, path, err, rr.Body.String())
		}
	}
	return rr.Code, env.Data, env.Field
}

func newClient(t *testing.T) client {
	svc := service.New(repo.NewMemory(), nil)
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Service: svc}))
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return client{t: t, h: r.Mux()}
}

const body = `{"address":"1 Main St","region":"us","appliances":[{"appliance_type":"heater","daily_hours":"2","quantity":1}]}`

func TestEntriesLifecycle(t *testing.T) {
	c := newClient(t)

	code, keys, _ := c.do(stdhttp.MethodPost, "/entries", body)
	if code != stdhttp.StatusCreated || keys["public_id"] == "" || keys["private_id"] == "" {
		t.Fatalf("create => %d %v", code, keys)
	}
	pub, priv := keys["public_id"].(string), keys["private_id"].(string)

	code, got, _ := c.do(stdhttp.MethodGet, "/entries/"+pub, "")
	if code != stdhttp.StatusOK || got["region"] != "US" {
		t.Fatalf("get => %d %v", code, got)
	}
	if _, leaked := got["private_id"]; leaked {
		t.Fatalf("get leaks private id: %v", got)
	}

	if code, _, _ = c.do(stdhttp.MethodPut, "/entries/"+pub, body); code != stdhttp.StatusNotFound {
		t.Fatalf("put by public id => %d", code)
	}
	code, upd, _ := c.do(stdhttp.MethodPut, "/entries/"+priv, strings.Replace(body, "1 Main St", "2 Side St", 1))
	if code != stdhttp.StatusOK || upd["public_id"] != pub {
		t.Fatalf("put => %d %v", code, upd)
	}

	if code, _, _ = c.do(stdhttp.MethodDelete, "/entries/"+pub, ""); code != stdhttp.StatusNotFound {
		t.Fatalf("delete by public id => %d", code)
	}
	if code, _, _ = c.do(stdhttp.MethodDelete, "/entries/"+priv, ""); code != stdhttp.StatusNoContent {
		t.Fatalf("delete => %d", code)
	}
	if code, _, _ = c.do(stdhttp.MethodGet, "/entries/"+pub, ""); code != stdhttp.StatusNotFound {
		t.Fatalf("get deleted => %d", code)
	}
}

func TestEntriesValidation(t *testing.T) {
	c := newClient(t)
	cases := []struct {
		body  string
		code  int
		field string
	}{
		{`{"address":"","region":"US"}`, stdhttp.StatusBadRequest, "address"},
		{`{"address":"a","region":"US","appliances":[{"appliance_type":"Oven","daily_hours":30,"quantity":1}]}`, stdhttp.StatusBadRequest, "appliances[0].daily_hours"},
		{`{"address":"a","region":"US","appliances":[{"appliance_type":"Oven","daily_hours":1,"quantity":1.5}]}`, stdhttp.StatusBadRequest, "appliances[0].quantity"},
		{`{"address":"a","region":"US","unknown":1}`, stdhttp.StatusBadRequest, ""},
		{`not json`, stdhttp.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		code, _, field := c.do(stdhttp.MethodPost, "/entries", tc.body)
		if code != tc.code || field != tc.field {
			t.Fatalf("%s => %d field %q", tc.body, code, field)
		}
	}
}

func TestPublish(t *testing.T) {
	c := newClient(t)
	code, first, _ := c.do(stdhttp.MethodPost, "/entries/publish", `{"entry":`+body+`}`)
	if code != stdhttp.StatusCreated || first["created"] != true {
		t.Fatalf("publish new => %d %v", code, first)
	}
	code, again, _ := c.do(stdhttp.MethodPost, "/entries/publish", `{"private_id":"`+first["private_id"].(string)+`","entry":`+body+`}`)
	if code != stdhttp.StatusOK || again["created"] != false || again["public_id"] != first["public_id"] {
		t.Fatalf("publish existing => %d %v", code, again)
	}
}

func TestRequiresService(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}) })
}
