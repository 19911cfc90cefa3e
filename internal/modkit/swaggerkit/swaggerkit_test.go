package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "wattpool/internal/platform/net/http"
	"wattpool/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func docJSON(t *testing.T) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, OptionsFrom(true))
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
			t.Fatalf("decode spec: %v", err)
		}
	}
	return rr, spec
}

func TestServeDocJSON(t *testing.T) {
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-test"] = true })
	Register(nil)

	rr, spec := docJSON(t)
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json => %d", rr.Code)
	}
	if spec["openapi"] != "3.0.3" || spec["x-test"] != true {
		t.Fatalf("spec header = %v %v", spec["openapi"], spec["x-test"])
	}
	if _, ok := spec["servers"].([]any); !ok {
		t.Fatalf("servers missing")
	}
	paths := spec["paths"].(map[string]any)
	get := paths["/stats"].(map[string]any)["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := responses[code]; !ok {
			t.Fatalf("stats responses missing %s: %v", code, responses)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestServeDocJSONBadSpec(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	if rr, _ := docJSON(t); rr.Code != http.StatusInternalServerError {
		t.Fatalf("bad spec => %d", rr.Code)
	}
}

func TestMountDisabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, OptionsFrom(false))
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled docs => %d", rr.Code)
	}
}

func TestEnsureServersDowngrades(t *testing.T) {
	spec := map[string]any{"openapi": "3.1.0"}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	spec = map[string]any{"swagger": "2.0", "servers": []any{}}
	ensureServers(spec, "/x")
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("swagger 2 not lifted: %v", spec)
	}
}

func TestMountCustomBase(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{Enabled: true, Base: "docs/"})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json => %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != "/docs/" {
		t.Fatalf("redirect => %d %q", rr.Code, rr.Header().Get("Location"))
	}
}
