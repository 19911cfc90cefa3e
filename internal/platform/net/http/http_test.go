package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wattpool/internal/platform/config"
	perr "wattpool/internal/platform/errors"
	pnet "wattpool/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	N int `json:"n" validate:"gte=0"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func newRouter() Router {
	r := AdaptChi(chi.NewRouter())
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			next.ServeHTTP(w, req.WithContext(pnet.WithRequest(req.Context(), "rid-1")))
		})
	})
	r.Route("/api", func(api Router) {
		GetJSON(api, "/things/{id}", func(req *stdhttp.Request) (any, error) {
			if Param(req, "id") == "missing" {
				return nil, perr.NotFoundf("thing not found")
			}
			return map[string]any{"id": Param(req, "id"), "page": QueryInt(req, "page", 1)}, nil
		})
		PostJSON(api, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
			return Created(in.N * 2), nil
		})
		PutJSON(api, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
			return in.N, nil
		})
		DeleteJSON(api, "/things/{id}", func(*stdhttp.Request) (any, error) {
			return NoContent(), nil
		})
		api.Group(func(g Router) {
			g.Get("/boom", Handle(func(*stdhttp.Request) Response { return Error(errors.New("boom")) }))
		})
	})
	return r
}

func TestRoutesAndEnvelope(t *testing.T) {
	t.Parallel()
	h := newRouter().Mux()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	rr := do(stdhttp.MethodGet, "/api/things/a1?page=3", "")
	env := decode(t, rr)
	if rr.Code != 200 || env.RequestID != "rid-1" || env.Status != "OK" {
		t.Fatalf("GET => %d %+v", rr.Code, env)
	}
	data := env.Data.(map[string]any)
	if data["id"] != "a1" || data["page"] != float64(3) {
		t.Fatalf("GET data = %+v", data)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}

	rr = do(stdhttp.MethodGet, "/api/things/missing", "")
	if env = decode(t, rr); rr.Code != 404 || env.Code != perr.ErrorCodeNotFound || env.Error != "thing not found" {
		t.Fatalf("missing => %d %+v", rr.Code, env)
	}

	rr = do(stdhttp.MethodPost, "/api/echo", `{"n":4}`)
	if env = decode(t, rr); rr.Code != 201 || env.Data != float64(8) {
		t.Fatalf("POST => %d %+v", rr.Code, env)
	}

	rr = do(stdhttp.MethodPost, "/api/echo", `{"n":-1}`)
	if env = decode(t, rr); rr.Code != 400 || env.Code != perr.ErrorCodeValidation || env.Field != "n" {
		t.Fatalf("POST invalid => %d %+v", rr.Code, env)
	}

	rr = do(stdhttp.MethodPut, "/api/echo", `{"n":5}`)
	if env = decode(t, rr); rr.Code != 200 || env.Data != float64(5) {
		t.Fatalf("PUT => %d %+v", rr.Code, env)
	}

	rr = do(stdhttp.MethodDelete, "/api/things/a1", "")
	if rr.Code != 204 || rr.Body.Len() != 0 {
		t.Fatalf("DELETE => %d %q", rr.Code, rr.Body.String())
	}

	rr = do(stdhttp.MethodGet, "/api/boom", "")
	if env = decode(t, rr); rr.Code != 500 || env.Code != perr.ErrorCodeUnknown {
		t.Fatalf("boom => %d %+v", rr.Code, env)
	}
}

func TestQueryHelpers(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(stdhttp.MethodGet, "/?page=x&sort=%20low%20&n=7", nil)

	if got := QueryInt(req, "page", 1); got != 1 {
		t.Fatalf("bad int should default, got %d", got)
	}
	if got := QueryInt(req, "n", 1); got != 7 {
		t.Fatalf("QueryInt = %d", got)
	}
	if got := QueryInt(req, "absent", 9); got != 9 {
		t.Fatalf("absent int = %d", got)
	}
	if got := QueryString(req, "sort", "HIGH"); got != "low" {
		t.Fatalf("QueryString = %q", got)
	}
	if got := QueryString(req, "region", "ALL"); got != "ALL" {
		t.Fatalf("absent string = %q", got)
	}
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()
	r := AdaptChi(chi.NewRouter())
	MountProfiler(r, "/debug", false)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != 404 {
		t.Fatalf("disabled profiler served %d", rr.Code)
	}

	r = AdaptChi(chi.NewRouter())
	MountProfiler(r, "/debug", true)
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != 200 {
		t.Fatalf("profiler index => %d", rr.Code)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	t.Setenv("TESTSRV_PORT", "127.0.0.1:0")
	srv := NewServer(config.New().Prefix("TESTSRV_"))
	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("addr = %q", srv.Addr())
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
