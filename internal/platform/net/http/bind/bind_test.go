package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "wattpool/internal/platform/errors"
)

type item struct {
	Kind  string  `json:"kind" validate:"required"`
	Hours float64 `json:"hours" validate:"gte=0,lte=24"`
}

type payload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Items []item `json:"items" validate:"max=2,dive"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Home","items":[{"kind":"TV","hours":3}]}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Home" || len(got.Items) != 1 || got.Items[0].Hours != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantCode  perr.ErrorCode
		wantField string
	}{
		{"empty", "", perr.ErrorCodeJSON, ""},
		{"malformed", `{"name":`, perr.ErrorCodeJSON, ""},
		{"unknown field", `{"name":"Home","owner":"x"}`, perr.ErrorCodeJSON, ""},
		{"trailing", `{"name":"Home"} {}`, perr.ErrorCodeJSON, ""},
		{"short name", `{"name":"H"}`, perr.ErrorCodeValidation, "name"},
		{"nested bound", `{"name":"Home","items":[{"kind":"TV","hours":25}]}`, perr.ErrorCodeValidation, "items[0].hours"},
		{"too many", `{"name":"Home","items":[{"kind":"a"},{"kind":"b"},{"kind":"c"}]}`, perr.ErrorCodeValidation, "items"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body))
			_, err := ParseJSON[payload](req)
			if perr.CodeOf(err) != c.wantCode {
				t.Fatalf("code = %v (%v), want %v", perr.CodeOf(err), err, c.wantCode)
			}
			if w := perr.WireFrom(err); w.Field != c.wantField {
				t.Fatalf("field = %q, want %q", w.Field, c.wantField)
			}
		})
	}
}

func TestParseJSON_AllowEmptyAndUnknown(t *testing.T) {
	type loose struct {
		Page int `json:"page"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	got, err := ParseJSON[loose](req, JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Page != 0 {
		t.Fatalf("empty allowed: %+v %v", got, err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"page":2,"extra":true}`))
	got, err = ParseJSON[loose](req, JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Page != 2 {
		t.Fatalf("unknown allowed: %+v %v", got, err)
	}
}

func TestStructMessages(t *testing.T) {
	err := Struct(&payload{Name: "x"})
	if !strings.Contains(err.Error(), "name must be at least 2") {
		t.Fatalf("message = %q", err.Error())
	}
	if Struct(3) != nil {
		t.Fatalf("non struct should pass")
	}
	var nilp *payload
	if Struct(nilp) != nil {
		t.Fatalf("nil pointer should pass")
	}
}
