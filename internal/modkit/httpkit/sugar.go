package httpkit

import (
	"net/http"

	phttp "wattpool/internal/platform/net/http"
	"wattpool/internal/platform/net/http/bind"
)

// LooseJSON tolerates an empty body and unknown fields, for query style POSTs
var LooseJSON = bind.JSONOptions{MaxBytes: 1 << 20, AllowEmptyBody: true}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// Delete registers a no-body handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.DeleteJSON(r, path, h)
}

// PostJSON mounts a validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	phttp.PostJSON(r, path, h, opts...)
}

// PutJSON mounts a validated JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	phttp.PutJSON(r, path, h, opts...)
}
