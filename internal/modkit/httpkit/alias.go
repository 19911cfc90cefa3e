// Package httpkit provides handler and routing helpers that alias the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "wattpool/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Param returns a URL parameter of the matched route
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// Query returns a trimmed query parameter or def
func Query(r *http.Request, key, def string) string { return phttp.QueryString(r, key, def) }

// QueryInt returns a query parameter as int or def
func QueryInt(r *http.Request, key string, def int) int { return phttp.QueryInt(r, key, def) }
