// Package http provides http transport for entry uploads
package http

import (
	stdhttp "net/http"

	"wattpool/internal/modkit/httpkit"
	"wattpool/internal/services/entries/domain"
)

// PublishInput replaces the entry owned by PrivateID, or creates one
type PublishInput struct {
	PrivateID string       `json:"private_id" validate:"max=64"`
	Entry     domain.Input `json:"entry"`
}

// PublishResult reports the keys and whether a new entry was created
type PublishResult struct {
	domain.Keys
	Created bool `json:"created"`
}

// Register mounts entry endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.Input](r, "/", h.create)
	httpkit.PostJSON[PublishInput](r, "/publish", h.publish)

	// {id} is the public id for reads and the private id for writes
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.Input](r, "/{id}", h.replace)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Publish a location to the shared pool
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Entry"
// @Success 201 {object} domain.Keys
// @Router /entries [post]
func (h *handlers) create(r *stdhttp.Request, in domain.Input) (any, error) {
	keys, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(keys), nil
}

// @Summary Replace by private id, falling back to create
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body PublishInput true "Entry and optional private id"
// @Success 200 {object} PublishResult
// @Success 201 {object} PublishResult
// @Router /entries/publish [post]
func (h *handlers) publish(r *stdhttp.Request, in PublishInput) (any, error) {
	keys, created, err := h.svc.Publish(r.Context(), in.PrivateID, in.Entry)
	if err != nil {
		return nil, err
	}
	out := PublishResult{Keys: keys, Created: created}
	if created {
		return httpkit.Created(out), nil
	}
	return out, nil
}

// @Summary Sanitized entry by public id
// @Tags Entries
// @Produce json
// @Param id path string true "public id"
// @Success 200 {object} domain.Sanitized
// @Router /entries/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Replace an entry by private id
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "private id"
// @Param payload body domain.Input true "Entry"
// @Success 200 {object} domain.Keys
// @Router /entries/{id} [put]
func (h *handlers) replace(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Replace(r.Context(), httpkit.Param(r, "id"), in)
}

// @Summary Delete an entry by private id
// @Tags Entries
// @Param id path string true "private id"
// @Success 204
// @Router /entries/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
