package repo

import (
	"context"
	"slices"
	"strings"
	"sync"

	perr "wattpool/internal/platform/errors"
	"wattpool/internal/services/entries/domain"
)

// Memory is a process local pool guarded by a RWMutex
// it is the default backend and is lost on restart
type Memory struct {
	mu        sync.RWMutex
	byPublic  map[string]domain.Entry
	byPrivate map[string]string
}

// NewMemory returns an empty pool
func NewMemory() *Memory {
	return &Memory{
		byPublic:  map[string]domain.Entry{},
		byPrivate: map[string]string{},
	}
}

// All copies every entry under the read lock, ordered by public id
func (m *Memory) All(_ context.Context) ([]domain.Entry, error) {
	m.mu.RLock()
	out := make([]domain.Entry, 0, len(m.byPublic))
	for _, e := range m.byPublic {
		out = append(out, e.Clone())
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Entry) int { return strings.Compare(a.PublicID, b.PublicID) })
	return out, nil
}

// Get returns a copy of the entry with publicID
func (m *Memory) Get(_ context.Context, publicID string) (domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.byPublic[publicID]
	if !ok {
		return domain.Entry{}, perr.ErrNotFound
	}
	return e.Clone(), nil
}

// Insert adds e, both ids must be unused
func (m *Memory) Insert(_ context.Context, e domain.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.byPublic[e.PublicID]; dup {
		return perr.Newf(perr.ErrorCodeConflict, "entry %s already exists", e.PublicID)
	}
	if _, dup := m.byPrivate[e.PrivateID]; dup {
		return perr.New(perr.ErrorCodeConflict, "private id already in use")
	}
	m.byPublic[e.PublicID] = e.Clone()
	m.byPrivate[e.PrivateID] = e.PublicID
	return nil
}

// Replace swaps the address, region and appliances of the entry owned by privateID
// both ids are kept
func (m *Memory) Replace(_ context.Context, privateID string, e domain.Entry) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pub, ok := m.byPrivate[privateID]
	if !ok {
		return domain.Entry{}, perr.ErrNotFound
	}
	e.PublicID, e.PrivateID = pub, privateID
	e = e.Clone()
	m.byPublic[pub] = e
	return e.Clone(), nil
}

// Delete removes the entry owned by privateID
func (m *Memory) Delete(_ context.Context, privateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pub, ok := m.byPrivate[privateID]
	if !ok {
		return perr.ErrNotFound
	}
	delete(m.byPrivate, privateID)
	delete(m.byPublic, pub)
	return nil
}
