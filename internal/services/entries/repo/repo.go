// Package repo stores the shared entry pool in memory or postgres
package repo

import (
	"context"

	"wattpool/internal/services/entries/domain"
)

// Repo is the persistence surface for the pool
// Replace and Delete return perr.ErrNotFound when no entry owns privateID
type Repo interface {
	All(ctx context.Context) ([]domain.Entry, error)
	Get(ctx context.Context, publicID string) (domain.Entry, error)
	Insert(ctx context.Context, e domain.Entry) error
	Replace(ctx context.Context, privateID string, e domain.Entry) (domain.Entry, error)
	Delete(ctx context.Context, privateID string) error
}
