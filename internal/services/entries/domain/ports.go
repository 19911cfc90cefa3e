package domain

import "context"

// ReaderPort is the read only view the leaderboard, stats and snapshot consume
// All returns one consistent snapshot that callers may not use to mutate the pool
type ReaderPort interface {
	All(ctx context.Context) ([]Entry, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ReaderPort
	Get(ctx context.Context, publicID string) (Sanitized, error)
	Create(ctx context.Context, in Input) (Keys, error)
	Replace(ctx context.Context, privateID string, in Input) (Keys, error)
	Delete(ctx context.Context, privateID string) error
	Publish(ctx context.Context, privateID string, in Input) (Keys, bool, error)
}
