// Package domain holds the leaderboard contracts
package domain

import (
	"context"

	"wattpool/internal/core/leaderboard"
)

type (
	// Request selects, orders and pages the pool
	Request = leaderboard.Request

	// Result is one page of the pool
	Result = leaderboard.Result
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Query(ctx context.Context, req Request) (Result, error)
}
