// Package domain holds the stats contracts
package domain

import (
	"context"

	"wattpool/internal/core/stats"
)

type (
	// Result is the aggregation over the whole pool
	Result = stats.Result

	// Bucket is one named total
	Bucket = stats.Bucket
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Aggregate(ctx context.Context) (Result, error)
}
