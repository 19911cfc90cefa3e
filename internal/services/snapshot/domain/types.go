// Package domain defines snapshot worker ports and rows
package domain

import (
	"context"
	"time"

	"wattpool/internal/core/entry"
)

// Dimensions written per pass
const (
	DimensionTotal     = "total"
	DimensionRegion    = "region"
	DimensionSource    = "source"
	DimensionAppliance = "appliance"
)

// TotalName is the name carried by the single total row
const TotalName = "all"

// Row is one weighted bucket of one aggregation pass
type Row struct {
	TakenAt   time.Time
	Dimension string
	Name      string
	WeightWh  float64
}

// ReaderPort yields one snapshot of the entry pool
type ReaderPort interface {
	All(ctx context.Context) ([]entry.Entry, error)
}

// SinkPort persists snapshot rows
type SinkPort interface {
	// EnsureSchema creates the destination table when missing
	EnsureSchema(ctx context.Context) error
	// Write appends the rows of one pass in a single batch
	Write(ctx context.Context, rows []Row) error
	// Last reports when the most recent pass was taken, ok is false on an empty table
	Last(ctx context.Context) (taken time.Time, ok bool, err error)
}

// LeaseFunc runs do only when this worker holds the lease for slot
type LeaseFunc func(ctx context.Context, slot time.Time, do func(context.Context) error) error

// RunnerPort is the entrypoint the binary drives
type RunnerPort interface {
	// Once runs a single aggregation pass and returns the number of rows written
	Once(ctx context.Context) (int, error)
	// Run loops until ctx is done, a failed pass is retried at the next tick
	Run(ctx context.Context) error
}
