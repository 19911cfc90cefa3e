// Package modkit provides module wiring and core deps
package modkit

import (
	"wattpool/internal/core/reference"
	"wattpool/internal/modkit/repokit"
	"wattpool/internal/platform/config"
	"wattpool/internal/platform/logger"
	"wattpool/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is nil when the process runs on the memory entry store
	PG repokit.TxRunner
	// CH is nil unless a snapshot sink is configured
	CH store.Clickhouse

	// Ref is the immutable appliance catalog and region mix
	Ref *reference.Tables
}

// Reference returns Ref or the built in tables when unset
func (d Deps) Reference() *reference.Tables {
	if d.Ref == nil {
		return reference.Defaults()
	}
	return d.Ref
}
