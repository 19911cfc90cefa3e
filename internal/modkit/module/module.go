// Package module defines the minimal contract for a modkit module
package module

import (
	"context"
	"fmt"

	phttp "wattpool/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// kept sibling to modkit to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// Migrator is implemented by modules that own storage schema
type Migrator interface {
	Migrate(ctx context.Context) error
}

// MigrateAll runs Migrate on every module that implements Migrator, in order
func MigrateAll(ctx context.Context, mods ...Module) error {
	for _, m := range mods {
		mg, ok := m.(Migrator)
		if !ok {
			continue
		}
		if err := mg.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", m.Name(), err)
		}
	}
	return nil
}
