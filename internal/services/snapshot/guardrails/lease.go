// Package guardrails keeps concurrent snapshot workers from writing the same pass twice
package guardrails

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"wattpool/internal/modkit/repokit"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/store"
	str "wattpool/internal/platform/strings"
	"wattpool/internal/services/snapshot/domain"

	"github.com/jackc/pgx/v5"
)

// ErrLeaseHeld signals another worker owns the current pass
var ErrLeaseHeld = errors.New("snapshot: lease already held")

// LeaseSchema holds one row per named lease
const LeaseSchema = `
CREATE TABLE IF NOT EXISTS snapshot_leases (
	name       text PRIMARY KEY,
	owner      text NOT NULL,
	slot       timestamptz NOT NULL,
	expires_at timestamptz NOT NULL
)`

// Unguarded runs every pass, used when no postgres pool is configured
func Unguarded() domain.LeaseFunc {
	return func(ctx context.Context, _ time.Time, do func(context.Context) error) error { return do(ctx) }
}

// EnsureLeaseSchema creates the lease table
func EnsureLeaseSchema(ctx context.Context, pg repokit.TxRunner) error {
	if _, err := store.Exec(ctx, pg, LeaseSchema); err != nil {
		return perr.FromPostgres(err, "create snapshot_leases")
	}
	return nil
}

// MakeLease claims the named lease for a slot, expired leases are reclaimed
// a slot already claimed by another owner returns ErrLeaseHeld
func MakeLease(pg repokit.TxRunner, name, owner string, ttl time.Duration) domain.LeaseFunc {
	owner = fmt.Sprintf("%s:%d", str.Or(owner, "snapshot"), os.Getpid())
	if ttl <= 0 {
		ttl = 3 * time.Minute
	}
	interval := fmt.Sprintf("%d seconds", int64(ttl/time.Second))

	return func(ctx context.Context, slot time.Time, do func(context.Context) error) error {
		var claimed bool
		if err := repokit.WithTx(ctx, pg, func(q repokit.Queryer) error {
			row := q.QueryRow(ctx, `
				INSERT INTO snapshot_leases (name, owner, slot, expires_at)
				VALUES ($1, $2, $3, now() + ($4)::interval)
				ON CONFLICT (name) DO UPDATE
				   SET owner = EXCLUDED.owner, slot = EXCLUDED.slot, expires_at = EXCLUDED.expires_at
				 WHERE snapshot_leases.expires_at <= now()
				    OR (snapshot_leases.owner = EXCLUDED.owner AND snapshot_leases.slot < EXCLUDED.slot)
				RETURNING true
			`, name, owner, slot.UTC(), interval)
			if err := row.Scan(&claimed); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil
				}
				return err
			}
			return nil
		}); err != nil {
			return perr.FromPostgres(err, "claim snapshot lease")
		}
		if !claimed {
			return ErrLeaseHeld
		}
		return do(ctx)
	}
}
