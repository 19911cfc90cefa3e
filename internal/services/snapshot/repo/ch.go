// Package repo holds the clickhouse sink for snapshot rows
package repo

import (
	"context"
	"time"

	"wattpool/internal/modkit/repokit"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/services/snapshot/domain"
)

// Table is the destination table name
const Table = "stats_snapshots"

// Schema creates the snapshot table, rows are append only
const Schema = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
	taken_at  DateTime64(3, 'UTC'),
	dimension LowCardinality(String),
	name      String,
	weight_wh Float64
) ENGINE = MergeTree
ORDER BY (dimension, name, taken_at)`

// CH writes snapshot rows through the store clickhouse seam
type CH struct {
	ch repokit.Clickhouse
}

// NewCH returns a sink over ch, panics on nil
func NewCH(ch repokit.Clickhouse) *CH {
	if ch == nil {
		panic("snapshot: clickhouse sink requires SERVICE_CLICKHOUSE_DBURL")
	}
	return &CH{ch: ch}
}

var _ domain.SinkPort = (*CH)(nil)

// EnsureSchema creates the snapshot table when missing
func (s *CH) EnsureSchema(ctx context.Context) error {
	if err := s.ch.Exec(ctx, Schema); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "create %s", Table)
	}
	return nil
}

// Write appends rows in one batch
func (s *CH) Write(ctx context.Context, rows []domain.Row) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.ch.Insert(ctx, Table, columns(rows)); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "insert %d snapshot rows", len(rows))
	}
	return nil
}

// Last returns the newest taken_at, ok is false when no pass was recorded
func (s *CH) Last(ctx context.Context) (time.Time, bool, error) {
	rows, err := s.ch.Query(ctx, `SELECT max(taken_at), count() FROM `+Table)
	if err != nil {
		return time.Time{}, false, perr.Wrapf(err, perr.ErrorCodeDB, "read last snapshot")
	}
	defer rows.Close()

	var (
		taken time.Time
		n     uint64
	)
	if rows.Next() {
		if err := rows.Scan(&taken, &n); err != nil {
			return time.Time{}, false, perr.Wrapf(err, perr.ErrorCodeDB, "scan last snapshot")
		}
	}
	if err := rows.Err(); err != nil {
		return time.Time{}, false, perr.Wrapf(err, perr.ErrorCodeDB, "read last snapshot")
	}
	if n == 0 {
		return time.Time{}, false, nil
	}
	return taken.UTC(), true, nil
}

// columns lays rows out in table column order
func columns(rows []domain.Row) [][]any {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.TakenAt.UTC(), r.Dimension, r.Name, r.WeightWh})
	}
	return out
}
