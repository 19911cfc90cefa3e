package repo

import (
	"context"
	"encoding/json"

	"wattpool/internal/modkit/repokit"
	perr "wattpool/internal/platform/errors"
	"wattpool/internal/platform/store"
	"wattpool/internal/services/entries/domain"
)

// Schema creates the entries table
// ids are text so a malformed private id is a miss, not a cast error
const Schema = `
create table if not exists entries (
	public_id  text primary key,
	private_id text not null unique,
	address    text not null,
	region     text not null,
	appliances jsonb not null default '[]'::jsonb,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
)
`

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Migrate creates the schema if it does not exist
func Migrate(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return perr.FromPostgres(err, "create entries table")
}

const columns = `public_id, private_id, address, region, appliances`

func scanEntry(r store.Row) (domain.Entry, error) {
	var (
		e   domain.Entry
		raw []byte
	)
	if err := r.Scan(&e.PublicID, &e.PrivateID, &e.Address, &e.Region, &raw); err != nil {
		return e, err
	}
	// a corrupt document degrades to an entry without appliances
	if err := json.Unmarshal(raw, &e.Appliances); err != nil {
		e.Appliances = nil
	}
	return e, nil
}

func appliancesDoc(apps []domain.Appliance) (string, error) {
	if apps == nil {
		apps = []domain.Appliance{}
	}
	b, err := json.Marshal(apps)
	return string(b), err
}

func (r *queries) All(ctx context.Context) ([]domain.Entry, error) {
	out, err := store.Many(ctx, r.q, scanEntry, `select `+columns+` from entries order by public_id`)
	if err != nil {
		return nil, perr.FromPostgres(err, "list entries")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, publicID string) (domain.Entry, error) {
	e, err := store.One(ctx, r.q, scanEntry, `select `+columns+` from entries where public_id = $1`, publicID)
	if err != nil {
		return e, pass(err, "get entry")
	}
	return e, nil
}

func (r *queries) Insert(ctx context.Context, e domain.Entry) error {
	doc, err := appliancesDoc(e.Appliances)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode appliances")
	}
	const sql = `
insert into entries (public_id, private_id, address, region, appliances)
values ($1, $2, $3, $4, $5::jsonb)
`
	_, err = r.q.Exec(ctx, sql, e.PublicID, e.PrivateID, e.Address, e.Region, doc)
	return perr.FromPostgres(err, "insert entry")
}

func (r *queries) Replace(ctx context.Context, privateID string, e domain.Entry) (domain.Entry, error) {
	doc, err := appliancesDoc(e.Appliances)
	if err != nil {
		return domain.Entry{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode appliances")
	}
	const sql = `
update entries
set address = $2, region = $3, appliances = $4::jsonb, updated_at = now()
where private_id = $1
returning ` + columns
	out, err := store.One(ctx, r.q, scanEntry, sql, privateID, e.Address, e.Region, doc)
	if err != nil {
		return out, pass(err, "replace entry")
	}
	return out, nil
}

func (r *queries) Delete(ctx context.Context, privateID string) error {
	err := store.ExecOne(ctx, r.q, `delete from entries where private_id = $1`, privateID)
	return pass(err, "delete entry")
}

// pass keeps NotFound as is and maps everything else through the pg code table
func pass(err error, msg string) error {
	if err == nil || perr.IsCode(err, perr.ErrorCodeNotFound) {
		return err
	}
	return perr.FromPostgres(err, msg)
}
