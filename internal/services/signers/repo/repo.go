// Package repo provides postgres access for signers
package repo

import (
	"context"

	"hubgate/internal/modkit/repokit"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/services/signers/domain"
)

// Repo defines the repository contract for signers
type Repo interface {
	Get(ctx context.Context, pk []byte) (domain.Signer, error)
	Upsert(ctx context.Context, s domain.Signer) (domain.Signer, error)
	EnsureUser(ctx context.Context, fid int64) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Get returns the signer for pk or ErrNotFound
func (r *queries) Get(ctx context.Context, pk []byte) (domain.Signer, error) {
	const sql = `
select pk, fid, active
from signers
where pk = $1
`
	var s domain.Signer
	if err := r.q.QueryRow(ctx, sql, pk).Scan(&s.Pk, &s.Fid, &s.Active); err != nil {
		if perr.IsNoRows(err) {
			return domain.Signer{}, perr.NotFoundf("signer not found")
		}
		return domain.Signer{}, perr.Wrap(err, perr.ErrorCodeDB, "get signer")
	}
	return s, nil
}

// Upsert writes the signer row, replacing fid and active on conflict
func (r *queries) Upsert(ctx context.Context, s domain.Signer) (domain.Signer, error) {
	const sql = `
insert into signers (pk, fid, active)
values ($1, $2, $3)
on conflict (pk) do update set fid = excluded.fid, active = excluded.active
returning pk, fid, active
`
	var out domain.Signer
	if err := r.q.QueryRow(ctx, sql, s.Pk, s.Fid, s.Active).Scan(&out.Pk, &out.Fid, &out.Active); err != nil {
		return domain.Signer{}, perr.Wrap(err, perr.ErrorCodeDB, "upsert signer")
	}
	return out, nil
}

// EnsureUser creates an empty placeholder user row so the signer FK holds.
// Existing rows are left untouched.
func (r *queries) EnsureUser(ctx context.Context, fid int64) error {
	const sql = `
insert into users (fid)
values ($1)
on conflict (fid) do nothing
`
	if _, err := r.q.Exec(ctx, sql, fid); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "ensure user")
	}
	return nil
}
