// Package repo provides postgres access for users and follow links
package repo

import (
	"context"

	"hubgate/internal/modkit/repokit"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/services/users/domain"
)

// Repo defines the repository contract for users and links
type Repo interface {
	Get(ctx context.Context, fid int64) (domain.User, error)
	Upsert(ctx context.Context, u domain.User) (domain.User, error)
	EnsureUsers(ctx context.Context, fids []int64) error
	Linked(ctx context.Context, fid int64, d domain.FollowDirection) ([]domain.User, error)
	InsertFollow(ctx context.Context, fid, target, ts int64) error
	DeleteFollow(ctx context.Context, fid, target int64) error
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

const userColumns = `fid, username, display_name, bio, url, profile_pic`

func scanUser(row repokit.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Fid, &u.Username, &u.DisplayName, &u.Bio, &u.URL, &u.ProfilePic)
	return u, err
}

// Get returns the user row for fid or ErrNotFound
func (r *queries) Get(ctx context.Context, fid int64) (domain.User, error) {
	const sql = `
select ` + userColumns + `
from users
where fid = $1
`
	u, err := scanUser(r.q.QueryRow(ctx, sql, fid))
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.User{}, perr.NotFoundf("user %d not found", fid)
		}
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeDB, "get user")
	}
	return u, nil
}

// Upsert writes the full profile row, replacing every attribute on conflict
func (r *queries) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	const sql = `
insert into users (fid, username, display_name, bio, url, profile_pic)
values ($1, $2, $3, $4, $5, $6)
on conflict (fid) do update set
	username = excluded.username,
	display_name = excluded.display_name,
	bio = excluded.bio,
	url = excluded.url,
	profile_pic = excluded.profile_pic
returning ` + userColumns + `
`
	out, err := scanUser(r.q.QueryRow(ctx, sql, u.Fid, u.Username, u.DisplayName, u.Bio, u.URL, u.ProfilePic))
	if err != nil {
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeDB, "upsert user")
	}
	return out, nil
}

// EnsureUsers seeds placeholder rows for every fid, never touching rows that
// already exist so real profile data is not regressed to empty
func (r *queries) EnsureUsers(ctx context.Context, fids []int64) error {
	if len(fids) == 0 {
		return nil
	}
	const sql = `
insert into users (fid)
select unnest($1::bigint[])
on conflict (fid) do nothing
`
	if _, err := r.q.Exec(ctx, sql, fids); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "ensure users")
	}
	return nil
}

// Linked returns the user rows joined through links in the given direction
func (r *queries) Linked(ctx context.Context, fid int64, d domain.FollowDirection) ([]domain.User, error) {
	const following = `
select u.` + userColumns + `
from users u
join links l on l.target = u.fid
where l.fid = $1
`
	const followedBy = `
select u.` + userColumns + `
from users u
join links l on l.fid = u.fid
where l.target = $1
`
	sql := following
	if d == domain.FollowedBy {
		sql = followedBy
	}
	rows, err := r.q.Query(ctx, sql, fid)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "linked users")
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Fid, &u.Username, &u.DisplayName, &u.Bio, &u.URL, &u.ProfilePic); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan linked user")
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "linked users")
	}
	return out, nil
}

// InsertFollow records one follow edge; an existing edge is left as is
func (r *queries) InsertFollow(ctx context.Context, fid, target, ts int64) error {
	const sql = `
insert into links (fid, target, timestamp)
values ($1, $2, to_timestamp($3))
on conflict (fid, target) do nothing
`
	if _, err := r.q.Exec(ctx, sql, fid, target, ts); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "insert follow")
	}
	return nil
}

// DeleteFollow removes one follow edge if present
func (r *queries) DeleteFollow(ctx context.Context, fid, target int64) error {
	const sql = `
delete from links
where fid = $1 and target = $2
`
	if _, err := r.q.Exec(ctx, sql, fid, target); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "delete follow")
	}
	return nil
}
