// Package repo provides postgres access for notifications
package repo

import (
	"context"

	"hubgate/internal/modkit/repokit"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/services/notifications/domain"
)

// Repo defines the repository contract for notifications
type Repo interface {
	Insert(ctx context.Context, n domain.Notification) error
	ListByFid(ctx context.Context, fid int64, limit int) ([]domain.Notification, error)
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

// Insert stores one notification
func (r *queries) Insert(ctx context.Context, n domain.Notification) error {
	const sql = `
insert into notifications (id, fid, kind, payload)
values ($1, $2, $3, $4)
`
	if _, err := r.q.Exec(ctx, sql, n.ID, n.Fid, n.Kind, n.Payload); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "insert notification")
	}
	return nil
}

// ListByFid returns the newest notifications for fid
func (r *queries) ListByFid(ctx context.Context, fid int64, limit int) ([]domain.Notification, error) {
	const sql = `
select id, fid, kind, payload, created_at
from notifications
where fid = $1
order by created_at desc
limit $2
`
	rows, err := r.q.Query(ctx, sql, fid, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list notifications")
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Fid, &n.Kind, &n.Payload, &n.CreatedAt); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan notification")
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list notifications")
	}
	return out, nil
}
