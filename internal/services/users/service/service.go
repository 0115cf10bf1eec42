// Package service implements the read-through profile cache over the hub and
// the local store
package service

import (
	"context"

	"hubgate/internal/hub"
	"hubgate/internal/hub/pb"
	"hubgate/internal/modkit/repokit"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/platform/logger"
	"hubgate/internal/services/users/domain"
	"hubgate/internal/services/users/repo"
)

// Config controls read behavior
type Config struct {
	// StrictReads fails reads on storage errors instead of falling through to
	// the hub. Default is the availability bias: a broken cache reads as a
	// cache miss.
	StrictReads bool
}

// Service defines the users service contract
type Service interface {
	domain.ReaderPort
	domain.IndexerPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	hub    domain.ProfileSource
	cfg    Config
}

// New creates a new users service
func New(db repokit.TxRunner, hubClient domain.ProfileSource, cfg Config) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if hubClient == nil {
		panic("users.Service requires a non nil hub client")
	}
	b := repo.NewPG()
	return &Svc{Repo: b.Bind(db), binder: b, db: db, hub: hubClient, cfg: cfg}
}

// GetUserProfile serves fid's profile from the local store, falling through to
// the hub on miss. A storage error also counts as a miss unless StrictReads.
func (s *Svc) GetUserProfile(ctx context.Context, fid uint64, force bool) (hub.Profile, error) {
	if force {
		return s.FetchAndStoreProfile(ctx, fid)
	}
	u, err := s.Repo.Get(ctx, int64(fid))
	if err == nil {
		return u.Profile(), nil
	}
	if s.cfg.StrictReads && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return hub.Profile{}, err
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		logger.C(ctx).Warn().Err(err).Uint64("fid", fid).Msg("profile read failed, treating as miss")
	}
	return s.FetchAndStoreProfile(ctx, fid)
}

// FetchAndStoreProfile pulls fid's profile from the hub and upserts it,
// returning the stored row
func (s *Svc) FetchAndStoreProfile(ctx context.Context, fid uint64) (hub.Profile, error) {
	p, err := s.hub.GetUserProfile(ctx, fid)
	if err != nil {
		return hub.Profile{}, err
	}
	stored, err := s.Repo.Upsert(ctx, domain.UserFromProfile(p))
	if err != nil {
		return hub.Profile{}, err
	}
	return stored.Profile(), nil
}

// GetProfileLinks serves one side of fid's follow graph from the local store,
// falling through to the hub on miss or storage error (unless StrictReads)
func (s *Svc) GetProfileLinks(
	ctx context.Context, fid uint64, force bool, d domain.FollowDirection,
) ([]hub.Profile, error) {
	if force {
		return s.FetchAndStoreLinks(ctx, fid, d)
	}
	rows, err := s.Repo.Linked(ctx, int64(fid), d)
	if err == nil {
		return profiles(rows), nil
	}
	if s.cfg.StrictReads {
		return nil, err
	}
	logger.C(ctx).Warn().Err(err).Uint64("fid", fid).Str("direction", d.String()).
		Msg("link read failed, treating as miss")
	return s.FetchAndStoreLinks(ctx, fid, d)
}

// FetchAndStoreLinks refreshes one follow direction for fid from the hub.
// The hub fetch happens before any DB session is held; all writes for the
// batch land in a single transaction so no link row ever dangles.
func (s *Svc) FetchAndStoreLinks(
	ctx context.Context, fid uint64, d domain.FollowDirection,
) ([]hub.Profile, error) {
	raw, err := s.fetchLinks(ctx, fid, d)
	if err != nil {
		return nil, err
	}
	actions := hub.DecodeFollowActions(raw)

	// both endpoints of every added edge need a user row for the FK
	seen := map[int64]struct{}{}
	var toEnsure []int64
	for _, a := range actions.Adds {
		for _, f := range [2]int64{int64(a.SourceFid), int64(a.TargetFid)} {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				toEnsure = append(toEnsure, f)
			}
		}
	}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.EnsureUsers(ctx, toEnsure); err != nil {
			return err
		}
		for _, a := range actions.Adds {
			if err := r.InsertFollow(ctx, int64(a.SourceFid), int64(a.TargetFid), a.Timestamp); err != nil {
				return err
			}
		}
		for _, a := range actions.Removes {
			if err := r.DeleteFollow(ctx, int64(a.SourceFid), int64(a.TargetFid)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.Linked(ctx, int64(fid), d)
	if err != nil {
		return nil, err
	}
	return profiles(rows), nil
}

func (s *Svc) fetchLinks(ctx context.Context, fid uint64, d domain.FollowDirection) ([]*pb.Message, error) {
	if d == domain.FollowedBy {
		return s.hub.GetLinksByTarget(ctx, fid, hub.FollowLinkType)
	}
	return s.hub.GetLinksByFid(ctx, fid, hub.FollowLinkType)
}

func profiles(rows []domain.User) []hub.Profile {
	out := make([]hub.Profile, 0, len(rows))
	for _, u := range rows {
		out = append(out, u.Profile())
	}
	return out
}
