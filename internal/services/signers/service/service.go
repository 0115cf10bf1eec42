// Package service contains signer workflows
package service

import (
	"context"

	"hubgate/internal/hub/pb"
	"hubgate/internal/modkit/repokit"
	"hubgate/internal/platform/logger"
	"hubgate/internal/services/signers/domain"
	"hubgate/internal/services/signers/repo"
)

// SignerSource is the slice of the hub adapter this service needs
type SignerSource interface {
	GetOnChainSignersByFid(ctx context.Context, fid uint64) ([]*pb.OnChainEvent, error)
}

// Service defines the signer service contract
type Service interface {
	domain.ReaderPort
	domain.WriterPort
	domain.SyncPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	hub    SignerSource
}

// New creates a new signer service
func New(db repokit.TxRunner, hub SignerSource) *Svc {
	if db == nil {
		panic("signers.Service requires a non nil TxRunner")
	}
	b := repo.NewPG()
	return &Svc{Repo: b.Bind(db), binder: b, db: db, hub: hub}
}

// GetSigner returns the signer for pk or a not found error
func (s *Svc) GetSigner(ctx context.Context, pk []byte) (domain.Signer, error) {
	return s.Repo.Get(ctx, pk)
}

// InsertSigner upserts a signer inside one transaction, seeding an empty user
// row first so the foreign key on signers.fid always holds
func (s *Svc) InsertSigner(ctx context.Context, in domain.Signer) (domain.Signer, error) {
	var out domain.Signer
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.EnsureUser(ctx, in.Fid); err != nil {
			return err
		}
		var err error
		out, err = r.Upsert(ctx, in)
		return err
	})
	if err != nil {
		return domain.Signer{}, err
	}
	return out, nil
}

// SyncFid fetches fid's on-chain signer events from the hub and stores each
// one. Used by the one-shot sync command and safe to repeat.
func (s *Svc) SyncFid(ctx context.Context, fid uint64) (int, error) {
	events, err := s.hub.GetOnChainSignersByFid(ctx, fid)
	if err != nil {
		return 0, err
	}
	log := logger.Named("signers")
	n := 0
	for _, ev := range events {
		signer, ok := domain.FromOnChainEvent(ev)
		if !ok {
			continue
		}
		if _, err := s.InsertSigner(ctx, signer); err != nil {
			return n, err
		}
		log.Debug().Int64("fid", signer.Fid).Bool("active", signer.Active).Msg("stored signer")
		n++
	}
	return n, nil
}
