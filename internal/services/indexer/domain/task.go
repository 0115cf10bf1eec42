// Package domain defines the index task vocabulary shared by producers
// (handlers, subscriber) and the scheduling worker
package domain

import (
	signdom "hubgate/internal/services/signers/domain"
)

// TaskKind discriminates index task variants
type TaskKind uint8

const (
	// KindIndexFid refreshes the profile row for a fid
	KindIndexFid TaskKind = iota + 1
	// KindIndexLinks refreshes both follow directions for a fid
	KindIndexLinks
	// KindIndexFidCasts is reserved; the worker treats it as a no-op
	KindIndexFidCasts
	// KindIndexCast is reserved; the worker treats it as a no-op
	KindIndexCast
	// KindUpdateSigner upserts a signer row unconditionally
	KindUpdateSigner
)

// String returns the kind name for logs
func (k TaskKind) String() string {
	switch k {
	case KindIndexFid:
		return "index_fid"
	case KindIndexLinks:
		return "index_links"
	case KindIndexFidCasts:
		return "index_fid_casts"
	case KindIndexCast:
		return "index_cast"
	case KindUpdateSigner:
		return "update_signer"
	default:
		return "unknown"
	}
}

// Task is one unit of index work. Construct via the helpers below
type Task struct {
	Kind  TaskKind
	Fid   uint64
	Force bool

	// CastHash is set for KindIndexCast only
	CastHash []byte

	// Signer is set for KindUpdateSigner only
	Signer signdom.Signer
}

// Key is the debounce identity of a task. Force is deliberately excluded:
// it gates the debounce check, it does not name a different task. Signer
// payloads are excluded too since signer tasks are never debounced.
type Key struct {
	Kind TaskKind
	Fid  uint64
	Cast string
}

// Key returns the comparable debounce key for t
func (t Task) Key() Key {
	return Key{Kind: t.Kind, Fid: t.Fid, Cast: string(t.CastHash)}
}

// IndexFid builds a profile refresh task; force bypasses the debounce gap
func IndexFid(fid uint64, force bool) Task {
	return Task{Kind: KindIndexFid, Fid: fid, Force: force}
}

// IndexLinks builds a follow graph refresh task
func IndexLinks(fid uint64) Task {
	return Task{Kind: KindIndexLinks, Fid: fid}
}

// IndexFidCasts builds a reserved cast backfill task
func IndexFidCasts(fid uint64, force bool) Task {
	return Task{Kind: KindIndexFidCasts, Fid: fid, Force: force}
}

// IndexCast builds a reserved single cast task
func IndexCast(fid uint64, hash []byte) Task {
	return Task{Kind: KindIndexCast, Fid: fid, CastHash: hash}
}

// UpdateSigner builds an unconditional signer upsert task
func UpdateSigner(s signdom.Signer) Task {
	return Task{Kind: KindUpdateSigner, Fid: uint64(s.Fid), Signer: s}
}
