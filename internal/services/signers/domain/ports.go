package domain

import "context"

// ReaderPort looks up signers by key
type ReaderPort interface {
	// GetSigner returns the signer for pk, or a not found error
	GetSigner(ctx context.Context, pk []byte) (Signer, error)
}

// WriterPort persists signer state
type WriterPort interface {
	// InsertSigner upserts a signer row, creating the owning user row first if
	// it does not exist yet
	InsertSigner(ctx context.Context, s Signer) (Signer, error)
}

// SyncPort materializes a fid's on-chain signer set from the hub
type SyncPort interface {
	// SyncFid fetches and stores all signer events for fid, returning how many
	// signer rows were written
	SyncFid(ctx context.Context, fid uint64) (int, error)
}
