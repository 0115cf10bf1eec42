package domain

import (
	"context"

	"hubgate/internal/hub"
	"hubgate/internal/hub/pb"
)

// ReaderPort is the read-through surface handlers consume
type ReaderPort interface {
	// GetUserProfile returns the profile for fid, materializing from the hub
	// on miss. force skips the local store entirely.
	GetUserProfile(ctx context.Context, fid uint64, force bool) (hub.Profile, error)

	// GetProfileLinks returns the profiles on one side of fid's follow graph,
	// materializing from the hub on miss
	GetProfileLinks(ctx context.Context, fid uint64, force bool, d FollowDirection) ([]hub.Profile, error)
}

// IndexerPort is the refresh surface the index worker consumes
type IndexerPort interface {
	FetchAndStoreProfile(ctx context.Context, fid uint64) (hub.Profile, error)
	FetchAndStoreLinks(ctx context.Context, fid uint64, d FollowDirection) ([]hub.Profile, error)
}

// ProfileSource is the slice of the hub adapter this service needs
type ProfileSource interface {
	GetUserProfile(ctx context.Context, fid uint64) (hub.Profile, error)
	GetLinksByFid(ctx context.Context, fid uint64, linkType string) ([]*pb.Message, error)
	GetLinksByTarget(ctx context.Context, fid uint64, linkType string) ([]*pb.Message, error)
}
