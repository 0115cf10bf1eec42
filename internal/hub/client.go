// Package hub is the adapter for the upstream Farcaster hub. It exposes the
// handful of RPCs the gateway consumes as typed methods over a single
// multiplexed gRPC connection. Calls report upstream errors verbatim and never
// retry internally; the connection is safe for concurrent use without an
// external lock.
package hub

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"hubgate/internal/hub/pb"
	perr "hubgate/internal/platform/errors"
)

// FollowLinkType is the only link type the gateway materializes
const FollowLinkType = "follow"

// Config configures the hub connection
type Config struct {
	// URL is the hub gRPC endpoint (SERVER_URL)
	URL string
}

// Client wraps the hub gRPC service
type Client struct {
	conn *grpc.ClientConn
	hub  pb.HubServiceClient
}

// Dial opens the hub connection. The returned client shares one multiplexed
// conn across goroutines.
func Dial(cfg Config) (*Client, error) {
	conn, err := grpc.NewClient(cfg.URL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec{})),
	)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub dial %s", cfg.URL)
	}
	return &Client{conn: conn, hub: pb.NewHubServiceClient(conn)}, nil
}

// NewClient wraps an existing stub, mainly for tests
func NewClient(stub pb.HubServiceClient) *Client { return &Client{hub: stub} }

// Close tears down the connection
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// GetUserProfile fetches all USER_DATA messages for fid and folds them into a
// Profile. A fid with no user data yields an empty profile, not an error.
func (c *Client) GetUserProfile(ctx context.Context, fid uint64) (Profile, error) {
	resp, err := c.hub.GetUserDataByFid(ctx, &pb.FidRequest{Fid: fid})
	if err != nil {
		return Profile{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub user data for fid %d", fid)
	}
	return foldProfile(fid, resp.Messages), nil
}

// GetLinksByFid returns link messages authored by fid
func (c *Client) GetLinksByFid(ctx context.Context, fid uint64, linkType string) ([]*pb.Message, error) {
	resp, err := c.hub.GetLinksByFid(ctx, &pb.LinksByFidRequest{Fid: fid, LinkType: &linkType})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub links by fid %d", fid)
	}
	return resp.Messages, nil
}

// GetLinksByTarget returns link messages pointing at fid
func (c *Client) GetLinksByTarget(ctx context.Context, fid uint64, linkType string) ([]*pb.Message, error) {
	resp, err := c.hub.GetLinksByTarget(ctx, &pb.LinksByTargetRequest{TargetFid: fid, LinkType: &linkType})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub links by target %d", fid)
	}
	return resp.Messages, nil
}

// GetOnChainSignersByFid returns the on-chain signer events for fid
func (c *Client) GetOnChainSignersByFid(ctx context.Context, fid uint64) ([]*pb.OnChainEvent, error) {
	resp, err := c.hub.GetOnChainSignersByFid(ctx, &pb.FidRequest{Fid: fid})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub signers for fid %d", fid)
	}
	return resp.Events, nil
}

// SubmitMessage relays a signed client message to the hub
func (c *Client) SubmitMessage(ctx context.Context, msg *pb.Message) (*pb.Message, error) {
	out, err := c.hub.SubmitMessage(ctx, msg)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "hub rejected message")
	}
	return out, nil
}

// Subscribe opens the hub event stream with default parameters
func (c *Client) Subscribe(ctx context.Context) (pb.HubService_SubscribeClient, error) {
	stream, err := c.hub.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "hub subscribe")
	}
	return stream, nil
}
