// Package service forwards signed client messages to the hub
package service

import (
	"bytes"
	"context"

	"hubgate/internal/hub/pb"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/platform/logger"
	signdom "hubgate/internal/services/signers/domain"
)

// HubSink is the slice of the hub adapter the relay needs
type HubSink interface {
	SubmitMessage(ctx context.Context, msg *pb.Message) (*pb.Message, error)
}

// Service is the relay contract
type Service interface {
	// Relay submits one message on behalf of signer
	Relay(ctx context.Context, signer signdom.Signer, msg *pb.Message) error
	// RelayBatch submits messages in order, stopping at the first failure
	RelayBatch(ctx context.Context, signer signdom.Signer, msgs []*pb.Message) error
}

// Svc implements Service
type Svc struct {
	hub HubSink
}

// New constructs the relay service
func New(hub HubSink) *Svc {
	if hub == nil {
		panic("relay.Service requires a hub sink")
	}
	return &Svc{hub: hub}
}

// Relay validates that msg was produced by the authenticated signer and
// forwards it. The hub re-verifies everything; the local check only stops
// clients from relaying someone else's messages through their session.
func (s *Svc) Relay(ctx context.Context, signer signdom.Signer, msg *pb.Message) error {
	if msg == nil || msg.GetData() == nil {
		return perr.Validationf("empty message")
	}
	if !signer.Active {
		return perr.Validationf("signer not active")
	}
	if !bytes.Equal(msg.GetSigner(), signer.Pk) {
		return perr.Validationf("message signer mismatch")
	}
	if _, err := s.hub.SubmitMessage(ctx, msg); err != nil {
		return err
	}
	logger.C(ctx).Debug().
		Int64("fid", signer.Fid).
		Uint32("type", uint32(msg.GetData().GetType())).
		Msg("message relayed")
	return nil
}

// RelayBatch submits each message through Relay
func (s *Svc) RelayBatch(ctx context.Context, signer signdom.Signer, msgs []*pb.Message) error {
	if len(msgs) == 0 {
		return perr.Validationf("no messages")
	}
	for _, m := range msgs {
		if err := s.Relay(ctx, signer, m); err != nil {
			return err
		}
	}
	return nil
}
