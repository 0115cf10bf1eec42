// Package domain holds signer types and ports
package domain

import "hubgate/internal/hub/pb"

// Signer is one ed25519 key authorized to act for a fid. Active=false marks a
// revoked key. The key is the primary identity; a key never moves between fids
// in practice.
type Signer struct {
	Pk     []byte `json:"pk"`
	Fid    int64  `json:"fid"`
	Active bool   `json:"active"`
}

// FromOnChainEvent extracts a Signer from an on-chain event, if the event is a
// signer event with a body. Active follows the event type: ADD activates,
// anything else revokes.
func FromOnChainEvent(ev *pb.OnChainEvent) (Signer, bool) {
	if ev.GetType() != pb.OnChainEventType_EVENT_TYPE_SIGNER || ev.SignerEventBody == nil {
		return Signer{}, false
	}
	return Signer{
		Pk:     ev.SignerEventBody.Key,
		Fid:    int64(ev.Fid),
		Active: ev.SignerEventBody.EventType == pb.SignerEventType_SIGNER_EVENT_TYPE_ADD,
	}, true
}
