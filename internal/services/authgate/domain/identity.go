// Package domain defines the authenticated request identity and the context
// plumbing handlers use to read it
package domain

import (
	"context"

	"hubgate/internal/hub"
	signdom "hubgate/internal/services/signers/domain"
)

// Identity is what the auth gate attaches to a request: the caller's cached
// profile and the signer key the request was signed with
type Identity struct {
	Profile hub.Profile
	Signer  signdom.Signer
}

type ctxKey struct{}

// WithIdentity returns ctx annotated with the authenticated identity
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom returns the identity on ctx, if the auth gate ran
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
