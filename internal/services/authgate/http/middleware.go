// Package http adapts the auth gate to the middleware seam
package http

import (
	"context"
	"net/http"
	"strconv"

	perr "hubgate/internal/platform/errors"
	"hubgate/internal/platform/logger"
	pnet "hubgate/internal/platform/net"
	"hubgate/internal/services/authgate/domain"
	"hubgate/internal/services/authgate/service"
)

// Port implements the middleware AuthPort over the gate service. Every
// failure collapses into one opaque bad-request error so clients cannot
// probe which precondition failed; the precise cause is logged server-side.
type Port struct {
	Gate *service.Gate
}

// NewPort wraps a gate
func NewPort(g *service.Gate) *Port {
	if g == nil {
		panic("authgate http.Port requires a gate")
	}
	return &Port{Gate: g}
}

// Authenticate validates the signed request headers and annotates the
// context with the caller's identity
func (p *Port) Authenticate(r *http.Request) (context.Context, error) {
	creds := service.Credentials{
		KeyHex:    r.Header.Get(service.HeaderKeyHex),
		Signature: r.Header.Get(service.HeaderSignature),
		Timestamp: r.Header.Get(service.HeaderTimestamp),
		ExtraHex:  r.Header.Get(service.HeaderExtraData),
	}
	id, err := p.Gate.Authenticate(r.Context(), creds)
	if err != nil {
		logger.C(r.Context()).Debug().Err(err).
			Str("path", r.URL.Path).
			Msg("request authentication failed")
		// every failure collapses to the same opaque 400
		return nil, perr.Validationf("authentication failed")
	}
	ctx := domain.WithIdentity(r.Context(), id)
	ctx = pnet.WithUser(ctx, strconv.FormatInt(id.Signer.Fid, 10))
	return ctx, nil
}
