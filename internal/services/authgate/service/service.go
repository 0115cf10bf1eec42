// Package service implements request authentication against hub signer keys
package service

import (
	"context"
	"encoding/hex"
	"strconv"
	"time"

	"hubgate/internal/hub"
	perr "hubgate/internal/platform/errors"
	"hubgate/internal/services/authgate/domain"
	signdom "hubgate/internal/services/signers/domain"
	usersdom "hubgate/internal/services/users/domain"
)

// Header names carried on every authenticated request
const (
	HeaderKeyHex    = "key_hex"
	HeaderSignature = "sig"
	HeaderTimestamp = "timestamp"
	HeaderExtraData = "extra_sig_data_hex"
)

// Config tunes the gate
type Config struct {
	// MaxSkew rejects requests whose timestamp is further than this from
	// server time. Zero disables the freshness check.
	MaxSkew time.Duration
}

// Credentials are the raw header values before any decoding
type Credentials struct {
	KeyHex    string
	Signature string
	Timestamp string
	ExtraHex  string
}

// Gate verifies request signatures and resolves the caller's identity
type Gate struct {
	signers signdom.ReaderPort
	users   usersdom.ReaderPort
	cfg     Config

	// now is a seam for tests
	now func() time.Time
}

// New constructs a Gate
func New(signers signdom.ReaderPort, users usersdom.ReaderPort, cfg Config) *Gate {
	if signers == nil || users == nil {
		panic("authgate.Gate requires signers and users ports")
	}
	return &Gate{signers: signers, users: users, cfg: cfg, now: time.Now}
}

// Authenticate runs the full validation pipeline and returns the caller's
// identity. Errors carry precise codes for logging; the HTTP layer collapses
// them all into one opaque client response.
func (g *Gate) Authenticate(ctx context.Context, c Credentials) (domain.Identity, error) {
	pk, err := hex.DecodeString(c.KeyHex)
	if err != nil || len(pk) != hub.PublicKeyLength {
		return domain.Identity{}, perr.InvalidArgf("bad public key header")
	}
	sig, err := hex.DecodeString(c.Signature)
	if err != nil || len(sig) != hub.SignatureLength {
		return domain.Identity{}, perr.InvalidArgf("bad signature header")
	}
	if c.Timestamp == "" {
		return domain.Identity{}, perr.InvalidArgf("missing timestamp header")
	}
	ts, err := strconv.ParseInt(c.Timestamp, 10, 64)
	if err != nil {
		return domain.Identity{}, perr.InvalidArgf("bad timestamp header")
	}
	var extra []byte
	if c.ExtraHex != "" {
		if extra, err = hex.DecodeString(c.ExtraHex); err != nil {
			return domain.Identity{}, perr.InvalidArgf("bad extra data header")
		}
	}

	if g.cfg.MaxSkew > 0 {
		skew := g.now().Unix() - ts
		if skew < 0 {
			skew = -skew
		}
		if skew > int64(g.cfg.MaxSkew/time.Second) {
			return domain.Identity{}, perr.InvalidArgf("stale timestamp")
		}
	}

	signer, err := g.signers.GetSigner(ctx, pk)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, perr.Wrap(err, perr.ErrorCodeUnknown, "signer lookup")
	}
	if !signer.Active {
		return domain.Identity{}, perr.Unauthorizedf("signer revoked")
	}

	// the signed message binds the raw key bytes, the timestamp header
	// verbatim, and any extra data
	digest := hub.RequestHash(pk, c.Timestamp, extra)
	ok, err := hub.VerifySignature(pk, digest[:], sig)
	if err != nil {
		return domain.Identity{}, perr.Wrap(err, perr.ErrorCodeUnknown, "signature verify")
	}
	if !ok {
		return domain.Identity{}, perr.Unauthorizedf("signature mismatch")
	}

	profile, err := g.users.GetUserProfile(ctx, uint64(signer.Fid), false)
	if err != nil {
		return domain.Identity{}, perr.Wrap(err, perr.ErrorCodeUnknown, "profile fetch")
	}
	return domain.Identity{Profile: profile, Signer: signer}, nil
}
