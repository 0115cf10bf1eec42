package hub

import (
	"crypto/ed25519"

	"github.com/zeebo/blake3"

	perr "hubgate/internal/platform/errors"
)

// Hub domain sizes. Hashes are blake3 truncated to 20 bytes; keys and
// signatures are ed25519.
const (
	HashLength      = 20
	PublicKeyLength = ed25519.PublicKeySize
	SignatureLength = ed25519.SignatureSize
)

// RequestHash computes the canonical signed message for an authenticated
// request: blake3-160 over pubKey || timestamp ASCII bytes || extra data.
// pubKey is raw bytes, not hex; extra may be nil.
func RequestHash(pubKey []byte, timestamp string, extra []byte) [HashLength]byte {
	h := blake3.New()
	_, _ = h.Write(pubKey)
	_, _ = h.Write([]byte(timestamp))
	_, _ = h.Write(extra)

	var out [HashLength]byte
	_, _ = h.Digest().Read(out[:])
	return out
}

// VerifySignature reports whether sig is a valid ed25519 signature over
// digest under pubKey. Malformed inputs are an error, a clean mismatch is
// (false, nil).
func VerifySignature(pubKey, digest, sig []byte) (bool, error) {
	if len(pubKey) != PublicKeyLength {
		return false, perr.InvalidArgf("public key must be %d bytes, got %d", PublicKeyLength, len(pubKey))
	}
	if len(sig) != SignatureLength {
		return false, perr.InvalidArgf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), digest, sig), nil
}
