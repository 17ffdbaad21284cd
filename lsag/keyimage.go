package lsag

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/internal/lsaghash"
)

// DeriveKeyImage computes I = x * H1(encode_point(P) || tag), the linkable
// key image for a private key x with public key P = x*G. Two signatures
// produced by the same private key under the same tag always carry the same
// key image, regardless of which ring or message they sign.
func DeriveKeyImage(priv *secp256k1.PrivateKey, tag []byte) (*secp256k1.PublicKey, error) {
	if priv == nil || priv.Key.IsZero() {
		return nil, newError(ErrBadInput, "lsag: private key must be non-zero")
	}
	pub := priv.PubKey()
	h := lsaghash.HashToCurvePoint(pub, tag)
	return lsaghash.ScalarMult(&priv.Key, h), nil
}
