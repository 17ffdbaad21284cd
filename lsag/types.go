// Package lsag implements a linkable spontaneous anonymous group ring
// signature over secp256k1: a signer proves membership in a ring of public
// keys without revealing which key is theirs, while a per-signer key image
// lets two signatures from the same key be linked without deanonymizing
// either.
package lsag

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// Ring is an ordered list of public keys. Order is part of a ring's
// identity: the same keys in a different order verify against a different
// signature.
type Ring []*secp256k1.PublicKey

// Lsag is a complete ring signature: the closing challenge, one response per
// ring member, and the key image that links every signature produced by the
// same private key under the same tag.
type Lsag struct {
	Ring      Ring
	KeyImage  *secp256k1.PublicKey
	Challenge *secp256k1.ModNScalar // c0
	Responses []*secp256k1.ModNScalar
	Message   []byte
	Tag       []byte // optional linkability domain tag, may be nil
}

// SigningDetails bundles the prover's secret material: their private key and
// their index within the ring it signs against.
type SigningDetails struct {
	PrivateKey  *secp256k1.PrivateKey
	SignerIndex int
}
