package lsag

import (
	"crypto/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/internal/lsaghash"
)

// maxScalarDrawAttempts bounds the retry loop used when drawing a uniformly
// random scalar: a rejected draw only happens when the raw 32 bytes land at
// or above the group order, which has negligible probability per draw.
const maxScalarDrawAttempts = 16

// Signer produces LSAG ring signatures for a fixed ring and signing key.
type Signer struct {
	ring    Ring
	details SigningDetails
	tag     []byte
}

// NewSigner validates a ring and signing position and returns a Signer ready
// to produce signatures against that ring. tag may be nil; it scopes key
// image linkability to a particular context (e.g. an epoch or application
// domain) and must match between signer and verifier.
func NewSigner(ring Ring, details SigningDetails, tag []byte) (*Signer, error) {
	if len(ring) < 2 {
		return nil, newError(ErrBadInput, "lsag: ring must contain at least two members")
	}
	if err := checkDistinctRing(ring); err != nil {
		return nil, err
	}
	if details.PrivateKey == nil || details.PrivateKey.Key.IsZero() {
		return nil, newError(ErrBadInput, "lsag: private key must be non-zero")
	}
	if details.SignerIndex < 0 || details.SignerIndex >= len(ring) {
		return nil, newError(ErrInvalidSigner, "lsag: signer index out of range")
	}

	pub := details.PrivateKey.PubKey()
	claimed := ring[details.SignerIndex]
	if !pub.IsEqual(claimed) {
		return nil, newError(ErrInvalidSigner, "lsag: ring does not contain signer's public key at signer index")
	}

	return &Signer{ring: ring, details: details, tag: tag}, nil
}

// Sign produces an Lsag over message. Each call draws fresh randomness, so
// repeated calls over the same message and ring produce unlinkable-looking
// signatures that nonetheless share the same key image.
func (s *Signer) Sign(message []byte) (Lsag, error) {
	n := len(s.ring)
	pi := s.details.SignerIndex
	x := &s.details.PrivateKey.Key

	keyImage, err := DeriveKeyImage(s.details.PrivateKey, s.tag)
	if err != nil {
		return Lsag{}, err
	}

	hashes := make([]*secp256k1.PublicKey, n)
	for i, member := range s.ring {
		hashes[i] = lsaghash.HashToCurvePoint(member, s.tag)
	}

	walk, err := lsaghash.NewRingWalk(s.ring, message)
	if err != nil {
		return Lsag{}, newError(ErrBadInput, "lsag: failed to build ring walk: "+err.Error())
	}

	alpha, err := randomNonzeroScalar()
	if err != nil {
		return Lsag{}, err
	}

	responses := make([]*secp256k1.ModNScalar, n)
	for i := range responses {
		if i == pi {
			continue
		}
		r, err := randomScalar()
		if err != nil {
			return Lsag{}, err
		}
		responses[i] = r
	}

	chal := make([]*secp256k1.ModNScalar, n)
	var zero secp256k1.ModNScalar

	// Seed the challenge that follows the signer's own position: this is
	// the general ring step with c == 0, r == alpha, which collapses to
	// L = alpha*G and R = alpha*H_pi.
	next, err := walk.Next(s.ring[pi], hashes[pi], keyImage, alpha, &zero)
	if err != nil {
		return Lsag{}, newError(ErrBadInput, "lsag: ring walk failure: "+err.Error())
	}
	chal[(pi+1)%n] = next

	for step := 1; step < n; step++ {
		j := (pi + step) % n
		next, err := walk.Next(s.ring[j], hashes[j], keyImage, responses[j], chal[j])
		if err != nil {
			return Lsag{}, newError(ErrBadInput, "lsag: ring walk failure: "+err.Error())
		}
		chal[(j+1)%n] = next
	}

	// responses[pi] = alpha - c_pi * x (mod n)
	cPi := chal[pi]
	rPi := new(secp256k1.ModNScalar).Set(cPi)
	rPi.Mul(x)
	rPi.Negate()
	rPi.Add(alpha)
	responses[pi] = rPi

	return Lsag{
		Ring:      append(Ring(nil), s.ring...),
		KeyImage:  keyImage,
		Challenge: chal[0],
		Responses: responses,
		Message:   append([]byte(nil), message...),
		Tag:       append([]byte(nil), s.tag...),
	}, nil
}

// randomScalar draws a uniformly random canonical scalar from crypto/rand.
func randomScalar() (*secp256k1.ModNScalar, error) {
	var buf [32]byte
	for attempt := 0; attempt < maxScalarDrawAttempts; attempt++ {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, newError(ErrRngFailure, "lsag: failed to read randomness: "+err.Error())
		}
		var s secp256k1.ModNScalar
		if overflow := s.SetByteSlice(buf[:]); !overflow {
			return &s, nil
		}
	}
	return nil, newError(ErrRngFailure, "lsag: exhausted randomness draw attempts")
}

// randomNonzeroScalar draws a uniformly random canonical, non-zero scalar.
// The signer's nonce alpha must be drawn from Scalar*, unlike decoy
// responses which may legitimately be zero.
func randomNonzeroScalar() (*secp256k1.ModNScalar, error) {
	for attempt := 0; attempt < maxScalarDrawAttempts; attempt++ {
		s, err := randomScalar()
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
	return nil, newError(ErrRngFailure, "lsag: exhausted randomness draw attempts")
}

// checkDistinctRing rejects a ring containing the same public key more than
// once; a duplicate would let a single key occupy two ring slots and is a
// BadInput per the signer's precondition checks.
func checkDistinctRing(ring Ring) error {
	for i := 0; i < len(ring); i++ {
		for j := i + 1; j < len(ring); j++ {
			if ring[i].IsEqual(ring[j]) {
				return newError(ErrBadInput, "lsag: ring contains duplicate public keys")
			}
		}
	}
	return nil
}
