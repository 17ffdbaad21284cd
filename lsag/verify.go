package lsag

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/internal/lsaghash"
)

// Verify checks an Lsag for validity: well-formedness of the ring and
// response lists, a non-identity key image, and that walking the ring's
// Fiat-Shamir challenge chain starting from c0 closes back on itself.
//
// Verify never returns an error; any structural problem with sig simply
// yields false, matching the "panic if ring length != response length"
// behavior of the reference implementation translated into a boolean
// result instead of a panic.
func Verify(sig Lsag) bool {
	n := len(sig.Ring)
	if n < 2 {
		return false
	}
	if len(sig.Responses) != n {
		return false
	}
	if sig.KeyImage == nil || sig.Challenge == nil {
		return false
	}
	if isIdentity(sig.KeyImage) {
		return false
	}
	for _, member := range sig.Ring {
		if member == nil {
			return false
		}
	}
	for _, r := range sig.Responses {
		if r == nil {
			return false
		}
	}

	hashes := make([]*secp256k1.PublicKey, n)
	for i, member := range sig.Ring {
		hashes[i] = lsaghash.HashToCurvePoint(member, sig.Tag)
	}

	walk, err := lsaghash.NewRingWalk(sig.Ring, sig.Message)
	if err != nil {
		return false
	}

	c := sig.Challenge
	for i := 0; i < n; i++ {
		next, err := walk.Next(sig.Ring[i], hashes[i], sig.KeyImage, sig.Responses[i], c)
		if err != nil {
			return false
		}
		c = next
	}

	return c.Equals(sig.Challenge)
}

// isIdentity reports whether p is the point at infinity. NewPublicKey never
// produces one for an honestly-derived key image, but a maliciously crafted
// signature could still encode it, so verification must reject it
// explicitly rather than let it slip through the ring walk.
func isIdentity(p *secp256k1.PublicKey) bool {
	var jp secp256k1.JacobianPoint
	p.AsJacobian(&jp)
	return (jp.X.IsZero() && jp.Y.IsZero()) || jp.Z.IsZero()
}
