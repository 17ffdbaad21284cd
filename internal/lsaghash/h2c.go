package lsaghash

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// maxH2CAttempts bounds the try-and-increment loop. In practice a candidate
// x-coordinate lands on the curve roughly half the time, so this is reached
// only if the underlying field library starts rejecting valid x-coordinates,
// which would indicate a bug elsewhere.
const maxH2CAttempts = 1 << 16

// evenYPrefix is the compressed SEC1 prefix byte for a point whose y
// coordinate is even. Using a fixed prefix for every attempt is the "fixed
// tie-break for the y sign" the hash-to-curve contract requires.
const evenYPrefix = 0x02

// HashToCurve deterministically maps data to a non-identity point on
// secp256k1 via try-and-increment: repeatedly reinterpret a Keccak-256
// digest of (data, counter) as a candidate x-coordinate, and accept the
// first one that decompresses to a point on the curve. Signer, verifier, and
// key-image derivation must call this identically, since it participates in
// the challenge chain.
func HashToCurve(data []byte) *secp256k1.PublicKey {
	var counter [4]byte
	candidate := make([]byte, 0, len(data)+len(counter))
	compressed := make([]byte, 33)
	compressed[0] = evenYPrefix

	for i := uint32(0); i < maxH2CAttempts; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		candidate = append(candidate[:0], data...)
		candidate = append(candidate, counter[:]...)

		digest := Keccak256(candidate)
		copy(compressed[1:], digest[:])

		if p, err := secp256k1.ParsePubKey(compressed); err == nil {
			return p
		}
	}
	// Unreachable for any real field library: roughly half of all 32-byte
	// strings are valid x-coordinates, so 2^16 attempts never fails.
	panic("lsaghash: hash-to-curve exhausted try-and-increment budget")
}

// HashToCurvePoint computes H1(encode_point(p) ‖ tag_or_empty), the form used
// throughout the LSAG challenge chain and key-image derivation. tag may be
// nil, which collapses to the empty string per the hash-to-curve contract.
func HashToCurvePoint(p *secp256k1.PublicKey, tag []byte) *secp256k1.PublicKey {
	preimage := append([]byte(EncodePointHex(p)), tag...)
	return HashToCurve(preimage)
}
