// Package lsaghash provides the hashing, encoding, and hash-to-curve
// primitives shared by the LSAG signer and verifier. Keeping them in one
// internal package guarantees signer and verifier build byte-identical
// Fiat-Shamir preimages.
package lsaghash

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes data with Keccak-256 (not NIST SHA3-256).
func Keccak256(data []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// SHA256 hashes data with SHA-256, the includer predicate's hash. Nothing in
// this module calls it: package includer uses crypto/sha256 directly.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}
