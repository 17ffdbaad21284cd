package lsaghash

import (
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrNonCanonicalScalar is returned by ScalarFromHex when the decoded integer
// is not reduced modulo the group order.
var ErrNonCanonicalScalar = errors.New("lsaghash: scalar is not canonical (>= group order)")

// ErrMalformedHex is returned by ScalarFromHex when the input is not exactly
// 32 bytes of hex.
var ErrMalformedHex = errors.New("lsaghash: expected 64 hex characters")

// EncodePoint returns the uncompressed SEC1 encoding of p: 0x04 || X || Y.
func EncodePoint(p *secp256k1.PublicKey) []byte {
	return p.SerializeUncompressed()
}

// EncodePointHex returns the uncompressed SEC1 encoding of p as a lowercase
// hex string: "04" + hex(X) + hex(Y).
func EncodePointHex(p *secp256k1.PublicKey) string {
	return hex.EncodeToString(EncodePoint(p))
}

// EncodeRing concatenates the uncompressed SEC1 encoding of every point in
// ring, in order. Order is part of a ring signature's identity; callers must
// never reorder a ring between signing and verification. This is the wire
// form used at the zkVM commitment boundary.
func EncodeRing(ring []*secp256k1.PublicKey) []byte {
	out := make([]byte, 0, 65*len(ring))
	for _, p := range ring {
		out = append(out, EncodePoint(p)...)
	}
	return out
}

// EncodeRingHex concatenates the hex-string encoding of every point in ring,
// in order. This textual form, not the raw binary EncodeRing, is what feeds
// the Fiat-Shamir ring-challenge preimage (§6 mixes hex and decimal text).
func EncodeRingHex(ring []*secp256k1.PublicKey) string {
	var sb []byte
	for _, p := range ring {
		sb = append(sb, EncodePointHex(p)...)
	}
	return string(sb)
}

// HexToDecimal interprets h as a big-endian hex-encoded unsigned integer and
// returns its base-10 decimal representation. The ring-challenge hash
// preimage mixes hex and decimal textual forms, so this conversion must be
// reproduced exactly byte-for-byte by every implementation.
func HexToDecimal(h string) (string, error) {
	n, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return "", ErrMalformedHex
	}
	return n.Text(10), nil
}

// ScalarFromHex parses 32 hex-encoded big-endian bytes into a canonical
// Scalar. It fails if the input isn't exactly 64 hex characters, or if the
// decoded value is not already reduced modulo the group order.
func ScalarFromHex(h string) (*secp256k1.ModNScalar, error) {
	if len(h) != 64 {
		return nil, ErrMalformedHex
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, ErrMalformedHex
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(raw); overflow {
		return nil, ErrNonCanonicalScalar
	}
	return &s, nil
}
