package lsaghash

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// RingWalk freezes the parts of the Fiat-Shamir preimage that stay constant
// across every step of a ring closure: the serialized ring and the message
// digest. Both the signer and the verifier build one RingWalk per signature
// and then call Next once per ring position, so the two can never drift
// apart on preimage construction.
type RingWalk struct {
	ringHex    string
	msgDecimal string
}

// NewRingWalk builds the frozen preimage prefix for a given ring and message.
func NewRingWalk(ring []*secp256k1.PublicKey, message []byte) (*RingWalk, error) {
	digest := Keccak256(message)
	msgHex := hex.EncodeToString(digest[:])
	msgDecimal, err := HexToDecimal(msgHex)
	if err != nil {
		return nil, err
	}
	return &RingWalk{
		ringHex:    EncodeRingHex(ring),
		msgDecimal: msgDecimal,
	}, nil
}

// Next computes the next challenge in the ring closure given the current
// position's ring member and its hash-to-curve point, the key image, and the
// (response, challenge) pair at the current position:
//
//	c_next = H2( ring ‖ decimal(msg_digest) ‖ encode(r*G + c*member) ‖ encode(r*h + c*keyImage) )
//
// Seeding the walk at the signer's own position is the same computation with
// c == 0 and r == the signer's nonce, since r*G + 0*member == r*G.
func (w *RingWalk) Next(member, h, keyImage *secp256k1.PublicKey, r, c *secp256k1.ModNScalar) (*secp256k1.ModNScalar, error) {
	left := AddMulGen(r, c, member)
	right := AddMul(r, h, c, keyImage)

	preimage := w.ringHex + w.msgDecimal + EncodePointHex(left) + EncodePointHex(right)
	digest := Keccak256([]byte(preimage))
	return ScalarFromHex(hex.EncodeToString(digest[:]))
}
