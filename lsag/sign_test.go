package lsag

import (
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func randPrivKey(t *testing.T) *secp256k1.PrivateKey {
	t.Helper()
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return secp256k1.PrivKeyFromBytes(buf[:])
}

func buildRing(t *testing.T, size, signerIndex int) (Ring, *secp256k1.PrivateKey) {
	t.Helper()
	ring := make(Ring, size)
	var signerPriv *secp256k1.PrivateKey
	for i := range ring {
		priv := randPrivKey(t)
		if i == signerIndex {
			signerPriv = priv
		}
		ring[i] = priv.PubKey()
	}
	return ring, signerPriv
}

// Completeness: verify(sign(...)) == true for a range of ring sizes and
// signer positions, with and without a tag.
func TestSignVerifyCompleteness(t *testing.T) {
	cases := []struct {
		name        string
		ringSize    int
		signerIndex int
		message     string
		tag         []byte
	}{
		{"two-member-first", 2, 0, "hello", nil},
		{"two-member-last", 2, 1, "hello", nil},
		{"five-member-middle", 5, 2, "ring test message", []byte("epoch-1")},
		{"eight-member-first", 8, 0, "m", nil},
		{"eight-member-last", 8, 7, "m", []byte("tag")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ring, priv := buildRing(t, tc.ringSize, tc.signerIndex)
			signer, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: tc.signerIndex}, tc.tag)
			if err != nil {
				t.Fatalf("NewSigner: %v", err)
			}
			sig, err := signer.Sign([]byte(tc.message))
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if !Verify(sig) {
				t.Fatalf("Verify returned false for a freshly produced signature")
			}
		})
	}
}

// Linkability: two signatures from the same key and tag share a key image,
// regardless of message, ring, or signer position.
func TestLinkability(t *testing.T) {
	priv := randPrivKey(t)
	tag := []byte("shared-tag")

	ring1, _ := buildRing(t, 4, 0)
	ring1[0] = priv.PubKey()
	ring2, _ := buildRing(t, 6, 3)
	ring2[3] = priv.PubKey()

	signer1, err := NewSigner(ring1, SigningDetails{PrivateKey: priv, SignerIndex: 0}, tag)
	if err != nil {
		t.Fatalf("NewSigner 1: %v", err)
	}
	signer2, err := NewSigner(ring2, SigningDetails{PrivateKey: priv, SignerIndex: 3}, tag)
	if err != nil {
		t.Fatalf("NewSigner 2: %v", err)
	}

	sig1, err := signer1.Sign([]byte("message one"))
	if err != nil {
		t.Fatalf("Sign 1: %v", err)
	}
	sig2, err := signer2.Sign([]byte("a completely different message"))
	if err != nil {
		t.Fatalf("Sign 2: %v", err)
	}

	if !sig1.KeyImage.IsEqual(sig2.KeyImage) {
		t.Fatalf("expected identical key images for same (priv, tag)")
	}
}

// Unlinkability across tags: distinct tags for the same key yield distinct
// key images.
func TestUnlinkabilityAcrossTags(t *testing.T) {
	priv := randPrivKey(t)

	img1, err := DeriveKeyImage(priv, []byte("tag-a"))
	if err != nil {
		t.Fatalf("DeriveKeyImage 1: %v", err)
	}
	img2, err := DeriveKeyImage(priv, []byte("tag-b"))
	if err != nil {
		t.Fatalf("DeriveKeyImage 2: %v", err)
	}

	if img1.IsEqual(img2) {
		t.Fatalf("expected distinct key images for distinct tags")
	}
}

// Determinism: repeated verification of the same signature returns the same
// result.
func TestVerifyDeterminism(t *testing.T) {
	ring, priv := buildRing(t, 4, 1)
	signer, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 1}, nil)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	sig, err := signer.Sign([]byte("deterministic"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	first := Verify(sig)
	for i := 0; i < 5; i++ {
		if Verify(sig) != first {
			t.Fatalf("Verify result changed across repeated calls")
		}
	}
	if !first {
		t.Fatalf("expected a valid signature to verify")
	}
}

// Ring-order sensitivity: permuting the ring invalidates the signature.
func TestRingOrderSensitivity(t *testing.T) {
	ring, priv := buildRing(t, 4, 2)
	signer, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 2}, nil)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	sig, err := signer.Sign([]byte("order sensitive"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	permuted := append(Ring(nil), sig.Ring...)
	permuted[0], permuted[1] = permuted[1], permuted[0]
	sig.Ring = permuted

	if Verify(sig) {
		t.Fatalf("expected permuted ring to fail verification")
	}
}

// Message binding: mutating the signed message invalidates the signature.
func TestMessageBinding(t *testing.T) {
	ring, priv := buildRing(t, 3, 0)
	signer, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 0}, nil)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	sig, err := signer.Sign([]byte("original message"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	sig.Message = []byte("tampered message")
	if Verify(sig) {
		t.Fatalf("expected mutated message to fail verification")
	}
}

func TestNewSignerRejectsBadInput(t *testing.T) {
	ring, priv := buildRing(t, 3, 0)

	if _, err := NewSigner(ring[:1], SigningDetails{PrivateKey: priv, SignerIndex: 0}, nil); err == nil {
		t.Fatalf("expected error for a ring with fewer than two members")
	}

	if _, err := NewSigner(ring, SigningDetails{PrivateKey: nil, SignerIndex: 0}, nil); err == nil {
		t.Fatalf("expected error for a nil private key")
	}

	if _, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 1}, nil); err == nil {
		t.Fatalf("expected error when signer index doesn't match the private key")
	}

	if _, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 99}, nil); err == nil {
		t.Fatalf("expected error for an out-of-range signer index")
	}
}

func TestNewSignerRejectsDuplicateRingMembers(t *testing.T) {
	ring, priv := buildRing(t, 3, 0)
	ring[2] = ring[1]

	if _, err := NewSigner(ring, SigningDetails{PrivateKey: priv, SignerIndex: 0}, nil); err == nil {
		t.Fatalf("expected error for a ring containing duplicate public keys")
	}
}
