package lsag

import "testing"

func TestMarshalUnmarshalBoundaryRoundTrip(t *testing.T) {
	ring, priv := buildRing(t, 4, 2)
	sig := mustSign(t, ring, priv, 2, []byte("epoch-7"), "boundary message")
	data := Commit(sig)

	encoded := MarshalBoundary(data)

	decoded, err := UnmarshalBoundary(encoded)
	if err != nil {
		t.Fatalf("UnmarshalBoundary: %v", err)
	}

	if decoded.Verified != data.Verified {
		t.Fatalf("verified flag mismatch: got %v, want %v", decoded.Verified, data.Verified)
	}
	if !decoded.Lsag.KeyImage.IsEqual(sig.KeyImage) {
		t.Fatalf("key image mismatch after round trip")
	}
	if len(decoded.Lsag.Ring) != len(sig.Ring) {
		t.Fatalf("ring length mismatch: got %d, want %d", len(decoded.Lsag.Ring), len(sig.Ring))
	}
	for i := range sig.Ring {
		if !decoded.Lsag.Ring[i].IsEqual(sig.Ring[i]) {
			t.Fatalf("ring member %d mismatch after round trip", i)
		}
	}
	if string(decoded.Lsag.Message) != string(sig.Message) {
		t.Fatalf("message mismatch: got %q, want %q", decoded.Lsag.Message, sig.Message)
	}
	if string(decoded.Lsag.Tag) != string(sig.Tag) {
		t.Fatalf("tag mismatch: got %q, want %q", decoded.Lsag.Tag, sig.Tag)
	}
	if !decoded.Lsag.Challenge.Equals(sig.Challenge) {
		t.Fatalf("c0 mismatch after round trip")
	}

	if !Verify(decoded.Lsag) {
		t.Fatalf("expected round-tripped signature to still verify")
	}
}

func TestUnmarshalBoundaryRejectsTruncatedInput(t *testing.T) {
	ring, priv := buildRing(t, 2, 0)
	sig := mustSign(t, ring, priv, 0, nil, "m")
	data := Commit(sig)
	encoded := MarshalBoundary(data)

	if _, err := UnmarshalBoundary(encoded[:len(encoded)-1]); err == nil {
		t.Fatalf("expected truncated input to fail to decode")
	}
}
