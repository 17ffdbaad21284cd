package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/lsag"
)

// sigJSON is the hex-encoded wire shape lsagctl reads and writes on stdin
// and stdout. lsag.Lsag itself holds curve types that don't marshal to JSON
// directly, so the CLI keeps its own small DTO rather than teaching the
// core package about JSON.
type sigJSON struct {
	Ring      []string `json:"ring"`
	KeyImage  string   `json:"key_image"`
	Challenge string   `json:"c0"`
	Responses []string `json:"responses"`
	Message   string   `json:"message"`
	Tag       string   `json:"tag,omitempty"`
}

func encodeSig(sig lsag.Lsag) sigJSON {
	out := sigJSON{
		Ring:      make([]string, len(sig.Ring)),
		KeyImage:  hex.EncodeToString(sig.KeyImage.SerializeUncompressed()),
		Challenge: hex.EncodeToString(sig.Challenge.Bytes()[:]),
		Responses: make([]string, len(sig.Responses)),
		Message:   string(sig.Message),
	}
	for i, m := range sig.Ring {
		out.Ring[i] = hex.EncodeToString(m.SerializeUncompressed())
	}
	for i, r := range sig.Responses {
		b := r.Bytes()
		out.Responses[i] = hex.EncodeToString(b[:])
	}
	if sig.Tag != nil {
		out.Tag = string(sig.Tag)
	}
	return out
}

func decodeSig(j sigJSON) (lsag.Lsag, error) {
	ring := make(lsag.Ring, len(j.Ring))
	for i, h := range j.Ring {
		p, err := parsePubKeyHex(h)
		if err != nil {
			return lsag.Lsag{}, fmt.Errorf("ring[%d]: %w", i, err)
		}
		ring[i] = p
	}

	keyImage, err := parsePubKeyHex(j.KeyImage)
	if err != nil {
		return lsag.Lsag{}, fmt.Errorf("key_image: %w", err)
	}

	c0, err := parseScalarHex(j.Challenge)
	if err != nil {
		return lsag.Lsag{}, fmt.Errorf("c0: %w", err)
	}

	responses := make([]*secp256k1.ModNScalar, len(j.Responses))
	for i, h := range j.Responses {
		s, err := parseScalarHex(h)
		if err != nil {
			return lsag.Lsag{}, fmt.Errorf("responses[%d]: %w", i, err)
		}
		responses[i] = s
	}

	var tag []byte
	if j.Tag != "" {
		tag = []byte(j.Tag)
	}

	return lsag.Lsag{
		Ring:      ring,
		KeyImage:  keyImage,
		Challenge: c0,
		Responses: responses,
		Message:   []byte(j.Message),
		Tag:       tag,
	}, nil
}

func parsePubKeyHex(h string) (*secp256k1.PublicKey, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	return secp256k1.ParsePubKey(raw)
}

func parseScalarHex(h string) (*secp256k1.ModNScalar, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(raw); overflow {
		return nil, fmt.Errorf("scalar out of range")
	}
	return &s, nil
}

func marshalSig(sig lsag.Lsag) ([]byte, error) {
	return json.MarshalIndent(encodeSig(sig), "", "  ")
}

func unmarshalSig(data []byte) (lsag.Lsag, error) {
	var j sigJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return lsag.Lsag{}, err
	}
	return decodeSig(j)
}
