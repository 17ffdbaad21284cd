package lsag

import (
	"encoding/binary"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/internal/lsaghash"
)

// LsagData is the public commitment produced at the zkVM boundary: the
// signature together with the verifier's verdict on it.
type LsagData struct {
	Lsag     Lsag
	Verified bool
}

// Commit runs Verify over sig and packages the result into an LsagData. This
// is the operation the zkVM guest is expected to call before writing its
// public output; the guest/host plumbing around it is out of scope here.
func Commit(sig Lsag) LsagData {
	return LsagData{Lsag: sig, Verified: Verify(sig)}
}

// ErrTruncated is returned by UnmarshalBoundary when the input ends before a
// length-prefixed or fixed-size field is fully read.
var ErrTruncated = errors.New("lsag: truncated boundary encoding")

// MarshalBoundary encodes data in the byte-stable schema used at the zkVM
// commitment boundary: ring and key_image as uncompressed SEC1 points, c0
// and each response as 32-byte big-endian canonical scalars, message as
// length-prefixed UTF-8 bytes, tag as an optional length-prefixed UTF-8
// string, followed by a single verified byte.
func MarshalBoundary(data LsagData) []byte {
	sig := data.Lsag
	out := make([]byte, 0, 256)

	out = appendUint32(out, uint32(len(sig.Ring)))
	for _, member := range sig.Ring {
		out = append(out, lsaghash.EncodePoint(member)...)
	}

	out = append(out, lsaghash.EncodePoint(sig.KeyImage)...)
	out = append(out, sig.Challenge.Bytes()[:]...)

	out = appendUint32(out, uint32(len(sig.Responses)))
	for _, r := range sig.Responses {
		b := r.Bytes()
		out = append(out, b[:]...)
	}

	out = appendUint32(out, uint32(len(sig.Message)))
	out = append(out, sig.Message...)

	out = appendUint32(out, uint32(len(sig.Tag)))
	out = append(out, sig.Tag...)

	if data.Verified {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	return out
}

// UnmarshalBoundary decodes the schema written by MarshalBoundary. It
// performs no cryptographic validation beyond point parsing; callers who
// need that must run Verify on the returned LsagData.Lsag themselves.
func UnmarshalBoundary(b []byte) (LsagData, error) {
	var data LsagData

	ringLen, b, err := readUint32(b)
	if err != nil {
		return LsagData{}, err
	}
	ring := make(Ring, ringLen)
	for i := range ring {
		var raw []byte
		raw, b, err = readN(b, 65)
		if err != nil {
			return LsagData{}, err
		}
		p, err := secp256k1.ParsePubKey(raw)
		if err != nil {
			return LsagData{}, err
		}
		ring[i] = p
	}

	var keyImageRaw []byte
	keyImageRaw, b, err = readN(b, 65)
	if err != nil {
		return LsagData{}, err
	}
	keyImage, err := secp256k1.ParsePubKey(keyImageRaw)
	if err != nil {
		return LsagData{}, err
	}

	var c0Raw []byte
	c0Raw, b, err = readN(b, 32)
	if err != nil {
		return LsagData{}, err
	}
	var c0 secp256k1.ModNScalar
	c0.SetByteSlice(c0Raw)

	respLen, b, err := readUint32(b)
	if err != nil {
		return LsagData{}, err
	}
	responses := make([]*secp256k1.ModNScalar, respLen)
	for i := range responses {
		var raw []byte
		raw, b, err = readN(b, 32)
		if err != nil {
			return LsagData{}, err
		}
		var s secp256k1.ModNScalar
		s.SetByteSlice(raw)
		responses[i] = &s
	}

	msgLen, b, err := readUint32(b)
	if err != nil {
		return LsagData{}, err
	}
	message, b, err := readN(b, int(msgLen))
	if err != nil {
		return LsagData{}, err
	}

	tagLen, b, err := readUint32(b)
	if err != nil {
		return LsagData{}, err
	}
	var tag []byte
	if tagLen > 0 {
		tag, b, err = readN(b, int(tagLen))
		if err != nil {
			return LsagData{}, err
		}
	}

	var verifiedByte []byte
	verifiedByte, _, err = readN(b, 1)
	if err != nil {
		return LsagData{}, err
	}

	data.Lsag = Lsag{
		Ring:      ring,
		KeyImage:  keyImage,
		Challenge: &c0,
		Responses: responses,
		Message:   append([]byte(nil), message...),
		Tag:       append([]byte(nil), tag...),
	}
	data.Verified = verifiedByte[0] != 0

	return data, nil
}

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

func readUint32(b []byte) (uint32, []byte, error) {
	raw, rest, err := readN(b, 4)
	if err != nil {
		return 0, nil, err
	}
	return binary.BigEndian.Uint32(raw), rest, nil
}

func readN(b []byte, n int) ([]byte, []byte, error) {
	if len(b) < n {
		return nil, nil, ErrTruncated
	}
	return b[:n], b[n:], nil
}
