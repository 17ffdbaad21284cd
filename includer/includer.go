// Package includer implements the includer-lottery predicate: a
// deterministic, Sybil-resistant selection function that decides whether a
// given key image is selected as an includer for a slot, at an expected
// rate of roughly one in N/T.
package includer

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"lsag/internal/lsaghash"
)

// TargetIncluders is the nominal target number of includers per slot,
// independent of validator set size.
const TargetIncluders = 64

// IsIncluder reports whether keyImage is selected as an includer out of a
// validator set of size validatorCount, targeting roughly targetIncluders
// selections per slot. The result depends only on its inputs: same key
// image, same counts, same answer, every time.
func IsIncluder(keyImage *secp256k1.PublicKey, validatorCount, targetIncluders int) bool {
	if targetIncluders <= 0 {
		targetIncluders = TargetIncluders
	}

	modulo := validatorCount / targetIncluders
	if modulo < 1 {
		modulo = 1
	}

	digest := sha256.Sum256(lsaghash.EncodePoint(keyImage))
	u := binary.LittleEndian.Uint64(digest[:8])

	return u%uint64(modulo) == 0
}
