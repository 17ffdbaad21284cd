package lsaghash

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &result)
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y)
}

// ScalarMult returns k*P.
func ScalarMult(k *secp256k1.ModNScalar, p *secp256k1.PublicKey) *secp256k1.PublicKey {
	var jp, result secp256k1.JacobianPoint
	p.AsJacobian(&jp)
	secp256k1.ScalarMultNonConst(k, &jp, &result)
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y)
}

// AddMulGen returns k1*G + k2*P2, the combination used to recompute a ring's
// "L" value (the left half of each Fiat-Shamir commitment).
func AddMulGen(k1 *secp256k1.ModNScalar, k2 *secp256k1.ModNScalar, p2 *secp256k1.PublicKey) *secp256k1.PublicKey {
	var left, rightJ, result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k1, &left)

	var p2j secp256k1.JacobianPoint
	p2.AsJacobian(&p2j)
	secp256k1.ScalarMultNonConst(k2, &p2j, &rightJ)

	secp256k1.AddNonConst(&left, &rightJ, &result)
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y)
}

// AddMul returns k1*P1 + k2*P2, the combination used to recompute a ring's
// "R" value (the right half of each Fiat-Shamir commitment, built over the
// hash-to-curve point rather than the generator).
func AddMul(k1 *secp256k1.ModNScalar, p1 *secp256k1.PublicKey, k2 *secp256k1.ModNScalar, p2 *secp256k1.PublicKey) *secp256k1.PublicKey {
	var p1j, p2j, left, right, result secp256k1.JacobianPoint
	p1.AsJacobian(&p1j)
	secp256k1.ScalarMultNonConst(k1, &p1j, &left)

	p2.AsJacobian(&p2j)
	secp256k1.ScalarMultNonConst(k2, &p2j, &right)

	secp256k1.AddNonConst(&left, &right, &result)
	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y)
}
