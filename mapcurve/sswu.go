package mapcurve

// Simplified SWU map (RFC 9380 §6.6.3 / Appendix F.2) on the auxiliary
// curve E': y^2 = x^3 + A'*x + B', chosen because BN254's E has A = 0 and
// SSWU requires A != 0. The output (x', y') is transported to E by the
// isogeny evaluator in isogeny.go.

import "math/big"

var (
	sswuA, _ = new(big.Int).SetString("9087994317191712533568698403530528306233527979934880849865820425505218365052", 10)
	sswuB, _ = new(big.Int).SetString("3059101143800926337153883959975852125336293569895750485959800095292563537400", 10)

	// sswuZ = p - 13.
	sswuZ = new(big.Int).Sub(fpP, big.NewInt(13))

	// sswuC1 = (p - 3) / 4, the exponent used by sqrtRatio.
	sswuC1 = new(big.Int).Rsh(new(big.Int).Sub(fpP, big.NewInt(3)), 2)

	// sswuC2 = sqrt(-Z) mod p, computed once at init and verified.
	sswuC2 = mustSqrtNegZ()
)

func mustSqrtNegZ() *big.Int {
	negZ := fpNeg(sswuZ)
	c := modExp(negZ, new(big.Int).Rsh(new(big.Int).Add(fpP, big.NewInt(1)), 2))
	if fpSqr(c).Cmp(negZ) != 0 {
		panic("mapcurve: sqrt(-Z_sswu) failed to verify at init")
	}
	return c
}

// sqrtRatio computes (isQR, y) such that y^2 * v == u (mod p) when isQR is
// true, or y^2 * v == u * Z_sswu when isQR is false, following the
// tv-variable sequence of RFC 9380 §F.2.1.2 specialized to SSWU's fixed
// Z_sswu. u and v must already be reduced mod p; v must be nonzero.
func sqrtRatio(u, v *big.Int) (isQR bool, y *big.Int) {
	tv1 := fpMul(fpMul(fpSqr(v), v), u) // u * v^3
	y1 := fpMul(modExp(tv1, sswuC1), fpMul(u, v))
	y2 := fpMul(y1, sswuC2)
	lhs := fpMul(fpSqr(y1), v)
	if lhs.Cmp(new(big.Int).Mod(u, fpP)) == 0 {
		return true, y1
	}
	return false, y2
}

// sswuMap implements map_to_curve_sswu(u) -> (x, y) on E, via the
// straight-line SSWU body on E' followed by isogeny evaluation. u must
// already be in [0, p). While isogenyTableAuthentic is false, isoMap
// returns an *InvariantError, and so does this function.
func sswuMap(u *big.Int) (x, y *big.Int, err error) {
	xp, yp, err := sswuMapPrime(u)
	if err != nil {
		return nil, nil, err
	}
	return isoMap(xp, yp)
}

// sswuMapPrime computes the intermediate point (x', y') on E' before
// isogeny transport. Exposed internally for the tests of the E' stage.
func sswuMapPrime(u *big.Int) (xp, yp *big.Int, err error) {
	// Steps follow RFC 9380 §F.2's straight-line formulation; all tv
	// names mirror the reference so the coefficient order stays easy to
	// audit against the spec.
	tv1 := fpMul(sswuZ, fpSqr(u))
	tv2 := fpSqr(tv1)
	tv2 = fpAdd(tv2, tv1)
	tv3 := fpAdd(tv2, big.NewInt(1))
	tv3 = fpMul(sswuB, tv3)

	var tv4 *big.Int
	if tv2.Sign() != 0 {
		tv4 = fpNeg(tv2)
	} else {
		tv4 = new(big.Int).Set(sswuZ)
	}
	tv4 = fpMul(sswuA, tv4)

	tv2b := fpSqr(tv3)
	tv6 := fpSqr(tv4)
	tv5 := fpMul(sswuA, tv6)
	tv2b = fpAdd(tv2b, tv5)
	tv2b = fpMul(tv2b, tv3)
	tv6 = fpMul(tv6, tv4)
	tv5 = fpMul(sswuB, tv6)
	tv2b = fpAdd(tv2b, tv5)

	xCand := fpMul(tv1, tv3)

	isQR, y1 := sqrtRatio(tv2b, tv6)

	yCand := fpMul(tv1, u)
	yCand = fpMul(yCand, y1)

	if isQR {
		xCand = tv3
		yCand = y1
	}

	if sgn0(u) != sgn0(yCand) {
		yCand = fpNeg(yCand)
	}

	if tv4.Sign() == 0 {
		return nil, nil, mapToPointFailed(u, "sswu: zero denominator before affine conversion")
	}
	xp = fpMul(xCand, inverse(tv4))
	yp = yCand
	return xp, yp, nil
}
