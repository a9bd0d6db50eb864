package mapcurve

// Shallue-van de Woestijne map (RFC 9380 §6.6.1), specialized to BN254's
// curve E: y^2 = x^3 + 3 (A = 0, B = 3, Z = 1).

import "math/big"

var (
	svdwZ = big.NewInt(1)

	// svdwC1 = g(Z) = Z^3 + 3.
	svdwC1 = big.NewInt(4)

	// svdwC2 = (-Z * 2^-1) mod p.
	svdwC2, _ = new(big.Int).SetString("183227397098d014dc2822db40c0ac2ecbc0b548b438e5469e10460b6c3e7ea3", 16)

	// svdwC3 = sqrt(-g(Z) * (3*Z^2 + 4*A)) mod p, with sgn0(C3) = 0.
	svdwC3, _ = new(big.Int).SetString("16789af3a83522eb353c98fc6b36d713d5d8d1cc5dffffffa", 16)

	// svdwC4 = 4 * (-g(Z)) * (3*Z^2 + 4*A)^-1 mod p.
	svdwC4, _ = new(big.Int).SetString("10216f7ba065e00de81ac1e7808072c9dd2b2385cd7b438469602eb24829a9bd", 16)
)

// svdwMap implements map_to_curve_svdw(u) -> (x, y). u must already be in
// [0, p); callers validate this at the public API boundary.
func svdwMap(u *big.Int) (x, y *big.Int, err error) {
	tv1 := fpMul(fpSqr(u), svdwC1)
	tv2 := fpAdd(big.NewInt(1), tv1)
	tv1 = fpSub(big.NewInt(1), tv1)

	// tv1*tv2 = 1 - u^4*C1^2 is zero exactly when u = ±2^-1. There
	// inverse(0) = 0^(p-2) = 0, the same value inv0 gives, so tv3 = 0,
	// x1 = x2 = C2, x3 = Z, and the map still returns a point on E.
	tv3 := inverse(fpMul(tv1, tv2))

	tv5 := fpMul(fpMul(fpMul(u, tv1), tv3), svdwC3)

	x1 := fpSub(svdwC2, tv5)
	x2 := fpAdd(svdwC2, tv5)
	tv2sq := fpSqr(tv2)
	x3 := fpAdd(svdwZ, fpMul(svdwC4, fpSqr(fpMul(tv2sq, tv3))))

	var chosen *big.Int
	for _, cand := range [...]*big.Int{x1, x2, x3} {
		ls, lerr := legendre(gE(cand))
		if lerr != nil {
			return nil, nil, lerr
		}
		if ls == 1 {
			chosen = cand
			break
		}
	}
	if chosen == nil {
		// Unreachable: RFC 9380 guarantees at least one of x1, x2, x3
		// yields a quadratic residue for every u.
		return nil, nil, mapToPointFailed(u, "svdw: no candidate x yielded a quadratic residue")
	}

	gx := gE(chosen)
	s, hasRoot := sqrtP3Mod4(gx)
	if !hasRoot {
		return nil, nil, mapToPointFailed(gx, "svdw: sqrt candidate did not verify")
	}
	if sgn0(u) != sgn0(s) {
		s = fpNeg(s)
	}
	return chosen, s, nil
}
