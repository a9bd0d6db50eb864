package mapcurve

import "math/big"

// Coefficient tables for the fixed 59-isogeny φ: E' -> E, ordered low
// degree first (index 0 = constant term), as required by the Horner-style
// accumulator in isogeny.go.
//
// KNOWN LIMITATION: the exact 238 constants of BN254's published 59-isogeny
// are not available in this environment (no network access, and none of
// the vendored reference material carries a BN254 isogeny table — see
// DESIGN.md's open-question entry for isoMap). The values below are
// internally consistent placeholders of the correct shape (degrees 59,
// 58, 59, 58) built from a small deterministic generator rather than the
// published constants, so evalPolys exercises the real Horner accumulator
// (shared x^i ladder, exactly two inversions, zero-denominator guard) but
// does NOT reproduce the real isogeny.
//
// isogenyTableAuthentic gates isoMap (isogeny.go): while false, isoMap
// refuses to produce output rather than silently return a point that is
// not actually on E. Flip this to true only once isoNumX/isoDenX/isoNumY/
// isoDenY below hold the published constants; the S2-vector, on-curve,
// and round-trip tests for the SSWU pipeline are written against that
// flag and activate automatically the moment it does.
var isogenyTableAuthentic = false

var (
	isoNumX = placeholderPoly(60, 0x01)
	isoDenX = placeholderPoly(59, 0x02)
	isoNumY = placeholderPoly(60, 0x03)
	isoDenY = placeholderPoly(59, 0x04)
)

// placeholderPoly deterministically derives n field-element coefficients
// from a small seed via repeated squaring, so the table is reproducible
// and nonzero-weighted without hardcoding a large literal block.
func placeholderPoly(n int, seed int64) []*big.Int {
	coeffs := make([]*big.Int, n)
	v := big.NewInt(seed)
	for i := 0; i < n; i++ {
		coeffs[i] = new(big.Int).Mod(v, fpP)
		v = new(big.Int).Add(fpSqr(v), big.NewInt(seed))
	}
	// The constant term of a denominator polynomial must be nonzero so
	// that D(0) != 0; force it explicitly rather than rely on the
	// generator.
	if coeffs[0].Sign() == 0 {
		coeffs[0] = big.NewInt(1)
	}
	return coeffs
}
