package mapcurve

// Affine point representation shared by E (the BN254 curve proper) and E'
// (SSWU's auxiliary curve). Unlike the Jacobian G1 point type this
// codebase's crypto package uses for scalar multiplication and pairing,
// map-to-curve only ever produces and validates single affine points, so
// no projective coordinates or point addition are needed here.

import "math/big"

// AffinePoint is a point (X, Y) on some Weierstrass curve over F_p.
type AffinePoint struct {
	X, Y *big.Int
}

// onE reports whether pt lies on E: y^2 = x^3 + 3.
func (pt AffinePoint) onE() bool {
	return onCurve(pt.X, pt.Y, new(big.Int), curveB)
}

// onEPrime reports whether pt lies on E': y^2 = x^3 + A'x + B'.
func (pt AffinePoint) onEPrime() bool {
	return onCurve(pt.X, pt.Y, sswuA, sswuB)
}

// Equal reports whether two affine points have identical coordinates.
func (pt AffinePoint) Equal(other AffinePoint) bool {
	return pt.X.Cmp(other.X) == 0 && pt.Y.Cmp(other.Y) == 0
}
