package mapcurve

import (
	"math/big"
	"testing"
)

func TestFpArithmeticRange(t *testing.T) {
	a := randFieldElement(t)
	b := randFieldElement(t)
	for _, v := range []*big.Int{fpAdd(a, b), fpSub(a, b), fpMul(a, b), fpNeg(a), fpSqr(a)} {
		if v.Sign() < 0 || v.Cmp(fpP) >= 0 {
			t.Fatalf("field result %s out of range [0, p)", v)
		}
	}
}

func TestFpNegInvolution(t *testing.T) {
	a := randFieldElement(t)
	if fpNeg(fpNeg(a)).Cmp(a) != 0 {
		t.Fatalf("neg(neg(a)) != a")
	}
	if fpNeg(new(big.Int)).Sign() != 0 {
		t.Fatal("neg(0) should be 0")
	}
}

func TestOnCurveGeneratorE(t *testing.T) {
	// (1, 2) is BN254's canonical G1 generator: 2^2 = 1^3 + 3.
	if !onCurve(big.NewInt(1), big.NewInt(2), new(big.Int), curveB) {
		t.Fatal("(1, 2) should satisfy y^2 = x^3 + 3")
	}
}

func TestOnCurveRejectsOffCurvePoint(t *testing.T) {
	if onCurve(big.NewInt(1), big.NewInt(3), new(big.Int), curveB) {
		t.Fatal("(1, 3) is not on E but onCurve reported true")
	}
}

func TestAffinePointOnE(t *testing.T) {
	gen := AffinePoint{X: big.NewInt(1), Y: big.NewInt(2)}
	if !gen.onE() {
		t.Fatal("BN254 generator (1, 2) should satisfy onE")
	}
	off := AffinePoint{X: big.NewInt(1), Y: big.NewInt(3)}
	if off.onE() {
		t.Fatal("(1, 3) should not satisfy onE")
	}
	if !gen.Equal(AffinePoint{X: big.NewInt(1), Y: big.NewInt(2)}) {
		t.Fatal("Equal should hold for identical coordinates")
	}
}

func TestAffinePointOnEPrime(t *testing.T) {
	u := randFieldElement(t)
	xp, yp, err := sswuMapPrime(u)
	if err != nil {
		t.Fatalf("sswuMapPrime: %v", err)
	}
	pt := AffinePoint{X: xp, Y: yp}
	if !pt.onEPrime() {
		t.Fatal("sswuMapPrime output should satisfy onEPrime")
	}
}

func TestSgn0Parity(t *testing.T) {
	if sgn0(big.NewInt(4)) != 0 {
		t.Fatal("sgn0(4) should be 0")
	}
	if sgn0(big.NewInt(5)) != 1 {
		t.Fatal("sgn0(5) should be 1")
	}
}
