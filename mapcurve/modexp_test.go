package mapcurve

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func randFieldElement(t *testing.T) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, fpP)
	if err != nil {
		t.Fatalf("rand.Int: %v", err)
	}
	return v
}

func TestModExpMatchesBigIntExp(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := randFieldElement(t)
		e := randFieldElement(t)
		got := modExp(a, e)
		want := new(big.Int).Exp(a, e, fpP)
		if got.Cmp(want) != 0 {
			t.Fatalf("modExp(%s, %s) = %s, want %s", a, e, got, want)
		}
	}
}

func TestInverse(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := randFieldElement(t)
		if a.Sign() == 0 {
			continue
		}
		inv := inverse(a)
		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, fpP)
		if prod.Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("inverse(%s) = %s, a*inv mod p = %s, want 1", a, inv, prod)
		}
	}
}

func TestInv0Zero(t *testing.T) {
	if inv0(new(big.Int)).Sign() != 0 {
		t.Fatal("inv0(0) should be 0")
	}
}

func TestSqrtP3Mod4(t *testing.T) {
	// Square a random element to guarantee it's a QR, then recover a root.
	for i := 0; i < 50; i++ {
		a := randFieldElement(t)
		sq := fpSqr(a)
		s, ok := sqrtP3Mod4(sq)
		if !ok {
			t.Fatalf("sqrtP3Mod4(%s^2) reported no root", a)
		}
		if fpSqr(s).Cmp(sq) != 0 {
			t.Fatalf("sqrt candidate %s does not square back to %s", s, sq)
		}
	}
}

func TestLegendre(t *testing.T) {
	ls, err := legendre(new(big.Int))
	if err != nil || ls != 0 {
		t.Fatalf("legendre(0) = (%d, %v), want (0, nil)", ls, err)
	}

	for i := 0; i < 20; i++ {
		a := randFieldElement(t)
		if a.Sign() == 0 {
			continue
		}
		sq := fpSqr(a)
		ls, err := legendre(sq)
		if err != nil {
			t.Fatalf("legendre: %v", err)
		}
		if ls != 1 {
			t.Fatalf("legendre(%s^2) = %d, want 1", a, ls)
		}
	}
}
