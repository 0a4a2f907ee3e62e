package gost3410

import (
	"math/big"
	"testing"
)

func paramSetBParams() Params {
	hx := func(s string) *big.Int {
		n, _ := new(big.Int).SetString(s, 16)
		return n
	}
	return Params{
		P: hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd97"),
		A: hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd94"),
		B: big.NewInt(0xa6),
		M: hx("ffffffffffffffffffffffffffffffff6c611070995ad10045841b09b761b893"),
		Q: hx("ffffffffffffffffffffffffffffffff6c611070995ad10045841b09b761b893"),
		X: big.NewInt(1),
		Y: hx("8d91e471e0989cda27df505a453f2b7635294f2ddf23e3b122acc99c9e9f1e14"),
	}
}

func mustCurve(t *testing.T) *Curve {
	t.Helper()
	c, err := NewCurve(Mode256, paramSetBParams())
	if err != nil {
		t.Fatalf("NewCurve(paramSetB) failed: %v", err)
	}
	return c
}

func TestNewCurveParamSetB(t *testing.T) {
	mustCurve(t)
}

func TestNewCurveRejectsUnsupportedMode(t *testing.T) {
	if _, err := NewCurve(Mode(99), paramSetBParams()); err == nil {
		t.Error("NewCurve should reject an unrecognized mode")
	}
}

func TestNewCurveRejectsMEqualsP(t *testing.T) {
	p := paramSetBParams()
	p.M = new(big.Int).Set(p.P)
	if _, err := NewCurve(Mode256, p); err == nil {
		t.Error("NewCurve should reject m == p")
	}
}

func TestNewCurveRejectsBasePointOffCurve(t *testing.T) {
	p := paramSetBParams()
	p.Y = new(big.Int).Add(p.Y, big.NewInt(1))
	if _, err := NewCurve(Mode256, p); err == nil {
		t.Error("NewCurve should reject a base point not on the curve")
	}
}

func TestNewCurveRequiresACanonicalOrEdwardsSet(t *testing.T) {
	p := Params{P: paramSetBParams().P, M: paramSetBParams().M, Q: paramSetBParams().Q}
	if _, err := NewCurve(Mode256, p); err == nil {
		t.Error("NewCurve should reject a parameter set with neither canonical nor Edwards fields")
	}
}

// TestEdwardsToCanonicalMatchesParamSetA builds id-tc26-gost-3410-2012-256-
// paramSetA from only its twisted-Edwards fields (P, E, D, U, V, M, Q) and
// checks that edwardsToCanonical reproduces that same curve's own published
// canonical A, B, X, Y — the only direct exercise of the conversion path,
// since every gostparams registry entry otherwise carries canonical fields
// and never reaches it.
func TestEdwardsToCanonicalMatchesParamSetA(t *testing.T) {
	hx := func(s string) *big.Int {
		n, _ := new(big.Int).SetString(s, 16)
		return n
	}
	p := Params{
		P: hx("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd97"),
		M: hx("1000000000000000000000000000000003f63377f21ed98d70456bd55b0d8319c"),
		Q: hx("400000000000000000000000000000000fd8cddfc87b6635c115af556c360c67"),
		E: big.NewInt(1),
		D: hx("605f6b7c183fa81578bc39cfad518132b9df62897009af7e522c32d6dc7bffb"),
		U: big.NewInt(0x0d),
		V: hx("60ca1e32aa475b348488c38fab07649ce7ef8dbe87f22e81f92b2592dba300e7"),
	}

	c, err := NewCurve(Mode256, p)
	if err != nil {
		t.Fatalf("NewCurve(Edwards-only paramSetA) failed: %v", err)
	}

	wantA := hx("c2173f1513981673af4892c23035a27ce25e2013bf95aa33b22c656f277e7335")
	wantB := hx("295f9bae7428ed9ccc20e7c359a9d41a22fccd9108e17bf7ba9337a6f8ae9513")
	wantX := hx("91e38443a5e82c0d880923425712b2bb658b9196932e02c78b2582fe742daa28")
	wantY := hx("32879423ab1a0375895786c4bb46e9565fde0b5344766740af268adb32322e5c")

	if c.a.Cmp(wantA) != 0 {
		t.Errorf("a = %x, want %x", c.a, wantA)
	}
	if c.b.Cmp(wantB) != 0 {
		t.Errorf("b = %x, want %x", c.b, wantB)
	}
	if c.gx.Cmp(wantX) != 0 {
		t.Errorf("x = %x, want %x", c.gx, wantX)
	}
	if c.gy.Cmp(wantY) != 0 {
		t.Errorf("y = %x, want %x", c.gy, wantY)
	}
}

func TestScalarMulBaseIdentity(t *testing.T) {
	c := mustCurve(t)
	p, err := c.scalarMul(big.NewInt(1), nil)
	if err != nil {
		t.Fatalf("scalarMul(1) failed: %v", err)
	}
	if p.X.Cmp(c.gx) != 0 || p.Y.Cmp(c.gy) != 0 {
		t.Error("scalarMul(1, base) should return the base point")
	}
}
