package gost3410

import (
	"fmt"
	"math/big"

	"github.com/tc26/gogost/internal/gostlog"
)

// Mode selects the 256-bit or 512-bit signature mode, which fixes the
// key/signature component width and the bit-length bound on q.
type Mode int

const (
	// Mode256 is the 256-bit signature mode: 32-byte keys, 64-byte
	// signatures.
	Mode256 Mode = iota
	// Mode512 is the 512-bit signature mode: 64-byte keys, 128-byte
	// signatures.
	Mode512
)

func (m Mode) String() string {
	switch m {
	case Mode256:
		return "M256"
	case Mode512:
		return "M512"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var log = gostlog.Default().ForGost3410()

// Params supplies the curve parameters accepted by NewCurve. Either the
// canonical short-Weierstrass set (P, A, B, M, Q, X, Y) or the twisted
// Edwards set (P, E, D, M, Q, U, V) must be fully present; both may be
// supplied at once, in which case the canonical set is used as-is and the
// Edwards set is ignored for construction purposes.
type Params struct {
	P, A, B, M, Q, X, Y *big.Int
	E, D, U, V          *big.Int
}

func (p Params) hasCanonical() bool {
	return p.A != nil && p.B != nil && p.X != nil && p.Y != nil
}

func (p Params) hasEdwards() bool {
	return p.E != nil && p.D != nil && p.U != nil && p.V != nil
}

// Curve is a validated GOST R 34.10-2012 elliptic-curve context. Values
// are immutable after construction and safe for concurrent Sign/Verify/
// PublicKeyGenerate calls.
type Curve struct {
	mode      Mode
	size      int
	p, a, b   *big.Int
	m, q      *big.Int
	gx, gy    *big.Int
}

// NewCurve validates params against the invariants in §3 of the
// specification and returns an immutable Curve. Edwards-only parameter
// sets are converted to canonical form first.
func NewCurve(mode Mode, params Params) (*Curve, error) {
	if mode != Mode256 && mode != Mode512 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, mode)
	}
	if params.P == nil || params.M == nil || params.Q == nil {
		return nil, fmt.Errorf("%w: p, m, and q are required", ErrInvalidCurve)
	}

	a, b, x, y := params.A, params.B, params.X, params.Y
	if !params.hasCanonical() {
		if !params.hasEdwards() {
			return nil, fmt.Errorf("%w: need either a canonical or twisted-Edwards parameter set", ErrInvalidCurve)
		}
		var err error
		a, b, x, y, err = edwardsToCanonical(params.P, params.E, params.D, params.U, params.V)
		if err != nil {
			return nil, err
		}
	}

	c := &Curve{
		mode: mode,
		p:    params.P,
		a:    a,
		b:    b,
		m:    params.M,
		q:    params.Q,
		gx:   x,
		gy:   y,
	}
	if mode == Mode256 {
		c.size = 32
	} else {
		c.size = 64
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	log.Debug("curve constructed", "mode", mode, "size", c.size)
	return c, nil
}

// validate checks the four curve invariants from §3: m != p, the
// embedding-degree guard, the subgroup-order bit-length bound, and that
// the base point lies on the curve.
func (c *Curve) validate() error {
	if c.m.Cmp(c.p) == 0 {
		return fmt.Errorf("%w: m must not equal p", ErrInvalidCurve)
	}

	bound := 32
	if c.mode == Mode512 {
		bound = 132
	}
	pModQ := new(big.Int).Mod(c.p, c.q)
	one := big.NewInt(1)
	acc := big.NewInt(1)
	for i := 1; i < bound; i++ {
		acc.Mod(new(big.Int).Mul(acc, pModQ), c.q)
		if acc.Cmp(new(big.Int).Mod(one, c.q)) == 0 {
			return fmt.Errorf("%w: embedding-degree check failed at i=%d", ErrInvalidCurve, i)
		}
	}

	lowBits, highBits := 254, 256
	if c.mode == Mode512 {
		lowBits, highBits = 508, 512
	}
	low := new(big.Int).Lsh(one, uint(lowBits))
	high := new(big.Int).Lsh(one, uint(highBits))
	if c.q.Cmp(low) < 0 || c.q.Cmp(high) >= 0 {
		return fmt.Errorf("%w: q out of the required bit-length range", ErrInvalidCurve)
	}

	lhs := new(big.Int).Mul(c.gy, c.gy)
	lhs.Mod(lhs, c.p)
	rhs := new(big.Int).Exp(c.gx, big.NewInt(3), c.p)
	rhs.Add(rhs, new(big.Int).Mul(c.gx, c.a))
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)
	if lhs.Cmp(rhs) != 0 {
		return fmt.Errorf("%w: base point is not on the curve", ErrInvalidCurve)
	}
	return nil
}

// edwardsToCanonical converts a twisted-Edwards parameter set to the
// canonical short-Weierstrass form, per §4.3.1.
func edwardsToCanonical(p, e, d, u, v *big.Int) (a, b, x, y *big.Int, err error) {
	inv4, err := invert(big.NewInt(4), p)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	inv6, err := invert(big.NewInt(6), p)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	s := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).Sub(e, d), inv4), p)
	t := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).Add(e, d), inv6), p)

	s2 := new(big.Int).Mul(s, s)
	t2 := new(big.Int).Mul(t, t)
	a = new(big.Int).Mod(new(big.Int).Sub(s2, new(big.Int).Mul(big.NewInt(3), t2)), p)

	t3 := new(big.Int).Mul(t2, t)
	b = new(big.Int).Mod(new(big.Int).Sub(new(big.Int).Mul(big.NewInt(2), t3), new(big.Int).Mul(t, s2)), p)

	onePlusV := new(big.Int).Add(big.NewInt(1), v)
	oneMinusV := new(big.Int).Mod(new(big.Int).Sub(big.NewInt(1), v), p)
	invOneMinusV, err := invert(oneMinusV, p)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	x = new(big.Int).Mod(new(big.Int).Add(new(big.Int).Mul(new(big.Int).Mul(s, onePlusV), invOneMinusV), t), p)

	uTimesOneMinusV := new(big.Int).Mod(new(big.Int).Mul(oneMinusV, u), p)
	invUTimesOneMinusV, err := invert(uTimesOneMinusV, p)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	y = new(big.Int).Mod(new(big.Int).Mul(new(big.Int).Mul(s, onePlusV), invUTimesOneMinusV), p)

	return a, b, x, y, nil
}

// invert returns a^-1 mod n via math/big's extended-Euclid implementation,
// normalized into [0, n).
func invert(a, n *big.Int) (*big.Int, error) {
	r := new(big.Int).ModInverse(a, n)
	if r == nil {
		return nil, fmt.Errorf("%w: value has no inverse modulo the given modulus", ErrInvalidCurve)
	}
	return r, nil
}
