package gost3410

import "math/big"

// Point is an affine point on a Curve's short-Weierstrass curve. The
// point at infinity is never represented; operations that would produce
// it return ErrPointAtInfinity instead.
type Point struct {
	X, Y *big.Int
}

// add computes p1 + p2 on the curve y^2 = x^3 + a*x + b (mod p), per
// §4.3.2. When p1 == p2 it takes the tangent-line (doubling) branch.
func (c *Curve) add(p1, p2 *Point) (*Point, error) {
	sameX := p1.X.Cmp(p2.X) == 0
	sameY := p1.Y.Cmp(p2.Y) == 0

	var lambda *big.Int
	if sameX && sameY {
		num := new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(p1.X, p1.X))
		num.Add(num, c.a)
		denom, err := invert(new(big.Int).Mod(new(big.Int).Mul(big.NewInt(2), p1.Y), c.p), c.p)
		if err != nil {
			return nil, err
		}
		lambda = new(big.Int).Mod(new(big.Int).Mul(num, denom), c.p)
	} else {
		if sameX {
			// x1 == x2 but y1 != y2: since the curve has at most two
			// square roots for a given x, this means y2 == -y1 mod p,
			// i.e. p1 and p2 are inverses and their sum is the point at
			// infinity, which this package does not represent.
			return nil, ErrPointAtInfinity
		}
		dx := new(big.Int).Mod(new(big.Int).Sub(p2.X, p1.X), c.p)
		dy := new(big.Int).Mod(new(big.Int).Sub(p2.Y, p1.Y), c.p)
		invDX, err := invert(dx, c.p)
		if err != nil {
			return nil, err
		}
		lambda = new(big.Int).Mod(new(big.Int).Mul(dy, invDX), c.p)
	}

	x3 := new(big.Int).Mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p1.X), p2.X), c.p)
	y3 := new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p1.X, x3)), p1.Y)
	y3.Mod(y3, c.p)
	return &Point{X: x3, Y: y3}, nil
}

// scalarMul computes k*base (or k*point when point is non-nil), following
// the source's shape: k' = k-1 pre-seeds the accumulator with one copy of
// the base, and every bit iteration doubles the running point regardless
// of the bit value. This is equivalent to ordinary double-and-add; see
// DESIGN.md for why it is kept rather than rewritten to the textbook
// form.
func (c *Curve) scalarMul(k *big.Int, point *Point) (*Point, error) {
	base := point
	if base == nil {
		base = &Point{X: c.gx, Y: c.gy}
	}

	kPrime := new(big.Int).Sub(k, big.NewInt(1))
	next := &Point{X: base.X, Y: base.Y}
	prev := &Point{X: base.X, Y: base.Y}

	for i := 0; i < kPrime.BitLen(); i++ {
		if kPrime.Bit(i) == 1 {
			sum, err := c.add(next, prev)
			if err != nil {
				return nil, err
			}
			next = sum
		}
		doubled, err := c.add(prev, prev)
		if err != nil {
			return nil, err
		}
		prev = doubled
	}
	return next, nil
}
