package gost3410

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/tc26/gogost/internal/gostutil"
)

// signOptions carries the optional knobs accepted by Sign.
type signOptions struct {
	randK []byte
}

// SignOption configures a single Sign call.
type SignOption func(*signOptions)

// WithRandK supplies a fixed size-wide k value instead of drawing one
// from the random source, for deterministic/known-answer testing.
func WithRandK(k []byte) SignOption {
	return func(o *signOptions) { o.randK = k }
}

// Size returns the key/signature-component width in bytes: 32 for
// Mode256, 64 for Mode512.
func (c *Curve) Size() int {
	return c.size
}

// Sign computes a GOST R 34.10-2012 signature over digest using priv, per
// §4.3.3. rnd is the CSPRNG collaborator; if nil, crypto/rand.Reader is
// used, matching crypto/ecdsa.Sign's own shape. priv is wiped before
// Sign returns, on every exit path.
func (c *Curve) Sign(rnd io.Reader, priv []byte, digest []byte, opts ...SignOption) ([]byte, error) {
	defer gostutil.Wipe(priv)

	if rnd == nil {
		rnd = rand.Reader
	}
	if len(priv) != c.size {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidInput, c.size, len(priv))
	}
	var opt signOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.randK != nil && len(opt.randK) != c.size {
		return nil, fmt.Errorf("%w: rand_k must be %d bytes, got %d", ErrInvalidInput, c.size, len(opt.randK))
	}

	e := new(big.Int).Mod(gostutil.BEBytesToUint(digest), c.q)
	if e.Sign() == 0 {
		e = big.NewInt(1)
	}
	d := gostutil.BEBytesToUint(priv)

	var r, s *big.Int
	for s == nil || s.Sign() == 0 {
		r = big.NewInt(0)
		var k *big.Int
		for r.Sign() == 0 {
			var kBytes []byte
			if opt.randK != nil {
				kBytes = opt.randK
			} else {
				buf := make([]byte, c.size)
				for {
					if _, err := io.ReadFull(rnd, buf); err != nil {
						return nil, fmt.Errorf("%w: reading random bytes: %v", ErrInvalidInput, err)
					}
					cand := gostutil.BEBytesToUint(buf)
					if cand.Cmp(c.q) < 0 {
						break
					}
				}
				kBytes = buf
			}
			k = gostutil.BEBytesToUint(kBytes)
			point, err := c.scalarMul(k, nil)
			if err != nil {
				return nil, err
			}
			r = new(big.Int).Mod(point.X, c.q)
			if opt.randK != nil && r.Sign() == 0 {
				return nil, fmt.Errorf("%w: supplied rand_k produced r = 0", ErrInvalidInput)
			}
		}
		s = new(big.Int).Mul(r, d)
		s.Add(s, new(big.Int).Mul(k, e))
		s.Mod(s, c.q)
	}

	rBytes, err := gostutil.UintToBEBytes(r, c.size)
	if err != nil {
		return nil, err
	}
	sBytes, err := gostutil.UintToBEBytes(s, c.size)
	if err != nil {
		return nil, err
	}
	return append(rBytes, sBytes...), nil
}

// Verify checks sig against digest and pub, per §4.3.4.
func (c *Curve) Verify(pub []byte, digest []byte, sig []byte) (bool, error) {
	if len(sig) != 2*c.size {
		return false, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrInvalidInput, 2*c.size, len(sig))
	}
	if len(pub) != 2*c.size {
		return false, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidInput, 2*c.size, len(pub))
	}
	qx := gostutil.BEBytesToUint(pub[:c.size])
	qy := gostutil.BEBytesToUint(pub[c.size:])
	r := gostutil.BEBytesToUint(sig[:c.size])
	s := gostutil.BEBytesToUint(sig[c.size:])

	zero := big.NewInt(0)
	if r.Cmp(zero) <= 0 || r.Cmp(c.q) >= 0 || s.Cmp(zero) <= 0 || s.Cmp(c.q) >= 0 {
		return false, nil
	}

	e := new(big.Int).Mod(gostutil.BEBytesToUint(digest), c.q)
	if e.Sign() == 0 {
		e = big.NewInt(1)
	}
	v, err := invert(e, c.q)
	if err != nil {
		return false, err
	}
	z1 := new(big.Int).Mod(new(big.Int).Mul(s, v), c.q)
	z2 := new(big.Int).Mod(new(big.Int).Mul(r, v), c.q)
	z2 = new(big.Int).Mod(new(big.Int).Sub(c.q, z2), c.q)

	p, err := c.scalarMul(z1, nil)
	if err != nil {
		return false, err
	}
	q, err := c.scalarMul(z2, &Point{X: qx, Y: qy})
	if err != nil {
		return false, err
	}
	sum, err := c.add(p, q)
	if err != nil {
		return false, err
	}
	rCheck := new(big.Int).Mod(sum.X, c.q)

	rCheckBytes, err := gostutil.UintToBEBytes(rCheck, c.size)
	if err != nil {
		return false, err
	}
	rBytes, err := gostutil.UintToBEBytes(r, c.size)
	if err != nil {
		return false, err
	}
	return gostutil.EqualBytes(rCheckBytes, rBytes), nil
}

// PublicKeyGenerate derives the public key for priv, per §4.3.5. priv is
// wiped before PublicKeyGenerate returns, on every exit path.
func (c *Curve) PublicKeyGenerate(priv []byte) ([]byte, error) {
	defer gostutil.Wipe(priv)

	if len(priv) != c.size {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidInput, c.size, len(priv))
	}
	d := gostutil.BEBytesToUint(priv)
	point, err := c.scalarMul(d, nil)
	if err != nil {
		return nil, err
	}
	x, err := gostutil.UintToBEBytes(point.X, c.size)
	if err != nil {
		return nil, err
	}
	y, err := gostutil.UintToBEBytes(point.Y, c.size)
	if err != nil {
		return nil, err
	}
	return append(x, y...), nil
}
