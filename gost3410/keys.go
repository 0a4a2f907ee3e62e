package gost3410

import (
	"fmt"
	"math/big"

	"github.com/tc26/gogost/internal/gostutil"
)

// PublicKey is a convenience view over the flat x||y public-key byte
// layout, analogous to crypto/ecdsa.PublicKey. It does not introduce a
// new serialization format; Bytes/ParsePublicKey convert to and from the
// wire layout defined in §6.
type PublicKey struct {
	Curve *Curve
	X, Y  *big.Int
}

// ParsePublicKey decodes the flat uint_to_be_bytes(x, size) ||
// uint_to_be_bytes(y, size) layout into a PublicKey.
func ParsePublicKey(curve *Curve, b []byte) (*PublicKey, error) {
	if len(b) != 2*curve.size {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidInput, 2*curve.size, len(b))
	}
	return &PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(b[:curve.size]),
		Y:     new(big.Int).SetBytes(b[curve.size:]),
	}, nil
}

// Bytes encodes the PublicKey back to the flat x||y wire layout.
func (k *PublicKey) Bytes() ([]byte, error) {
	x, err := gostutil.UintToBEBytes(k.X, k.Curve.size)
	if err != nil {
		return nil, err
	}
	y, err := gostutil.UintToBEBytes(k.Y, k.Curve.size)
	if err != nil {
		return nil, err
	}
	return append(x, y...), nil
}

// PrivateKey is a convenience view over the big-endian private-key byte
// layout, analogous to crypto/ecdsa.PrivateKey.
type PrivateKey struct {
	PublicKey
	D *big.Int
}
