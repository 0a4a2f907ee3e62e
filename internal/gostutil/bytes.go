// Package gostutil provides the byte and integer primitives shared by the
// streebog and gost3410 packages: XOR, big-endian integer conversion,
// fixed-width equality, and buffer wiping.
package gostutil

import (
	"crypto/subtle"
	"fmt"
	"math/big"
	"runtime"
)

// XOR returns the bytewise XOR of a and b. It returns an error if the two
// slices differ in length.
func XOR(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("gostutil: XOR operands have different lengths (%d != %d)", len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// BEBytesToUint converts a big-endian byte slice to an unsigned integer.
func BEBytesToUint(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// UintToBEBytes encodes n as a big-endian, zero-padded byte slice of the
// given width. It returns an error if n does not fit in width bytes or is
// negative.
func UintToBEBytes(n *big.Int, width int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("gostutil: cannot encode negative integer %s", n.String())
	}
	raw := n.Bytes()
	if len(raw) > width {
		return nil, fmt.Errorf("gostutil: integer does not fit in %d bytes", width)
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}

// EqualBytes reports whether a and b hold the same bytes. Both slices must
// be the same length; comparison runs in constant time with respect to the
// byte contents (crypto/subtle), since callers use this for signature and
// MAC comparisons.
func EqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// IsZeroBytes reports whether b consists entirely of zero bytes (or is
// empty).
func IsZeroBytes(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// Wipe overwrites b with zeros. runtime.KeepAlive prevents the compiler
// from eliding the write as a dead store once b is no longer read.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
