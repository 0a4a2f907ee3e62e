// Package streebog implements the GOST R 34.11-2012 hash function
// ("Streebog") in its 256-bit and 512-bit variants. Hasher satisfies
// hash.Hash, so it composes with crypto/hmac and io.MultiWriter like any
// other standard-library hash.
package streebog

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/tc26/gogost/internal/gostlog"
)

// Variant names the two digest sizes this package supports.
type Variant int

const (
	// S256 produces a 32-byte digest.
	S256 Variant = iota
	// S512 produces a 64-byte digest.
	S512
)

// ErrUnsupportedAlgorithm is returned by New for an unrecognized name.
var ErrUnsupportedAlgorithm = errors.New("streebog: unsupported hash name")

var log = gostlog.Default().ForStreebog()

// Hasher computes a Streebog digest incrementally. The zero value is not
// usable; construct one with New, New256, or New512. A Hasher is not safe
// for concurrent Write/Sum calls, matching hash.Hash's own convention.
type Hasher struct {
	variant Variant
	h       [blockSize]byte
	n       [blockSize]byte
	sigma   [blockSize]byte
	buff    []byte
}

var (
	_ hash.Hash = (*Hasher)(nil)
)

// New constructs a Hasher for the named algorithm: "streebog256" or
// "streebog512".
func New(name string) (*Hasher, error) {
	switch name {
	case "streebog256":
		return New256(), nil
	case "streebog512":
		return New512(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// New256 constructs a Hasher producing 32-byte digests.
func New256() *Hasher {
	h := &Hasher{variant: S256}
	h.Reset()
	return h
}

// New512 constructs a Hasher producing 64-byte digests.
func New512() *Hasher {
	h := &Hasher{variant: S512}
	h.Reset()
	return h
}

// Write implements hash.Hash / io.Writer. It never returns an error;
// the signature exists to satisfy the interface.
func (h *Hasher) Write(data []byte) (int, error) {
	n := len(data)
	buf := append(h.buff, data...)
	full := len(buf) / blockSize
	for i := 0; i < full; i++ {
		var block [blockSize]byte
		copy(block[:], buf[i*blockSize:(i+1)*blockSize])
		h.h = compressG(h.h, h.n, block)
		h.n = add512(h.n, v512)
		h.sigma = add512(h.sigma, block)
	}
	h.buff = append([]byte(nil), buf[full*blockSize:]...)
	return n, nil
}

// Size implements hash.Hash: the digest length in bytes (32 or 64).
func (h *Hasher) Size() int {
	if h.variant == S256 {
		return 32
	}
	return 64
}

// BlockSize implements hash.Hash: the internal block size, always 64.
func (h *Hasher) BlockSize() int {
	return blockSize
}

// Sum implements hash.Hash: it appends the current digest to b without
// mutating the receiver's incremental state, matching the "non-destructive
// digest via clone" contract.
func (h *Hasher) Sum(b []byte) []byte {
	clone := h.Clone()
	clone.finalize()
	digest := clone.h[blockSize-clone.Size():]
	return append(b, digest...)
}

// Hexdigest returns the current digest as a lowercase hex string.
func (h *Hasher) Hexdigest() string {
	return hex.EncodeToString(h.Sum(nil))
}

// Name returns "streebog256" or "streebog512".
func (h *Hasher) Name() string {
	if h.variant == S256 {
		return "streebog256"
	}
	return "streebog512"
}

// Clone returns a deep copy of h; mutating the clone does not affect h.
func (h *Hasher) Clone() *Hasher {
	clone := &Hasher{variant: h.variant, h: h.h, n: h.n, sigma: h.sigma}
	clone.buff = append([]byte(nil), h.buff...)
	return clone
}

// Reset implements hash.Hash: it restores construction-time state.
func (h *Hasher) Reset() {
	h.n = v0
	h.sigma = v0
	h.buff = nil
	if h.variant == S256 {
		for i := range h.h {
			h.h[i] = 0x01
		}
	} else {
		h.h = v0
	}
	log.Debug("reset", "name", h.Name())
}

// finalize mutates h in place to fold in padding and length, per
// GOST R 34.11-2012 §7. Callers that must preserve incremental state
// (Sum) operate on a Clone.
func (h *Hasher) finalize() {
	r := len(h.buff)
	bitLen := uint64(r) * 8

	var bitLenBlock [blockSize]byte
	bitLenBlock[0] = byte(bitLen)
	bitLenBlock[1] = byte(bitLen >> 8)

	var padded [blockSize]byte
	copy(padded[:], h.buff)
	padded[r] = 0x01

	h.h = compressG(h.h, h.n, padded)
	h.n = add512(h.n, bitLenBlock)
	h.sigma = add512(h.sigma, padded)
	h.h = compressG(h.h, v0, h.n)
	h.h = compressG(h.h, v0, h.sigma)
}
