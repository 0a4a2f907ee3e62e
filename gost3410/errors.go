// Package gost3410 implements the GOST R 34.10-2012 elliptic-curve
// signature scheme: curve parameter validation, scalar multiplication,
// signature generation, verification, and public-key derivation.
package gost3410

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) to attach
// detail while remaining errors.Is-compatible with these kinds.
var (
	// ErrUnsupportedAlgorithm reports an unrecognized curve mode.
	ErrUnsupportedAlgorithm = errors.New("gost3410: unsupported mode")
	// ErrInvalidInput reports malformed caller-supplied data: wrong-size
	// keys, wrong-size rand_k, wrong-size signatures.
	ErrInvalidInput = errors.New("gost3410: invalid input")
	// ErrInvalidCurve reports a curve-construction invariant violation.
	ErrInvalidCurve = errors.New("gost3410: invalid curve parameters")
	// ErrPointAtInfinity reports that an elliptic-curve operation would
	// have produced the point at infinity, which this package never
	// represents.
	ErrPointAtInfinity = errors.New("gost3410: operation produced the point at infinity")
)
