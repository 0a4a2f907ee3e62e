package gost3410

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex literal %q: %v", s, err)
	}
	return b
}

// exampleCurve returns the 256-bit test curve of the GOST R 34.10-2012
// worked example, the curve on which the known-answer private key, public
// key, digest and signature below belong together.
func exampleCurve(t *testing.T) *Curve {
	t.Helper()
	hx := func(s string) *big.Int {
		n, _ := new(big.Int).SetString(s, 16)
		return n
	}
	c, err := NewCurve(Mode256, Params{
		P: hx("8000000000000000000000000000000000000000000000000000000000000431"),
		A: big.NewInt(7),
		B: hx("5fbff498aa938ce739b8e022fbafef40563f6e6a3472fc2a514c0ce9dae23b7e"),
		M: hx("8000000000000000000000000000000150fe8a1892976154c59cfc193accf5b3"),
		Q: hx("8000000000000000000000000000000150fe8a1892976154c59cfc193accf5b3"),
		X: big.NewInt(2),
		Y: hx("08e2a8a0e65147d4bd6316030e16d19c85c97f0a9ca267122b96abbcea7e8fc8"),
	})
	if err != nil {
		t.Fatalf("NewCurve(example curve) failed: %v", err)
	}
	return c
}

// TestVerifyKnownAnswer checks verify against the GOST R 34.10-2012 worked
// example on its own test curve: private key, digest, public key, and
// signature.
func TestVerifyKnownAnswer(t *testing.T) {
	c := exampleCurve(t)
	pub := fromHex(t, "7f2b49e270db6d90d8595bec458b50c58585ba1d4e9b788f6689dbd8e56fd80b"+
		"26f1b489d6701dd185c8413a977b3cbbaf64d1c593d26627dffb101a87ff77da")
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")
	sig := fromHex(t, "41aa28d2f1ab148280cd9ed56feda41974053554a42767b83ad043fd39dc0493"+
		"01456c64ba4642a1653c235a98a60249bcd6d3f746b631df928014f6c5bf9c40")

	ok, err := c.Verify(pub, digest, sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if !ok {
		t.Error("Verify should accept the known-answer signature")
	}
}

// TestPublicKeyGenerateKnownAnswer derives the public key for the same
// worked example and checks it against the published value.
func TestPublicKeyGenerateKnownAnswer(t *testing.T) {
	c := exampleCurve(t)
	priv := fromHex(t, "7a929ade789bb9be10ed359dd39a72c11b60961f49397eee1d19ce9891ec3b28")
	want := fromHex(t, "7f2b49e270db6d90d8595bec458b50c58585ba1d4e9b788f6689dbd8e56fd80b"+
		"26f1b489d6701dd185c8413a977b3cbbaf64d1c593d26627dffb101a87ff77da")

	got, err := c.PublicKeyGenerate(priv)
	if err != nil {
		t.Fatalf("PublicKeyGenerate failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("PublicKeyGenerate = %x, want %x", got, want)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c := exampleCurve(t)
	priv := fromHex(t, "7a929ade789bb9be10ed359dd39a72c11b60961f49397eee1d19ce9891ec3b28")
	pub := fromHex(t, "7f2b49e270db6d90d8595bec458b50c58585ba1d4e9b788f6689dbd8e56fd80b"+
		"26f1b489d6701dd185c8413a977b3cbbaf64d1c593d26627dffb101a87ff77da")
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")

	privCopy := append([]byte(nil), priv...)
	sig, err := c.Sign(rand.Reader, privCopy, digest)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	ok, err := c.Verify(pub, digest, sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if !ok {
		t.Error("Verify should accept a signature produced by Sign over the same key/digest")
	}
}

func TestSignWipesPrivateKey(t *testing.T) {
	c := mustCurve(t)
	priv := fromHex(t, "7a929ade789bb9be10ed359dd39a72c11b60961f49397eee1d19ce9891ec3b28")
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")

	if _, err := c.Sign(rand.Reader, priv, digest); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	for _, b := range priv {
		if b != 0 {
			t.Fatal("Sign should wipe the private-key buffer before returning")
		}
	}
}

func TestSignDeterministicUnderFixedRandK(t *testing.T) {
	c := mustCurve(t)
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")
	k := make([]byte, 32)
	k[31] = 2

	priv1 := fromHex(t, "7a929ade789bb9be10ed359dd39a72c11b60961f49397eee1d19ce9891ec3b28")
	priv2 := append([]byte(nil), priv1...)

	sig1, err := c.Sign(nil, priv1, digest, WithRandK(k))
	if err != nil {
		t.Fatalf("Sign with fixed rand_k failed: %v", err)
	}
	sig2, err := c.Sign(nil, priv2, digest, WithRandK(k))
	if err != nil {
		t.Fatalf("Sign with fixed rand_k failed: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Error("Sign should be deterministic for a fixed rand_k")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	c := exampleCurve(t)
	pub := fromHex(t, "7f2b49e270db6d90d8595bec458b50c58585ba1d4e9b788f6689dbd8e56fd80b"+
		"26f1b489d6701dd185c8413a977b3cbbaf64d1c593d26627dffb101a87ff77da")
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")
	sig := fromHex(t, "41aa28d2f1ab148280cd9ed56feda41974053554a42767b83ad043fd39dc0493"+
		"01456c64ba4642a1653c235a98a60249bcd6d3f746b631df928014f6c5bf9c40")

	tampered := append([]byte(nil), sig...)
	tampered[0] ^= 0x01
	ok, err := c.Verify(pub, digest, tampered)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if ok {
		t.Error("Verify should reject a tampered signature")
	}

	tamperedDigest := append([]byte(nil), digest...)
	tamperedDigest[0] ^= 0x01
	ok, err = c.Verify(pub, tamperedDigest, sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if ok {
		t.Error("Verify should reject a tampered digest")
	}

	tamperedPub := append([]byte(nil), pub...)
	tamperedPub[0] ^= 0x01
	ok, err = c.Verify(tamperedPub, digest, sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if ok {
		t.Error("Verify should reject a tampered public key")
	}
}

func TestVerifyRejectsWrongLengthSignature(t *testing.T) {
	c := mustCurve(t)
	pub := fromHex(t, "7f2b49e270db6d90d8595bec458b50c58585ba1d4e9b788f6689dbd8e56fd80b"+
		"26f1b489d6701dd185c8413a977b3cbbaf64d1c593d26627dffb101a87ff77da")
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")

	if _, err := c.Verify(pub, digest, []byte{1, 2, 3}); err == nil {
		t.Error("Verify should reject a wrong-length signature")
	}
}

func TestSignRejectsWrongSizePrivateKey(t *testing.T) {
	c := mustCurve(t)
	digest := fromHex(t, "2dfbc1b372d89a1188c09c52e0eec61fce52032ab1022e8e67ece6672b043ee5")
	if _, err := c.Sign(rand.Reader, []byte{1, 2, 3}, digest); err == nil {
		t.Error("Sign should reject a wrong-size private key")
	}
}
