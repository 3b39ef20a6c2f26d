// Package modarith holds the exact-precision modular arithmetic used by the
// field, curve and signature layers. Every reduction in this module goes
// through Mod, which always returns a value in [0, m).
package modarith

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrNotInvertible is returned when asked for the inverse of a value that
	// is congruent to zero.
	ErrNotInvertible = errors.New("modarith: value is not invertible")

	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Mod returns the Euclidean remainder x mod m, which is always in [0, m) for
// a positive modulus. It panics if m is not positive.
func Mod(x, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		panic("modarith: modulus must be positive")
	}
	// big.Int.Mod implements Euclidean modulus, unlike Rem.
	return new(big.Int).Mod(x, m)
}

// ModExp computes base^exponent mod modulus using square-and-multiply,
// scanning the exponent from the low bit up.
//
// The exponent must be non-negative; callers are expected to reduce it with
// Mod first. A negative exponent panics.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("modarith: negative exponent")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}

// Inverse returns x^(p-2) mod p, the multiplicative inverse of x modulo the
// prime p (Fermat's little theorem). The result is only meaningful when p is
// prime.
func Inverse(x, p *big.Int) (*big.Int, error) {
	r := Mod(x, p)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	return ModExp(r, new(big.Int).Sub(p, two), p), nil
}

// MulMod returns (a * b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(a, b), m)
}

// AddMod returns (a + b) mod m.
func AddMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Add(a, b), m)
}

// SubMod returns (a - b) mod m.
func SubMod(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(a, b), m)
}
