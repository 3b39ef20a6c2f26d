// Package field implements arithmetic over prime fields of arbitrary size.
//
// An Element is an immutable value in [0, p) tagged with its modulus p. All
// arithmetic returns new elements. Combining elements of different fields is a
// programmer error and panics, the same way math/big panics on division by
// zero; the curve and signature layers validate moduli at their boundaries so
// these panics are not reachable through their public APIs.
package field

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/modarith"
)

var (
	// ErrOutOfRange is returned when constructing an element whose value is
	// negative or not smaller than the modulus.
	ErrOutOfRange = errors.New("field: value not in field range")

	// ErrInvalidModulus is returned for moduli smaller than 2.
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")

	// ErrModulusMismatch is the panic value used when two elements from
	// different fields are combined.
	ErrModulusMismatch = errors.New("field: elements belong to different fields")

	// ErrDivisionByZero is the panic value used when dividing by, or
	// inverting, the additive identity.
	ErrDivisionByZero = errors.New("field: division by zero")

	one = big.NewInt(1)
	two = big.NewInt(2)
)

// hexWidth is the minimum number of hex digits used when formatting values.
const hexWidth = 64

// Element is a member of the prime field of integers modulo Modulus().
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns the element value of the field of integers modulo modulus.
// The value must already be reduced: New never silently wraps.
func New(value, modulus *big.Int) (*Element, error) {
	if modulus == nil || modulus.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "num %v not in field range 0 to %v",
			value, modulus)
	}
	return &Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// MustNew is like New but panics on error. It is intended for constants.
func MustNew(value, modulus *big.Int) *Element {
	e, err := New(value, modulus)
	if err != nil {
		panic(err)
	}
	return e
}

// NewFromInt64 is a convenience wrapper around New for small values.
func NewFromInt64(value int64, modulus *big.Int) (*Element, error) {
	return New(big.NewInt(value), modulus)
}

// Reduce returns value mod modulus as an element. Unlike New it accepts any
// integer, including negative ones.
func Reduce(value, modulus *big.Int) (*Element, error) {
	if modulus == nil || modulus.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}
	return newUnchecked(modarith.Mod(value, modulus), new(big.Int).Set(modulus)), nil
}

// Zero returns the additive identity of the field.
func Zero(modulus *big.Int) *Element {
	return MustNew(new(big.Int), modulus)
}

// One returns the multiplicative identity of the field.
func One(modulus *big.Int) *Element {
	return MustNew(big.NewInt(1), modulus)
}

// newUnchecked wraps an already reduced value. The modulus is shared, which is
// safe since elements never mutate it.
func newUnchecked(value, modulus *big.Int) *Element {
	return &Element{value: value, modulus: modulus}
}

// Value returns a copy of the element's integer value.
func (e *Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e *Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// SameField reports whether e and other share a modulus.
func (e *Element) SameField(other *Element) bool {
	return e.modulus.Cmp(other.modulus) == 0
}

func (e *Element) mustSameField(other *Element, op string) {
	if !e.SameField(other) {
		panic(errors.Wrapf(ErrModulusMismatch, "cannot %s %v and %v", op,
			e.GoString(), other.GoString()))
	}
}

// Equal reports whether both elements have the same value and modulus.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value.Cmp(other.value) == 0 && e.SameField(other)
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// Add returns e + other.
func (e *Element) Add(other *Element) *Element {
	e.mustSameField(other, "add")
	return newUnchecked(modarith.AddMod(e.value, other.value, e.modulus), e.modulus)
}

// Sub returns e - other.
func (e *Element) Sub(other *Element) *Element {
	e.mustSameField(other, "subtract")
	return newUnchecked(modarith.SubMod(e.value, other.value, e.modulus), e.modulus)
}

// Mul returns e * other.
func (e *Element) Mul(other *Element) *Element {
	e.mustSameField(other, "multiply")
	return newUnchecked(modarith.MulMod(e.value, other.value, e.modulus), e.modulus)
}

// MulInt returns e * c for a plain integer coefficient c.
func (e *Element) MulInt(c int64) *Element {
	return newUnchecked(modarith.MulMod(e.value, big.NewInt(c), e.modulus), e.modulus)
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return newUnchecked(modarith.Mod(new(big.Int).Neg(e.value), e.modulus), e.modulus)
}

// Square returns e * e.
func (e *Element) Square() *Element {
	return e.Mul(e)
}

// Pow returns e^exponent. The exponent is first reduced modulo (p - 1) with
// Euclidean remainder, which relies on p being prime. Negative exponents are
// therefore accepted and yield powers of the inverse.
func (e *Element) Pow(exponent *big.Int) *Element {
	order := new(big.Int).Sub(e.modulus, one)
	n := modarith.Mod(exponent, order)
	return newUnchecked(modarith.ModExp(e.value, n, e.modulus), e.modulus)
}

// PowInt is Pow for small exponents.
func (e *Element) PowInt(exponent int64) *Element {
	return e.Pow(big.NewInt(exponent))
}

// Inverse returns e^(p-2), the multiplicative inverse of e. It panics with
// ErrDivisionByZero when e is zero.
func (e *Element) Inverse() *Element {
	if e.IsZero() {
		panic(ErrDivisionByZero)
	}
	exp := new(big.Int).Sub(e.modulus, two)
	return newUnchecked(modarith.ModExp(e.value, exp, e.modulus), e.modulus)
}

// Div returns e / other, computed as e * other^(p-2). Dividing by zero panics
// with ErrDivisionByZero.
func (e *Element) Div(other *Element) *Element {
	e.mustSameField(other, "divide")
	return e.Mul(other.Inverse())
}

// Bytes returns the value as a big-endian byte slice as wide as the modulus.
func (e *Element) Bytes() []byte {
	return e.value.FillBytes(make([]byte, (e.modulus.BitLen()+7)/8))
}

// String returns the value as zero-padded hex, at least 64 digits wide.
func (e *Element) String() string {
	width := hexWidth
	if w := (e.modulus.BitLen() + 3) / 4; w > width {
		width = w
	}
	return fmt.Sprintf("%0*x", width, e.value)
}

// GoString includes the modulus so that values from different fields are
// distinguishable in diagnostics.
func (e *Element) GoString() string {
	return fmt.Sprintf("FieldElement_%v(%s)", e.modulus, e.String())
}
