package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

// Errors returned by curve and point construction and by the group law.
var (
	ErrFieldMismatch   = errors.New("curves: values belong to different fields")
	ErrInvalidPoint    = errors.New("curves: point must have both coordinates or neither")
	ErrPointNotOnCurve = errors.New("curves: point is not on the curve")
	ErrCurveMismatch   = errors.New("curves: points are not on the same curve")
	ErrNegativeScalar  = errors.New("curves: scalar must be non-negative")
	ErrInvalidParams   = errors.New("curves: invalid domain parameters")

	// ErrUnreachable signals an input combination the group law cannot
	// produce for points that satisfy the curve equation.
	ErrUnreachable = errors.New("curves: internal consistency error")
)

// Curve is the short Weierstrass curve y^2 = x^3 + a*x + b over the prime
// field shared by its coefficients.
type Curve struct {
	a, b *field.Element
}

// NewCurve returns the curve with coefficients a and b. Both must belong to
// the same field.
func NewCurve(a, b *field.Element) (*Curve, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrInvalidParams, "missing curve coefficient")
	}
	if !a.SameField(b) {
		return nil, ErrFieldMismatch
	}
	return &Curve{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (c *Curve) A() *field.Element { return c.a }

// B returns the constant coefficient.
func (c *Curve) B() *field.Element { return c.b }

// Prime returns the modulus of the field the curve is defined over.
func (c *Curve) Prime() *big.Int { return c.a.Modulus() }

// Equal reports whether both curves have identical coefficients.
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.a.Equal(other.a) && c.b.Equal(other.b)
}

// Infinity returns the point at infinity, the identity of the group.
func (c *Curve) Infinity() *Point {
	return &Point{curve: c}
}

// rhs evaluates x^3 + a*x + b.
func (c *Curve) rhs(x *field.Element) *field.Element {
	return x.PowInt(3).Add(x.Mul(c.a)).Add(c.b)
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. Coordinates
// from another field are never on the curve.
func (c *Curve) IsOnCurve(x, y *field.Element) bool {
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return false
	}
	return y.Square().Equal(c.rhs(x))
}

// NewPoint returns the point (x, y) on the curve. Passing nil for both
// coordinates yields the point at infinity.
func (c *Curve) NewPoint(x, y *field.Element) (*Point, error) {
	if x == nil && y == nil {
		return c.Infinity(), nil
	}
	if x == nil || y == nil {
		return nil, ErrInvalidPoint
	}
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return nil, ErrFieldMismatch
	}
	if !y.Square().Equal(c.rhs(x)) {
		return nil, errors.Wrapf(ErrPointNotOnCurve, "(%s, %s)", x, y)
	}
	return &Point{x: x, y: y, curve: c}, nil
}

// NewPointFromInts is NewPoint for plain integer coordinates, which must
// already be reduced into the curve field.
func (c *Curve) NewPointFromInts(x, y *big.Int) (*Point, error) {
	p := c.Prime()
	fx, err := field.New(x, p)
	if err != nil {
		return nil, errors.Wrap(err, "x coordinate")
	}
	fy, err := field.New(y, p)
	if err != nil {
		return nil, errors.Wrap(err, "y coordinate")
	}
	return c.NewPoint(fx, fy)
}

// derivedPoint builds a group law result. The curve equation is checked
// again so that an arithmetic fault surfaces as an error instead of a bogus
// point.
func (c *Curve) derivedPoint(x, y *field.Element) (*Point, error) {
	p, err := c.NewPoint(x, y)
	if err != nil {
		return nil, errors.Wrap(ErrUnreachable, err.Error())
	}
	return p, nil
}
