package curves

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

// Point is an immutable affine point on a Curve. A point with neither
// coordinate set is the point at infinity.
type Point struct {
	x, y  *field.Element
	curve *Curve
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *Point) X() *field.Element { return p.x }

// Y returns the y coordinate, or nil for the point at infinity.
func (p *Point) Y() *field.Element { return p.y }

// Curve returns the curve the point lies on.
func (p *Point) Curve() *Curve { return p.curve }

// IsInfinity reports whether p is the identity of the group.
func (p *Point) IsInfinity() bool {
	return p.x == nil && p.y == nil
}

// Equal reports whether p and q are the same point on the same curve.
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.curve.Equal(q.curve) && p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p + q using the chord-and-tangent group law.
func (p *Point) Add(q *Point) (*Point, error) {
	// Points on different curves cannot be combined.
	if !p.curve.Equal(q.curve) {
		return nil, ErrCurveMismatch
	}

	// Infinity is the identity.
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	// Vertical line: either the points are reflections of each other, or the
	// tangent at a point with y == 0 is vertical.
	if p.x.Equal(q.x) && !p.y.Equal(q.y) || p.Equal(q) && p.y.IsZero() {
		return p.curve.Infinity(), nil
	}

	x1, y1 := p.x, p.y
	x2, y2 := q.x, q.y

	// Distinct x: slope of the chord through both points.
	if !x1.Equal(x2) {
		s := y2.Sub(y1).Div(x2.Sub(x1))
		x3 := s.Square().Sub(x1).Sub(x2)
		y3 := s.Mul(x1.Sub(x3)).Sub(y1)
		return p.curve.derivedPoint(x3, y3)
	}

	// Same point: slope of the tangent line.
	if p.Equal(q) {
		s := x1.Square().MulInt(3).Add(p.curve.a).Div(y1.MulInt(2))
		x3 := s.Square().Sub(x1.MulInt(2))
		y3 := s.Mul(x1.Sub(x3)).Sub(y1)
		return p.curve.derivedPoint(x3, y3)
	}

	return nil, errors.Wrapf(ErrUnreachable, "cannot add %v and %v", p, q)
}

// Double returns p + p.
func (p *Point) Double() (*Point, error) {
	return p.Add(p)
}

// Neg returns -p, the reflection of p across the x axis.
func (p *Point) Neg() *Point {
	if p.IsInfinity() {
		return p
	}
	return &Point{x: p.x, y: p.y.Neg(), curve: p.curve}
}

// ScalarMult returns k*p using double-and-add, scanning k from the low bit.
// k must be non-negative; k == 0 yields the point at infinity.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, ErrNegativeScalar
	}

	result := p.curve.Infinity()
	base := p
	var err error

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(base); err != nil {
				return nil, err
			}
		}
		// The final doubling would be discarded.
		if i == k.BitLen()-1 {
			break
		}
		if base, err = base.Double(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// String formats the point with fixed-width hex coordinates.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s,%s)", p.x, p.y)
}

// GoString includes the curve coefficients.
func (p *Point) GoString() string {
	if p.IsInfinity() {
		return fmt.Sprintf("Point(infinity)_%#v_%#v", p.curve.a, p.curve.b)
	}
	return fmt.Sprintf("Point(%s,%s)_%#v_%#v", p.x, p.y, p.curve.a, p.curve.b)
}
