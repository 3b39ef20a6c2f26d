package curves

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/modarith"
)

// Params are the domain parameters of a cyclic subgroup: the curve, its
// generator G and the prime order N of G. Params are immutable; N and
// HalfOrder return copies.
type Params struct {
	name  string
	curve *Curve
	g     *Point
	n     *big.Int
	halfN *big.Int
}

// NewParams builds a parameter set from plain integers. It validates that G
// lies on the curve; it does not attempt to prove that N is G's order.
func NewParams(name string, p, a, b, gx, gy, n *big.Int) (*Params, error) {
	fa, err := field.New(a, p)
	if err != nil {
		return nil, errors.Wrap(err, "coefficient a")
	}
	fb, err := field.New(b, p)
	if err != nil {
		return nil, errors.Wrap(err, "coefficient b")
	}
	curve, err := NewCurve(fa, fb)
	if err != nil {
		return nil, err
	}
	g, err := curve.NewPointFromInts(gx, gy)
	if err != nil {
		return nil, errors.Wrap(err, "generator")
	}
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrap(ErrInvalidParams, "group order must be at least 2")
	}
	return &Params{
		name:  name,
		curve: curve,
		g:     g,
		n:     new(big.Int).Set(n),
		halfN: new(big.Int).Rsh(n, 1),
	}, nil
}

// Name returns the name the parameter set was created with.
func (p *Params) Name() string { return p.name }

// Curve returns the curve the group lives on.
func (p *Params) Curve() *Curve { return p.curve }

// G returns the generator.
func (p *Params) G() *Point { return p.g }

// N returns a copy of the group order.
func (p *Params) N() *big.Int {
	return new(big.Int).Set(p.n)
}

// HalfOrder returns floor(N / 2).
func (p *Params) HalfOrder() *big.Int {
	return new(big.Int).Set(p.halfN)
}

// BitSize returns the bit length of the group order.
func (p *Params) BitSize() int {
	return p.n.BitLen()
}

// IsOnCurve reports whether the integer pair (x, y) is a point on the curve.
func (p *Params) IsOnCurve(x, y *big.Int) bool {
	_, err := p.curve.NewPointFromInts(x, y)
	return err == nil
}

// ScalarMult returns k*pt after reducing k modulo N. Because G generates a
// group of order N, scalars congruent mod N give the same point, and the
// reduction also makes negative scalars meaningful.
func (p *Params) ScalarMult(pt *Point, k *big.Int) (*Point, error) {
	if !pt.Curve().Equal(p.curve) {
		return nil, ErrCurveMismatch
	}
	return pt.ScalarMult(modarith.Mod(k, p.n))
}

// ScalarBaseMult returns k*G.
func (p *Params) ScalarBaseMult(k *big.Int) (*Point, error) {
	return p.ScalarMult(p.g, k)
}

// secp256k1 domain parameters, see https://www.secg.org/sec2-v2.pdf.
const (
	secp256k1Gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	secp256k1Gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	secp256k1N  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

var (
	secp256k1Once   sync.Once
	secp256k1Params *Params
)

func initSecp256k1() {
	// p = 2^256 - 2^32 - 977
	prime := new(big.Int).Lsh(big.NewInt(1), 256)
	prime.Sub(prime, new(big.Int).Lsh(big.NewInt(1), 32))
	prime.Sub(prime, big.NewInt(977))

	gx, _ := new(big.Int).SetString(secp256k1Gx, 16)
	gy, _ := new(big.Int).SetString(secp256k1Gy, 16)
	n, _ := new(big.Int).SetString(secp256k1N, 16)

	params, err := NewParams("secp256k1", prime, big.NewInt(0), big.NewInt(7), gx, gy, n)
	if err != nil {
		panic(err)
	}
	secp256k1Params = params
}

// Secp256k1 returns the secp256k1 domain parameters. They are computed once
// and shared by every caller.
func Secp256k1() *Params {
	secp256k1Once.Do(initSecp256k1)
	return secp256k1Params
}
