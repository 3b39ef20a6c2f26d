package ecdsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/curves"
)

var one = big.NewInt(1)

// PrivateKey is a secret scalar d in [1, n-1] together with its public point
// d*G.
type PrivateKey struct {
	params *curves.Params
	secret *big.Int
	pub    *PublicKey
}

// NewPrivateKey returns the secp256k1 key for secret.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	return NewPrivateKeyWithParams(curves.Secp256k1(), secret)
}

// NewPrivateKeyWithParams returns the key for secret on the given domain
// parameters. Secrets outside [1, n-1] are rejected with ErrSecretOutOfRange.
func NewPrivateKeyWithParams(params *curves.Params, secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Cmp(one) < 0 || secret.Cmp(params.N()) >= 0 {
		str := fmt.Sprintf("secret must be in [1, n-1] for %s", params.Name())
		return nil, makeError(ErrSecretOutOfRange, str)
	}

	point, err := params.ScalarBaseMult(secret)
	if err != nil {
		return nil, errors.Wrap(err, "deriving public point")
	}
	pub, err := newPublicKey(params, point)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		params: params,
		secret: new(big.Int).Set(secret),
		pub:    pub,
	}, nil
}

// GeneratePrivateKey returns a secp256k1 key with a secret drawn uniformly
// from [1, n-1] using r.
func GeneratePrivateKey(r io.Reader) (*PrivateKey, error) {
	return GeneratePrivateKeyWithParams(curves.Secp256k1(), r)
}

// GeneratePrivateKeyWithParams is GeneratePrivateKey for arbitrary domain
// parameters.
func GeneratePrivateKeyWithParams(params *curves.Params, r io.Reader) (*PrivateKey, error) {
	d, err := rand.Int(r, new(big.Int).Sub(params.N(), one))
	if err != nil {
		return nil, errors.Wrap(err, "reading random secret")
	}
	return NewPrivateKeyWithParams(params, d.Add(d, one))
}

// PrivKeyFromBytes interprets b as a big-endian secp256k1 secret. Inputs
// shorter than 32 bytes are treated as left padded with zeros.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	params := curves.Secp256k1()
	if size := (params.BitSize() + 7) / 8; len(b) > size {
		str := fmt.Sprintf("malformed secret: %d bytes, want at most %d", len(b), size)
		return nil, makeError(ErrInvalidKeyLen, str)
	}
	return NewPrivateKeyWithParams(params, new(big.Int).SetBytes(b))
}

// PubKey returns the public key d*G.
func (k *PrivateKey) PubKey() *PublicKey {
	return k.pub
}

// Secret returns a copy of the secret scalar.
func (k *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(k.secret)
}

// Params returns the domain parameters of the key.
func (k *PrivateKey) Params() *curves.Params {
	return k.params
}

// Serialize returns the secret as a big-endian byte slice as wide as the
// group order.
func (k *PrivateKey) Serialize() []byte {
	return k.secret.FillBytes(make([]byte, (k.params.BitSize()+7)/8))
}

// String identifies the key by its public point. The secret is never
// formatted.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%s)", k.pub)
}

// PublicKey is a point on the curve other than infinity.
type PublicKey struct {
	params *curves.Params
	point  *curves.Point
}

// NewPublicKey returns the secp256k1 public key with affine coordinates
// (x, y).
func NewPublicKey(x, y *big.Int) (*PublicKey, error) {
	return NewPublicKeyWithParams(curves.Secp256k1(), x, y)
}

// NewPublicKeyWithParams returns the public key (x, y) on the given domain
// parameters.
func NewPublicKeyWithParams(params *curves.Params, x, y *big.Int) (*PublicKey, error) {
	if x == nil && y == nil {
		return nil, makeError(ErrPubKeyInfinity, "public key is the point at infinity")
	}
	point, err := params.Curve().NewPointFromInts(x, y)
	if err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, Error{Err: ErrPubKeyNotOnCurve, Description: str}
	}
	return newPublicKey(params, point)
}

func newPublicKey(params *curves.Params, point *curves.Point) (*PublicKey, error) {
	if point.IsInfinity() {
		return nil, makeError(ErrPubKeyInfinity, "public key is the point at infinity")
	}
	return &PublicKey{params: params, point: point}, nil
}

// X returns the affine x coordinate.
func (p *PublicKey) X() *big.Int { return p.point.X().Value() }

// Y returns the affine y coordinate.
func (p *PublicKey) Y() *big.Int { return p.point.Y().Value() }

// Point returns the underlying curve point.
func (p *PublicKey) Point() *curves.Point { return p.point }

// Params returns the domain parameters of the key.
func (p *PublicKey) Params() *curves.Params { return p.params }

// IsEqual reports whether p and other are the same point on the same curve.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return other != nil && p.point.Equal(other.point)
}

func (p *PublicKey) String() string {
	return p.point.String()
}
