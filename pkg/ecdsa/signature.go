package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

// Signature is an ECDSA signature. R and S are kept as elements of the field
// of integers modulo the group order n.
type Signature struct {
	r *field.Element
	s *field.Element
}

// NewSignature returns the secp256k1 signature (r, s). Both values must be in
// [1, n-1].
func NewSignature(r, s *big.Int) (*Signature, error) {
	return NewSignatureWithParams(curves.Secp256k1(), r, s)
}

// NewSignatureWithParams is NewSignature for arbitrary domain parameters.
func NewSignatureWithParams(params *curves.Params, r, s *big.Int) (*Signature, error) {
	n := params.N()
	switch {
	case r == nil || r.Sign() <= 0:
		return nil, makeError(ErrSigRIsZero, "signature R is zero or negative")
	case r.Cmp(n) >= 0:
		return nil, makeError(ErrSigRTooBig, "signature R is >= group order")
	case s == nil || s.Sign() <= 0:
		return nil, makeError(ErrSigSIsZero, "signature S is zero or negative")
	case s.Cmp(n) >= 0:
		return nil, makeError(ErrSigSTooBig, "signature S is >= group order")
	}
	return &Signature{
		r: field.MustNew(r, n),
		s: field.MustNew(s, n),
	}, nil
}

// R returns a copy of the r value.
func (sig *Signature) R() *big.Int { return sig.r.Value() }

// S returns a copy of the s value.
func (sig *Signature) S() *big.Int { return sig.s.Value() }

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig *Signature) IsEqual(other *Signature) bool {
	return other != nil && sig.r.Equal(other.r) && sig.s.Equal(other.s)
}

// IsLowS reports whether s <= n/2.
func (sig *Signature) IsLowS() bool {
	half := new(big.Int).Rsh(sig.s.Modulus(), 1)
	return sig.s.Value().Cmp(half) <= 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%s,%s)", sig.r, sig.s)
}
