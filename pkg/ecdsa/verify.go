package ecdsa

import (
	"math/big"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

// Verify reports whether sig is a valid signature of digest by p.
//
// Signatures with r or s outside [1, n-1] are invalid, as is any signature
// for which u*G + v*P is the point at infinity. Verify never fails with an
// error: every malformed input is simply not a valid signature.
func (p *PublicKey) Verify(digest *big.Int, sig *Signature) bool {
	if digest == nil || sig == nil {
		return false
	}

	params := p.params
	n := params.N()
	rv, sv := sig.R(), sig.S()
	if rv.Sign() <= 0 || rv.Cmp(n) >= 0 || sv.Sign() <= 0 || sv.Cmp(n) >= 0 {
		return false
	}

	z, err := field.Reduce(digest, n)
	if err != nil {
		return false
	}
	r, s := field.MustNew(rv, n), field.MustNew(sv, n)

	w := s.Inverse()
	u := z.Mul(w)
	v := r.Mul(w)

	uG, err := params.ScalarBaseMult(u.Value())
	if err != nil {
		return false
	}
	vP, err := params.ScalarMult(p.point, v.Value())
	if err != nil {
		return false
	}
	total, err := uG.Add(vP)
	if err != nil {
		return false
	}
	if total.IsInfinity() {
		logger.Debug("verification point is infinity")
		return false
	}

	x, err := field.Reduce(total.X().Value(), n)
	if err != nil {
		return false
	}
	return x.Equal(r)
}

// VerifyHash verifies sig against a message hash, truncated like SignHash.
func (p *PublicKey) VerifyHash(hash []byte, sig *Signature) bool {
	return p.Verify(hashToInt(hash, p.params.N()), sig)
}

// Verify reports whether sig is a valid signature of digest by pub. A nil
// key is never valid.
func Verify(pub *PublicKey, digest *big.Int, sig *Signature) bool {
	if pub == nil {
		return false
	}
	return pub.Verify(digest, sig)
}
