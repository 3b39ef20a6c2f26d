package ecdsa

import (
	"crypto/sha256"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/rfc6979"
	"github.com/smallyu/go-s256-ecdsa/internal/logging"
)

var logger = logging.MustGetLogger("ecdsa")

// Sign produces a deterministic low-s signature of digest.
//
// The nonce k comes from RFC 6979; r is the x coordinate of k*G reduced mod
// n and s = (z + r*d) / k mod n. Candidates giving r == 0 or s == 0 are
// discarded in favour of the next RFC 6979 candidate.
//
// digest is used as an integer and reduced mod n; it is not truncated. Use
// SignHash for hashes wider than the group order.
func (k *PrivateKey) Sign(digest *big.Int) (*Signature, error) {
	if digest == nil || digest.Sign() < 0 {
		return nil, makeError(ErrInvalidDigest, "digest must be a non-negative integer")
	}

	params := k.params
	n := params.N()
	halfN := params.HalfOrder()

	z, err := field.Reduce(digest, n)
	if err != nil {
		return nil, err
	}
	d := field.MustNew(k.secret, n)

	nonces := rfc6979.NewStream(sha256.New, n, k.secret, digest)
	for attempt := 1; ; attempt++ {
		nonce := nonces.Next()

		R, err := params.ScalarBaseMult(nonce)
		if err != nil {
			return nil, errors.Wrap(err, "computing nonce point")
		}
		if R.IsInfinity() {
			return nil, makeError(ErrInfinityNonce, "nonce point is infinity")
		}

		r, err := field.Reduce(R.X().Value(), n)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			logger.Debugf("nonce attempt %d gave r = 0, drawing another", attempt)
			continue
		}

		kInv := field.MustNew(nonce, n).Inverse()
		s := z.Add(r.Mul(d)).Mul(kInv)
		if s.IsZero() {
			logger.Debugf("nonce attempt %d gave s = 0, drawing another", attempt)
			continue
		}

		if s.Value().Cmp(halfN) > 0 {
			s = s.Neg()
		}
		return &Signature{r: r, s: s}, nil
	}
}

// SignHash signs a message hash. Hashes wider than the group order are
// truncated to their leftmost bits as in SEC 1 and RFC 6979 bits2int, so a
// SHA-512 hash gives the same signature as its first 32 bytes.
func (k *PrivateKey) SignHash(hash []byte) (*Signature, error) {
	return k.Sign(hashToInt(hash, k.params.N()))
}

// hashToInt converts a hash to an integer no wider than n.
func hashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - orderBits; excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
