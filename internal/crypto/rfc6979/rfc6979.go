// Package rfc6979 derives deterministic ECDSA nonces as described in
// https://tools.ietf.org/html/rfc6979#section-3.2.
//
// The nonce depends only on the secret key and the message digest, so signing
// the same digest twice yields the same signature and no random source is
// needed at signing time.
package rfc6979

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

var one = big.NewInt(1)

// Nonce returns the first valid RFC 6979 nonce in [1, n-1] for the secret and
// digest, using HMAC-SHA256.
func Nonce(n, secret, digest *big.Int) *big.Int {
	return NewStream(sha256.New, n, secret, digest).Next()
}

// NonceWithHash is Nonce with a caller supplied HMAC hash function.
func NonceWithHash(alg func() hash.Hash, n, secret, digest *big.Int) *big.Int {
	return NewStream(alg, n, secret, digest).Next()
}

// Stream produces the sequence of candidate nonces of RFC 6979 step h. The
// first call to Next returns the nonce; later calls return the values a
// signer must fall back to when a nonce yields r == 0 or s == 0.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	alg   func() hash.Hash
	n     *big.Int
	qlen  int
	k, v  []byte
	drawn bool
}

// NewStream runs the RFC 6979 initialization (steps b through g) for the
// given group order, secret and digest.
//
// The digest is the integer bits2int(H(m)), i.e. already truncated to the
// bit length of n; ecdsa.SignHash does that truncation. It is reduced modulo
// n here, which for such a digest is the single conditional subtraction of
// bits2octets. Larger integers are reduced too rather than truncated. Secret
// and reduced digest are encoded as big-endian octet strings as wide as n.
func NewStream(alg func() hash.Hash, n, secret, digest *big.Int) *Stream {
	x, err := field.Reduce(secret, n)
	if err != nil {
		panic(err)
	}
	h, err := field.Reduce(digest, n)
	if err != nil {
		panic(err)
	}
	xOctets, hOctets := x.Bytes(), h.Bytes()

	holen := alg().Size()
	s := &Stream{
		alg:  alg,
		n:    new(big.Int).Set(n),
		qlen: n.BitLen(),
		k:    make([]byte, holen),
		v:    make([]byte, holen),
	}

	// Step b: V = 0x01 0x01 ... 0x01
	for i := range s.v {
		s.v[i] = 0x01
	}
	// Step c: K = 0x00 0x00 ... 0x00 (already zero)

	// Step d: K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	s.k = s.mac(s.k, s.v, []byte{0x00}, xOctets, hOctets)
	// Step e: V = HMAC_K(V)
	s.v = s.mac(s.k, s.v)
	// Step f: K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	s.k = s.mac(s.k, s.v, []byte{0x01}, xOctets, hOctets)
	// Step g: V = HMAC_K(V)
	s.v = s.mac(s.k, s.v)

	return s
}

// Next returns the next candidate nonce in [1, n-1].
func (s *Stream) Next() *big.Int {
	for {
		if s.drawn {
			// Step h.3 for a rejected candidate:
			// K = HMAC_K(V || 0x00), V = HMAC_K(V)
			s.k = s.mac(s.k, s.v, []byte{0x00})
			s.v = s.mac(s.k, s.v)
		}
		s.drawn = true

		// Step h.1 and h.2: T = V || V || ... until qlen bits are collected.
		var t []byte
		for len(t)*8 < s.qlen {
			s.v = s.mac(s.k, s.v)
			t = append(t, s.v...)
		}

		// Step h.3: accept k = bits2int(T) if it is in [1, n-1].
		k := bits2int(t, s.qlen)
		if k.Cmp(one) >= 0 && k.Cmp(s.n) < 0 {
			return k
		}
	}
}

// mac returns HMAC_key(parts[0] || parts[1] || ...).
func (s *Stream) mac(key []byte, parts ...[]byte) []byte {
	m := hmac.New(s.alg, key)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// bits2int interprets in as a big-endian integer and keeps its leftmost qlen
// bits (RFC 6979 section 2.3.2).
func bits2int(in []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(in)
	if vlen := len(in) * 8; vlen > qlen {
		v.Rsh(v, uint(vlen-qlen))
	}
	return v
}
