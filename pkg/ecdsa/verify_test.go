package ecdsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
)

func TestVerifyRejectsMalformed(t *testing.T) {
	params := curves.Secp256k1()
	n := params.N()
	key, err := NewPrivateKey(big.NewInt(1))
	require.NoError(t, err)
	pub := key.PubKey()

	z := big.NewInt(0)
	good, err := key.Sign(z)
	require.NoError(t, err)
	require.True(t, pub.Verify(z, good))

	// Signatures built around NewSignature's range checks, the way a caller
	// holding arbitrary field elements could.
	zero := field.Zero(n)
	tests := []struct {
		name string
		sig  *Signature
	}{
		{"nil", nil},
		{"r zero", &Signature{r: zero, s: good.s}},
		{"s zero", &Signature{r: good.r, s: zero}},
		{"swapped", &Signature{r: good.s, s: good.r}},
		{"r plus one", &Signature{r: good.r.Add(field.One(n)), s: good.s}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.False(t, pub.Verify(z, test.sig))
		})
	}

	// (r, n-s) is the other valid encoding; verification does not enforce
	// low-s.
	assert.True(t, pub.Verify(z, &Signature{r: good.r, s: good.s.Neg()}))

	assert.False(t, pub.Verify(nil, good))
	assert.False(t, Verify(nil, z, good))
}

func TestVerifyOutOfRangeValues(t *testing.T) {
	// r values at or above n never verify, even though r mod n might match.
	params := toyParams(t)
	key, err := NewPrivateKeyWithParams(params, big.NewInt(3))
	require.NoError(t, err)

	sig, err := key.Sign(big.NewInt(4))
	require.NoError(t, err)
	require.True(t, key.PubKey().Verify(big.NewInt(4), sig))

	prime := params.Curve().Prime()
	shifted := &Signature{
		r: field.MustNew(new(big.Int).Add(sig.R(), params.N()), prime),
		s: sig.s,
	}
	assert.False(t, key.PubKey().Verify(big.NewInt(4), shifted))
}

func TestVerifyInfinityIsFalse(t *testing.T) {
	// With d = 1 and r = n - z', u*G + v*P = (z + r)/s * G, which is the
	// point at infinity when z + r = n.
	params := toyParams(t)
	key, err := NewPrivateKeyWithParams(params, big.NewInt(1))
	require.NoError(t, err)

	for r := int64(1); r < 7; r++ {
		for s := int64(1); s < 7; s++ {
			sig, err := NewSignatureWithParams(params, big.NewInt(r), big.NewInt(s))
			require.NoError(t, err)
			z := big.NewInt(7 - r)
			assert.False(t, key.PubKey().Verify(z, sig), "r=%d s=%d", r, s)
		}
	}
}

func TestNewSignature(t *testing.T) {
	n := curves.Secp256k1().N()
	one := big.NewInt(1)
	nm1 := new(big.Int).Sub(n, one)

	tests := []struct {
		name string
		r, s *big.Int
		err  error
	}{
		{"smallest", one, one, nil},
		{"largest", nm1, nm1, nil},
		{"r zero", big.NewInt(0), one, ErrSigRIsZero},
		{"r nil", nil, one, ErrSigRIsZero},
		{"r negative", big.NewInt(-1), one, ErrSigRIsZero},
		{"r order", n, one, ErrSigRTooBig},
		{"s zero", one, big.NewInt(0), ErrSigSIsZero},
		{"s order", one, n, ErrSigSTooBig},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sig, err := NewSignature(test.r, test.s)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Nil(t, sig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, sig.R().Cmp(test.r))
			assert.Equal(t, 0, sig.S().Cmp(test.s))
		})
	}
}

func TestSignatureAccessors(t *testing.T) {
	n := curves.Secp256k1().N()
	half := new(big.Int).Rsh(n, 1)

	low, err := NewSignature(big.NewInt(1), half)
	require.NoError(t, err)
	assert.True(t, low.IsLowS())

	high, err := NewSignature(big.NewInt(1), new(big.Int).Add(half, big.NewInt(1)))
	require.NoError(t, err)
	assert.False(t, high.IsLowS())

	assert.False(t, low.IsEqual(high))
	assert.False(t, low.IsEqual(nil))
	assert.True(t, low.IsEqual(low))

	sig, err := NewSignature(big.NewInt(0xab), big.NewInt(0xcd))
	require.NoError(t, err)
	assert.Equal(t, "Signature("+
		"00000000000000000000000000000000000000000000000000000000000000ab,"+
		"00000000000000000000000000000000000000000000000000000000000000cd)", sig.String())

	// Accessors hand out copies.
	sig.R().SetInt64(1)
	assert.Equal(t, int64(0xab), sig.R().Int64())
}
