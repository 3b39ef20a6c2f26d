package benchmark

import (
	"context"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-s256-ecdsa/internal/crypto/rfc6979"
	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

var benchSecret, _ = new(big.Int).SetString("cca9fbcc1b41e5a95d369eaa6ddcff73b61a4efaa279cfc6567e8daa39cbaf50", 16)

func benchDigest() *big.Int {
	h := sha256.Sum256([]byte("benchmark"))
	return new(big.Int).SetBytes(h[:])
}

func BenchmarkFieldMul(b *testing.B) {
	p := curves.Secp256k1().Curve().Prime()
	x := field.MustNew(new(big.Int).Sub(p, big.NewInt(3)), p)
	y := field.MustNew(benchSecret, p)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	p := curves.Secp256k1().Curve().Prime()
	x := field.MustNew(benchSecret, p)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		x.Inverse()
	}
}

func BenchmarkScalarBaseMult(b *testing.B) {
	params := curves.Secp256k1()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := params.ScalarBaseMult(benchSecret); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNonce(b *testing.B) {
	n := curves.Secp256k1().N()
	z := benchDigest()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rfc6979.Nonce(n, benchSecret, z)
	}
}

func BenchmarkSign(b *testing.B) {
	key, err := ecdsa.NewPrivateKey(benchSecret)
	if err != nil {
		b.Fatal(err)
	}
	z := benchDigest()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := key.Sign(z); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	key, err := ecdsa.NewPrivateKey(benchSecret)
	if err != nil {
		b.Fatal(err)
	}
	z := benchDigest()
	sig, err := key.Sign(z)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !key.PubKey().Verify(z, sig) {
			b.Fatal("signature did not verify")
		}
	}
}

func BenchmarkBatchVerify16(b *testing.B) {
	key, err := ecdsa.NewPrivateKey(benchSecret)
	if err != nil {
		b.Fatal(err)
	}
	items := make([]ecdsa.VerifyItem, 16)
	for i := range items {
		z := big.NewInt(int64(i + 1))
		sig, err := key.Sign(z)
		if err != nil {
			b.Fatal(err)
		}
		items[i] = ecdsa.VerifyItem{PubKey: key.PubKey(), Digest: z, Signature: sig}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ecdsa.BatchVerify(context.Background(), items, 4); err != nil {
			b.Fatal(err)
		}
	}
}
