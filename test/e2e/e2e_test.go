package e2e

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-s256-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

func TestSignVerifyIntegration(t *testing.T) {
	// Simulate 3 signers
	nSigners := 3
	keys := make([]*ecdsa.PrivateKey, nSigners)

	// 1. Key Generation Phase
	for i := 0; i < nSigners; i++ {
		key, err := ecdsa.GeneratePrivateKey(rand.Reader)
		if err != nil {
			t.Fatalf("Signer %d failed to generate key: %v", i, err)
		}
		keys[i] = key
	}

	// 2. Signing Phase: every signer signs the message under every digest
	message := []byte("Hello, secp256k1!")
	var items []ecdsa.VerifyItem
	for _, alg := range digest.Algorithms() {
		z, err := digest.Int(alg, message)
		if err != nil {
			t.Fatalf("Digest %s failed: %v", alg, err)
		}
		for i, key := range keys {
			sig, err := key.Sign(z)
			if err != nil {
				t.Fatalf("Signer %d failed to sign %s digest: %v", i, alg, err)
			}
			if !sig.IsLowS() {
				t.Errorf("Signer %d produced high-s signature %v", i, sig)
			}
			items = append(items, ecdsa.VerifyItem{PubKey: key.PubKey(), Digest: z, Signature: sig})
		}
	}

	// 3. Verification Phase
	results, err := ecdsa.BatchVerify(context.Background(), items, 4)
	if err != nil {
		t.Fatalf("Batch verification failed: %v", err)
	}
	for i, ok := range results {
		if !ok {
			t.Errorf("Item %d did not verify", i)
		}
	}

	// 4. Cross-signer Phase: a signature never verifies under another key
	for i, item := range items {
		other := keys[(i+1)%nSigners].PubKey()
		if ecdsa.Verify(other, item.Digest, item.Signature) {
			t.Errorf("Item %d verified under the wrong key", i)
		}
	}
}

func TestInteropWithDecred(t *testing.T) {
	message := []byte("interop")
	hash, err := digest.Sum(digest.SHA256, message)
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		refKey, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("Decred key generation failed: %v", err)
		}
		key, err := ecdsa.PrivKeyFromBytes(refKey.Serialize())
		if err != nil {
			t.Fatalf("Key import failed: %v", err)
		}

		// Our signature verifies under decred.
		sig, err := key.SignHash(hash)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		var r, s secp256k1.ModNScalar
		r.SetByteSlice(sig.R().Bytes())
		s.SetByteSlice(sig.S().Bytes())
		if !decredecdsa.NewSignature(&r, &s).Verify(hash, refKey.PubKey()) {
			t.Errorf("#%d: decred rejected %v", i, sig)
		}

		// Decred's signature verifies under ours.
		compact := decredecdsa.SignCompact(refKey, hash, false)
		refSig, err := ecdsa.NewSignature(new(big.Int).SetBytes(compact[1:33]),
			new(big.Int).SetBytes(compact[33:65]))
		if err != nil {
			t.Fatalf("Signature import failed: %v", err)
		}
		if !key.PubKey().VerifyHash(hash, refSig) {
			t.Errorf("#%d: rejected decred signature %v", i, refSig)
		}

		// Both are RFC 6979, so they agree exactly.
		if !refSig.IsEqual(sig) {
			t.Errorf("#%d: signatures differ. Got %v, want %v", i, sig, refSig)
		}
	}
}
