/*
Package ecdsa signs and verifies messages with ECDSA over secp256k1.

Signing is deterministic: the per-signature nonce is derived from the secret
key and the digest following RFC 6979 with HMAC-SHA256, so the same key and
digest always give the same signature. Produced signatures are normalized to
the lower half of the group order (low-s).

Digests are plain non-negative integers. Hashing a message is the caller's
job; internal/crypto/digest offers several algorithms, and SignHash and
VerifyHash accept the raw bytes of a hash.

	key, err := ecdsa.GeneratePrivateKey(rand.Reader)
	...
	sig, err := key.Sign(z)
	...
	ok := key.PubKey().Verify(z, sig)

Keys default to secp256k1. The *WithParams constructors accept any prime
order parameter set from package curves, which is how the tests run the same
code on small curves.

None of the arithmetic is constant time.
*/
package ecdsa
