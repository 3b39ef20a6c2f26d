// Package bridge exposes key derivation, signing and verification through
// string in, JSON out functions for hosts that cannot share Go types, such as
// the WebAssembly build.
//
// Integers cross the boundary as hex strings; JavaScript numbers cannot hold
// 256-bit values.
package bridge

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-s256-ecdsa/pkg/ecdsa"
)

// PubKeyResult is the response of PubKey.
type PubKeyResult struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// SignResult is the response of Sign.
type SignResult struct {
	R string `json:"r"`
	S string `json:"s"`
}

// VerifyResult is the response of Verify.
type VerifyResult struct {
	Valid bool `json:"valid"`
}

// PubKey returns the public key of secretHex as JSON.
func PubKey(secretHex string) (string, error) {
	key, err := privateKey(secretHex)
	if err != nil {
		return "", err
	}
	pub := key.PubKey()
	return marshal(PubKeyResult{X: hex64(pub.X()), Y: hex64(pub.Y())})
}

// Sign signs digestHex with secretHex and returns the signature as JSON.
func Sign(secretHex, digestHex string) (string, error) {
	key, err := privateKey(secretHex)
	if err != nil {
		return "", err
	}
	z, err := parseHex("digest", digestHex)
	if err != nil {
		return "", err
	}
	sig, err := key.Sign(z)
	if err != nil {
		return "", err
	}
	return marshal(SignResult{R: hex64(sig.R()), S: hex64(sig.S())})
}

// Verify checks the signature (rHex, sHex) of digestHex under the public key
// (xHex, yHex). Malformed keys and signature values are errors; a well-formed
// signature that does not verify is reported as {"valid":false}.
func Verify(xHex, yHex, digestHex, rHex, sHex string) (string, error) {
	var ints [5]*big.Int
	for i, in := range []struct{ name, value string }{
		{"x", xHex}, {"y", yHex}, {"digest", digestHex}, {"r", rHex}, {"s", sHex},
	} {
		v, err := parseHex(in.name, in.value)
		if err != nil {
			return "", err
		}
		ints[i] = v
	}

	pub, err := ecdsa.NewPublicKey(ints[0], ints[1])
	if err != nil {
		return "", err
	}
	sig, err := ecdsa.NewSignature(ints[3], ints[4])
	if err != nil {
		return "", err
	}
	return marshal(VerifyResult{Valid: pub.Verify(ints[2], sig)})
}

func privateKey(secretHex string) (*ecdsa.PrivateKey, error) {
	secret, err := parseHex("secret", secretHex)
	if err != nil {
		return nil, err
	}
	return ecdsa.NewPrivateKey(secret)
}

func parseHex(name, s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("invalid %s: %q is not a hex integer", name, s)
	}
	return v, nil
}

func hex64(v *big.Int) string {
	return fmt.Sprintf("%064x", v)
}

func marshal(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "encoding response")
	}
	return string(b), nil
}
