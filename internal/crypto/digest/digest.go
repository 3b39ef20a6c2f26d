// Package digest turns messages into the integers that are signed.
package digest

import (
	"crypto/sha256"
	"hash"
	"math/big"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a message digest.
type Algorithm string

const (
	SHA256       Algorithm = "sha256"
	DoubleSHA256 Algorithm = "sha256d"
	SHA3_256     Algorithm = "sha3-256"
	Keccak256    Algorithm = "keccak256"
	Blake2b256   Algorithm = "blake2b-256"
	RIPEMD160    Algorithm = "ripemd160"

	// Raw does not hash at all: the message bytes are read as a big-endian
	// integer.
	Raw Algorithm = "raw"
)

// ErrUnknownAlgorithm is returned for names that are not a known Algorithm.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

var constructors = map[Algorithm]func() hash.Hash{
	SHA256:       sha256.New,
	DoubleSHA256: newDoubleSHA256,
	SHA3_256:     sha3.New256,
	Keccak256:    sha3.NewLegacyKeccak256,
	Blake2b256:   newBlake2b256,
	RIPEMD160:    ripemd160.New,
}

// Parse returns the Algorithm called name. Matching is case-insensitive.
func Parse(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if alg == Raw {
		return alg, nil
	}
	if _, ok := constructors[alg]; !ok {
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q (supported: %s)", name, joinAlgorithms(", "))
	}
	return alg, nil
}

// Algorithms lists every supported algorithm in lexical order.
func Algorithms() []Algorithm {
	algs := []Algorithm{Raw}
	for alg := range constructors {
		algs = append(algs, alg)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
	return algs
}

func joinAlgorithms(sep string) string {
	algs := Algorithms()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = string(alg)
	}
	return strings.Join(names, sep)
}

// New returns a fresh hash.Hash for a. Raw has no hash function.
func (a Algorithm) New() (hash.Hash, error) {
	ctor, ok := constructors[a]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(a))
	}
	return ctor(), nil
}

// Sum hashes the concatenation of parts. For Raw the concatenation itself is
// returned.
func Sum(a Algorithm, parts ...[]byte) ([]byte, error) {
	if a == Raw {
		var data []byte
		for _, p := range parts {
			data = append(data, p...)
		}
		return data, nil
	}
	h, err := a.New()
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil), nil
}

// Int returns the digest of msg as a non-negative big-endian integer.
func Int(a Algorithm, msg []byte) (*big.Int, error) {
	sum, err := Sum(a, msg)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(sum), nil
}

// doubleSHA256 is SHA-256 applied to a SHA-256 digest, as used by Bitcoin.
type doubleSHA256 struct {
	hash.Hash
}

func newDoubleSHA256() hash.Hash {
	return doubleSHA256{sha256.New()}
}

func (d doubleSHA256) Sum(b []byte) []byte {
	first := d.Hash.Sum(nil)
	second := sha256.Sum256(first)
	return append(b, second[:]...)
}

func newBlake2b256() hash.Hash {
	// A nil key never fails.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}
