package hashwork

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"

	simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	apperrors "github.com/agbru/parbench/internal/errors"
)

// Algorithm names accepted by Lookup.
const (
	SHA256     = "sha256"
	SHA256SIMD = "sha256-simd"
	SHA512     = "sha512"
	BLAKE2b256 = "blake2b-256"
	SHA3_256   = "sha3-256"
)

// DefaultAlgorithm is the digest used when none is configured.
const DefaultAlgorithm = SHA256

// Algorithm constructs fresh hash states for one digest function.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

var registry = map[string]Algorithm{
	SHA256:     {Name: SHA256, New: sha256.New},
	SHA256SIMD: {Name: SHA256SIMD, New: simd.New},
	SHA512:     {Name: SHA512, New: sha512.New},
	BLAKE2b256: {Name: BLAKE2b256, New: newBlake2b256},
	SHA3_256:   {Name: SHA3_256, New: sha3.New256},
}

// blake2b.New256 only fails for keys longer than 64 bytes.
func newBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	alg, ok := registry[name]
	if !ok {
		return Algorithm{}, apperrors.NewConfigError("unknown hash algorithm %q (available: %v)", name, Names())
	}
	return alg, nil
}

// Names lists the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
