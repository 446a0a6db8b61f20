// Package hashfn collects the base hash functions a filter can be built on.
// Each function here satisfies hashseq.BaseHash and never fails.
package hashfn

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"

	"sieve/internal/hashseq"
)

// Default is the name of the hash used when none is configured.
const Default = "xxh3"

var ErrUnknownHash = errors.New("hashfn: unknown hash function")

var registry = map[string]hashseq.BaseHash{
	"xxh3":    XXH3,
	"xxhash":  XXHash,
	"murmur3": Murmur3,
	"fnv1a":   FNV1a,
	"sha256":  SHA256,
}

// Lookup returns the base hash registered under name.
func Lookup(name string) (hashseq.BaseHash, error) {
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHash, name, Names())
	}
	return h, nil
}

// Names returns the registered hash names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func XXH3(data []byte) (uint64, error) {
	return xxh3.Hash(data), nil
}

func XXHash(data []byte) (uint64, error) {
	return xxhash.Sum64(data), nil
}

func Murmur3(data []byte) (uint64, error) {
	h := murmur3.New64()
	h.Write(data)
	return h.Sum64(), nil
}

func FNV1a(data []byte) (uint64, error) {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}

// SHA256 reads the digest as a little-endian integer and keeps its low 64
// bits. Modulo any power-of-two size this equals reducing the full 256-bit
// integer.
func SHA256(data []byte) (uint64, error) {
	sum := sha256.Sum256(data)
	return binary.LittleEndian.Uint64(sum[:8]), nil
}
