package hashfn

import (
	"crypto/sha256"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h, err := Lookup(name)
			require.NoError(t, err)

			a, err := h([]byte("arctic"))
			require.NoError(t, err)
			b, err := h([]byte("arctic"))
			require.NoError(t, err)
			c, err := h([]byte("Arctic"))
			require.NoError(t, err)

			require.Equal(t, a, b, "hash must be deterministic")
			require.NotEqual(t, a, c, "different inputs should hash differently")
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	h, err := Lookup("md5")
	require.ErrorIs(t, err, ErrUnknownHash)
	require.Nil(t, h)
}

func TestNames(t *testing.T) {
	names := Names()
	require.Equal(t, []string{"fnv1a", "murmur3", "sha256", "xxh3", "xxhash"}, names)
	require.True(t, slices.Contains(names, Default))
}

func TestSHA256MatchesFullDigestModPowerOfTwo(t *testing.T) {
	// Reverse the digest so big.Int (big-endian) sees the little-endian integer.
	for _, word := range []string{"8", "Hi", "Hello World", "zzzzzz"} {
		sum := sha256.Sum256([]byte(word))
		slices.Reverse(sum[:])
		full := new(big.Int).SetBytes(sum[:])

		got, err := SHA256([]byte(word))
		require.NoError(t, err)

		for _, size := range []int64{32, 1024, 1 << 20} {
			want := new(big.Int).Mod(full, big.NewInt(size)).Uint64()
			require.Equal(t, want, got%uint64(size), "word %q size %d", word, size)
		}
	}
}
