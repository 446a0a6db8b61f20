package bitmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	tests := []uint64{0, 1, 8, 9, 63, 64, 65, 1000}

	for _, numBits := range tests {
		b := NewBitmap(numBits)
		require.Equal(t, numBits, b.Len(), "NewBitmap(%d) length", numBits)
		require.Equal(t, uint64(0), b.Count(), "NewBitmap(%d) ones", numBits)

		// Verify all bits are 0
		for i := uint64(0); i < numBits; i++ {
			require.False(t, b.Contains(i), "NewBitmap(%d): bit %d should be 0", numBits, i)
		}
	}
}

func TestAddAndContains(t *testing.T) {
	b := NewBitmap(100)

	positions := map[uint64]struct{}{
		0: {}, 1: {}, 7: {}, 8: {}, 15: {}, 16: {}, 31: {}, 32: {}, 63: {}, 64: {}, 99: {},
	}
	for pos := range positions {
		b.Add(pos)
	}

	for i := uint64(0); i < 100; i++ {
		_, shouldBeSet := positions[i]
		require.Equal(t, shouldBeSet, b.Contains(i), "bit %d set status", i)
	}
	require.Equal(t, uint64(len(positions)), b.Count())
}

func TestIdempotent(t *testing.T) {
	b := NewBitmap(64)

	b.Add(42)
	b.Add(42)
	b.Add(42)

	require.True(t, b.Contains(42), "bit 42 should be set")
	require.Equal(t, uint64(1), b.Count())
}

func TestBoundsChecking(t *testing.T) {
	b := NewBitmap(64)

	require.Panics(t, func() {
		b.Add(64)
	}, "Add(64) should panic")

	require.Panics(t, func() {
		b.Contains(64)
	}, "Contains(64) should panic")

	// A rejected Add must not grow the bitmap.
	require.Equal(t, uint64(64), b.Len())
}

func TestString(t *testing.T) {
	b := NewBitmap(10)
	require.Equal(t, "0000000000", b.String())

	b.Add(0)
	b.Add(3)
	b.Add(9)
	require.Equal(t, "1001000001", b.String())
	require.Equal(t, 3, strings.Count(b.String(), "1"))
}
