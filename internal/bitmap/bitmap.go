package bitmap

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	set     *bitset.BitSet // Packed backing storage, 64 bits per word
	numBits uint64         // Total number of bits in the bitmap
}

var _ Bitmap = (*bitmapImpl)(nil)

// NewBitmap creates a new bitmap with the specified number of bits.
// All bits are initialized to 0.
func NewBitmap(numBits uint64) Bitmap {
	return &bitmapImpl{
		set:     bitset.New(uint(numBits)),
		numBits: numBits,
	}
}

// Add sets the bit at position i to 1.
func (b *bitmapImpl) Add(i uint64) {
	b.checkIndex(i)
	b.set.Set(uint(i))
}

// Contains returns true if bit at position i is set.
func (b *bitmapImpl) Contains(i uint64) bool {
	b.checkIndex(i)
	return b.set.Test(uint(i))
}

func (b *bitmapImpl) Count() uint64 {
	return uint64(b.set.Count())
}

func (b *bitmapImpl) Len() uint64 {
	return b.numBits
}

func (b *bitmapImpl) String() string {
	var sb strings.Builder
	sb.Grow(int(b.numBits))
	for i := uint64(0); i < b.numBits; i++ {
		if b.set.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// bitset grows on out-of-range Set, so bounds are enforced here to keep the
// length fixed.
func (b *bitmapImpl) checkIndex(i uint64) {
	if i >= b.numBits {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.numBits))
	}
}
