package bitmap

// Bitmap is a fixed-length array of single-bit flags. Bits can only be set;
// nothing ever clears a bit once it is 1.
type Bitmap interface {
	// Add sets the bit at position i to 1.
	Add(i uint64)

	// Contains returns true if bit at position i is set.
	Contains(i uint64) bool

	// Count returns the number of bits set to 1.
	Count() uint64

	// Len returns the fixed number of bits in the bitmap.
	Len() uint64

	// String renders every bit, lowest position first, as '0' or '1'.
	String() string
}
