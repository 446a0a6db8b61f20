// Package hashseq derives k array positions for a datum from a single base
// hash function.
//
// The scheme follows the idea of "Less Hashing, Same Performance" (Kirsch and
// Mitzenmacher): one base hash emulates k hash functions. Positions are
// produced by chaining over a two-value window:
//
//	h[1] = H(datum)
//	h[2] = H(text(h[1]) + datum)
//	h[i] = H(text(h[i-1]) + text(h[i-2]))   for i >= 3
//
// where text renders a hash value in base 10. The datum seeds the chain but is
// never part of the output.
//
// The quality of the sequence depends entirely on H. A base hash that is not
// reasonably independent across calls (an identity-like function, say) makes
// the chain degenerate and the effective k collapses toward 1.
package hashseq

import (
	"strconv"
)

// BaseHash maps an arbitrary byte string to an integer. It must be
// deterministic. Any error it returns is passed through unchanged.
type BaseHash func(data []byte) (uint64, error)

// Generate returns exactly k hash values for datum, in generation order.
// It calls h once on datum and k-1 times on chained intermediate values.
func Generate(datum []byte, k uint32, h BaseHash) ([]uint64, error) {
	if k == 0 {
		return []uint64{}, nil
	}

	hashes := make([]uint64, 0, k)
	first, err := h(datum)
	if err != nil {
		return nil, err
	}
	hashes = append(hashes, first)

	// prev and secondPrev hold the textual form of the window.
	prev := strconv.FormatUint(first, 10)
	secondPrev := string(datum)

	buf := make([]byte, 0, 2*20+len(datum))
	for i := uint32(1); i < k; i++ {
		buf = append(buf[:0], prev...)
		buf = append(buf, secondPrev...)

		next, err := h(buf)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, next)

		secondPrev = prev
		prev = strconv.FormatUint(next, 10)
	}

	return hashes, nil
}
