package filter

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"time"

	"sieve/internal/bitmap"
	"sieve/internal/hashseq"
)

var ErrInvalidConfiguration = errors.New("filter: invalid configuration")

// BloomFilter implements a space-efficient probabilistic data structure
// for set membership testing with no false negatives.
type BloomFilter struct {
	bits   bitmap.Bitmap
	size   uint64 // number of bits in bitmap
	k      uint32 // number of positions per datum
	hash   hashseq.BaseHash
	logger *slog.Logger
}

var _ Filter = (*BloomFilter)(nil)

// OptimalParams computes bloom filter parameters for a capacity target.
// n: expected number of elements to insert
// p: desired false positive rate (e.g., 0.01 for 1%)
// Returns: size (number of bits), k (positions per datum), or zeros when n
// or p is out of range.
func OptimalParams(n uint64, p float64) (size uint64, k uint32) {
	if n == 0 || !(p > 0 && p < 1) {
		return 0, 0
	}

	// m = -n * ln(p) / (ln(2)^2)
	size = uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))

	// k = (m/n) * ln(2)
	k = uint32(math.Ceil(float64(size) / float64(n) * math.Ln2))

	// Ensure at least 1 hash function
	if k < 1 {
		k = 1
	}

	return size, k
}

// New creates a bloom filter of size bits deriving k positions per datum
// from h.
func New(size uint64, k uint32, h hashseq.BaseHash, opts ...Option) (*BloomFilter, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidConfiguration)
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: k must be positive", ErrInvalidConfiguration)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: base hash is required", ErrInvalidConfiguration)
	}

	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	return &BloomFilter{
		bits:   bitmap.NewBitmap(size),
		size:   size,
		k:      k,
		hash:   h,
		logger: o.logger,
	}, nil
}

// Insert sets the bit at every position derived from datum.
func (bf *BloomFilter) Insert(datum []byte) error {
	positions, err := hashseq.Generate(datum, bf.k, bf.hash)
	if err != nil {
		return err
	}
	for _, p := range positions {
		bf.bits.Add(p % bf.size)
	}
	bf.logger.Debug("datum entered", "datum", string(datum))
	return nil
}

// Populate inserts every element of data in sequence order.
func (bf *BloomFilter) Populate(data iter.Seq[[]byte]) error {
	start := time.Now()
	count := 0
	for datum := range data {
		if err := bf.Insert(datum); err != nil {
			return err
		}
		count++
	}
	bf.logger.Info("filter populated",
		"count", count,
		"ones", bf.bits.Count(),
		"elapsed", time.Since(start))
	return nil
}

// Query returns true only if every position derived from datum is still 0.
func (bf *BloomFilter) Query(datum []byte) (bool, error) {
	positions, err := hashseq.Generate(datum, bf.k, bf.hash)
	if err != nil {
		return false, err
	}
	for _, p := range positions {
		if bf.bits.Contains(p % bf.size) {
			return false, nil
		}
	}
	return true, nil
}

// MayContain is the conventional membership test: it returns false if any
// position derived from datum is 0, meaning datum was definitely never
// inserted. Its false positive rate is the one EstimateFalsePositiveProbability
// models. Query is stricter and reports a datum as seen as soon as a single
// position is set.
func (bf *BloomFilter) MayContain(datum []byte) (bool, error) {
	positions, err := hashseq.Generate(datum, bf.k, bf.hash)
	if err != nil {
		return false, err
	}
	for _, p := range positions {
		if !bf.bits.Contains(p % bf.size) {
			return false, nil
		}
	}
	return true, nil
}

// EstimateFalsePositiveProbability returns (1 - e^(-k*n/m))^k for the
// configured m and k. It assumes independent, uniform hash outputs and does
// not look at the bit array.
func (bf *BloomFilter) EstimateFalsePositiveProbability(datasetSize uint64) float64 {
	k := float64(bf.k)
	return math.Pow(1-math.Exp(-k*float64(datasetSize)/float64(bf.size)), k)
}

func (bf *BloomFilter) Size() uint64 { return bf.size }

func (bf *BloomFilter) K() uint32 { return bf.k }

// Ones returns the number of bits set to 1.
func (bf *BloomFilter) Ones() uint64 { return bf.bits.Count() }

// FillRatio returns the fraction of bits set to 1.
func (bf *BloomFilter) FillRatio() float64 {
	return float64(bf.bits.Count()) / float64(bf.size)
}

// String renders the bit array as a sequence of 0/1 flags for debugging.
func (bf *BloomFilter) String() string {
	return bf.bits.String()
}
