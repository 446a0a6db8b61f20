package filter

import "iter"

// Filter answers "is this datum definitely new?" over a fixed bit array.
// A datum that was inserted is never reported as new (no false negatives).
// A datum that was never inserted may still be reported as seen (a false
// positive).
//
// Implementations are not safe for concurrent use. Callers sharing a filter
// must serialize Insert and Populate against every other call.
type Filter interface {
	// Insert marks datum as seen. Inserting the same datum again is a no-op.
	Insert(datum []byte) error

	// Populate inserts every datum of data in order. The first failure stops
	// the batch; data inserted before it stays inserted.
	Populate(data iter.Seq[[]byte]) error

	// Query returns true if datum is probably new, false if it was inserted
	// or collides with inserted data.
	Query(datum []byte) (bool, error)

	// MayContain returns false if datum was definitely never inserted.
	MayContain(datum []byte) (bool, error)

	// EstimateFalsePositiveProbability returns the expected false positive
	// rate after datasetSize distinct inserts.
	EstimateFalsePositiveProbability(datasetSize uint64) float64
}
