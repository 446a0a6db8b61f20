// Package fpcheck measures how a populated filter behaves on data it has
// never seen and compares that against the analytical estimate.
package fpcheck

import (
	"errors"
	"fmt"
	"math"
	"slices"

	boom "github.com/tylertreat/BoomFilters"

	"sieve/internal/filter"
)

var (
	ErrFalseNegative = errors.New("fpcheck: inserted datum reported as new")
	ErrNoProbes      = errors.New("fpcheck: no probe outside the member set")
)

// Report holds the outcome of a Run.
type Report struct {
	Inserted int // distinct members inserted
	Probed   int // probes that were not members

	// FalsePositives counts probes Query reported as already seen.
	FalsePositives int
	// StandardFalsePositives counts probes MayContain reported as present.
	StandardFalsePositives int

	Observed         float64 // FalsePositives / Probed
	ObservedStandard float64 // StandardFalsePositives / Probed
	Estimated        float64 // EstimateFalsePositiveProbability(Inserted)
	Baseline         float64 // observed rate of a reference filter at the estimated rate
	FillRatio        float64
}

// Run populates f with members and then queries every probe that is not a
// member. It fails with ErrFalseNegative if any member is still reported as
// new after population.
func Run(f *filter.BloomFilter, members, probes [][]byte) (Report, error) {
	seen := make(map[string]struct{}, len(members))
	distinct := make([][]byte, 0, len(members))
	for _, m := range members {
		if _, ok := seen[string(m)]; ok {
			continue
		}
		seen[string(m)] = struct{}{}
		distinct = append(distinct, m)
	}

	if err := f.Populate(slices.Values(distinct)); err != nil {
		return Report{}, err
	}

	for _, m := range distinct {
		isNew, err := f.Query(m)
		if err != nil {
			return Report{}, err
		}
		if isNew {
			return Report{}, fmt.Errorf("%w: %q", ErrFalseNegative, m)
		}
	}

	estimated := f.EstimateFalsePositiveProbability(uint64(len(distinct)))
	baseline := boom.NewBloomFilter(uint(max(len(distinct), 1)), clampRate(estimated))
	for _, m := range distinct {
		baseline.Add(m)
	}

	r := Report{
		Inserted:  len(distinct),
		Estimated: estimated,
		FillRatio: f.FillRatio(),
	}
	baselineHits := 0
	for _, p := range probes {
		if _, ok := seen[string(p)]; ok {
			continue
		}
		r.Probed++

		isNew, err := f.Query(p)
		if err != nil {
			return Report{}, err
		}
		if !isNew {
			r.FalsePositives++
		}

		maybe, err := f.MayContain(p)
		if err != nil {
			return Report{}, err
		}
		if maybe {
			r.StandardFalsePositives++
		}

		if baseline.Test(p) {
			baselineHits++
		}
	}

	if r.Probed == 0 {
		return Report{}, ErrNoProbes
	}

	probed := float64(r.Probed)
	r.Observed = float64(r.FalsePositives) / probed
	r.ObservedStandard = float64(r.StandardFalsePositives) / probed
	r.Baseline = float64(baselineHits) / probed
	return r, nil
}

// Split divides items into members and probes, sending every item whose
// index falls in the holdout fraction of each block of ten to probes.
// holdout is clamped to [0, 1].
func Split(items [][]byte, holdout float64) (members, probes [][]byte) {
	holdout = math.Min(math.Max(holdout, 0), 1)
	cut := int(math.Round(holdout * 10))
	for i, item := range items {
		if i%10 < cut {
			probes = append(probes, item)
		} else {
			members = append(members, item)
		}
	}
	return members, probes
}

// The reference filter derives its size from the rate, which must lie
// strictly inside (0, 1).
func clampRate(p float64) float64 {
	return math.Min(math.Max(p, 1e-9), 0.5)
}
