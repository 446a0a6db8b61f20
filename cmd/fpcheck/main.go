package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"sieve/internal/common"
	"sieve/internal/filter"
	"sieve/internal/fpcheck"
	"sieve/internal/hashfn"
	"sieve/internal/source"
)

func main() {
	size := pflag.Uint64("size", 1<<20, "number of bits in the filter")
	k := pflag.Uint32("k", 5, "hash positions per datum")
	hashName := pflag.String("hash", hashfn.Default, "base hash")
	holdout := pflag.Float64("holdout", 0.1, "fraction of words kept out of the filter and used as probes")
	verbose := pflag.BoolP("verbose", "v", false, "log every inserted datum")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <words-file>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	path := pflag.Arg(0)

	logger := common.SetupLogger("fpcheck", *verbose)

	h, err := hashfn.Lookup(*hashName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	bf, err := filter.New(*size, *k, h, filter.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create filter: %v\n", err)
		os.Exit(1)
	}

	src, err := source.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer src.Close()

	words := slices.Collect(src.All())
	if err := src.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	start := time.Now()
	members, probes := fpcheck.Split(words, *holdout)
	report, err := fpcheck.Run(bf, members, probes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		os.Exit(1)
	}
	common.LogDuration(start, "checked %s", path)

	fmt.Printf("config:     size=%d k=%d hash=%s\n", *size, *k, *hashName)
	fmt.Printf("inserted:   %d\n", report.Inserted)
	fmt.Printf("probed:     %d\n", report.Probed)
	fmt.Printf("fill ratio: %.4f\n", report.FillRatio)
	fmt.Println()
	fmt.Printf("%-28s %10s %10s\n", "", "hits", "rate")
	fmt.Printf("%-28s %10d %10.6f\n", "query (any bit set)", report.FalsePositives, report.Observed)
	fmt.Printf("%-28s %10d %10.6f\n", "may-contain (all bits set)", report.StandardFalsePositives, report.ObservedStandard)
	fmt.Printf("%-28s %10s %10.6f\n", "reference filter", "", report.Baseline)
	fmt.Printf("%-28s %10s %10.6f\n", "estimate", "", report.Estimated)
}
