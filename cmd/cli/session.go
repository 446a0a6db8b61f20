package main

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"sieve/internal/common"
	"sieve/internal/filter"
	"sieve/internal/source"
)

// session holds the filter a shell operates on.
type session struct {
	filter   *filter.BloomFilter
	hashName string
	inserted uint64 // insert calls, including repeats
}

// exec runs one command line and reports whether the shell should exit.
func (s *session) exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	// Data may contain spaces ("Hello World").
	datum := strings.Join(parts[1:], " ")

	switch cmd {
	case "insert":
		if len(parts) < 2 {
			common.Logf("usage: insert <datum>\n")
			return false
		}
		if err := s.filter.Insert([]byte(datum)); err != nil {
			common.Logf("insert error: %v\n", err)
			return false
		}
		s.inserted++
		common.Logf("'%s' entered\n", datum)
	case "query":
		if len(parts) < 2 {
			common.Logf("usage: query <datum>\n")
			return false
		}
		isNew, err := s.filter.Query([]byte(datum))
		if err != nil {
			common.Logf("query error: %v\n", err)
			return false
		}
		common.Logf("-Testing if '%s' is new data... %t\n", datum, isNew)
	case "load":
		if len(parts) != 2 {
			common.Logf("usage: load <file>\n")
			return false
		}
		s.load(parts[1])
	case "seed":
		if len(parts) != 2 {
			common.Logf("usage: seed <x>\n")
			return false
		}
		x, err := strconv.Atoi(parts[1])
		if err != nil || x < 1 {
			common.Logf("seed: x must be a positive integer\n")
			return false
		}
		s.seed(x)
	case "estimate":
		if len(parts) != 2 {
			common.Logf("usage: estimate <n>\n")
			return false
		}
		n, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			common.Logf("estimate: n must be a non-negative integer\n")
			return false
		}
		common.Logf("false positive probability for %d items: %.6g\n", n, s.filter.EstimateFalsePositiveProbability(n))
	case "plan":
		if len(parts) != 3 {
			common.Logf("usage: plan <n> <p>\n")
			return false
		}
		printPlan(parts[1], parts[2])
	case "stats":
		s.printStats()
	case "dump":
		width := 64
		if len(parts) == 2 {
			w, err := strconv.Atoi(parts[1])
			if err != nil || w < 1 {
				common.Logf("dump: row width must be a positive integer\n")
				return false
			}
			width = w
		}
		dumpBits(s.filter, width)
	case "exit", "quit":
		return true
	default:
		common.Logf("unknown command\n")
	}
	return false
}

func (s *session) load(path string) {
	start := time.Now()

	src, err := source.Open(path)
	if err != nil {
		common.Logf("load error: %v\n", err)
		return
	}
	defer src.Close()

	count := uint64(0)
	if err := s.filter.Populate(counted(src.All(), &count)); err != nil {
		s.inserted += count
		common.Logf("load error after %d items: %v\n", count, err)
		return
	}
	s.inserted += count
	if err := src.Err(); err != nil {
		common.Logf("load error after %d items: %v\n", count, err)
		return
	}

	common.LogDuration(start, "filter populated with %d items from %s", count, path)
}

// counted passes data through, adding one to *n for every datum that was
// consumed without the consumer stopping early.
func counted(data iter.Seq[[]byte], n *uint64) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for d := range data {
			if !yield(d) {
				return
			}
			*n++
		}
	}
}

func (s *session) printStats() {
	bf := s.filter
	common.Logf("size:      %d bits\n", bf.Size())
	common.Logf("k:         %d\n", bf.K())
	common.Logf("hash:      %s\n", s.hashName)
	common.Logf("inserted:  %d\n", s.inserted)
	common.Logf("ones:      %d (fill %.4f)\n", bf.Ones(), bf.FillRatio())
	common.Logf("estimate:  %.6g at %d items\n", bf.EstimateFalsePositiveProbability(s.inserted), s.inserted)
}

func printPlan(nStr, pStr string) {
	n, err := strconv.ParseUint(nStr, 10, 64)
	if err != nil || n == 0 {
		common.Logf("plan: n must be a positive integer\n")
		return
	}
	p, err := strconv.ParseFloat(pStr, 64)
	if err != nil || p <= 0 || p >= 1 {
		common.Logf("plan: p must be between 0 and 1\n")
		return
	}

	size, k := filter.OptimalParams(n, p)
	common.Logf("for %d items at p=%g: size=%d bits (%d bytes) k=%d\n", n, p, size, (size+7)/8, k)
}
