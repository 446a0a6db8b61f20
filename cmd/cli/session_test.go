package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sieve/internal/common"
	"sieve/internal/filter"
	"sieve/internal/hashfn"
)

func newTestSession(t *testing.T, size uint64, k uint32) (*session, *bytes.Buffer) {
	t.Helper()

	bf, err := filter.New(size, k, hashfn.XXH3)
	require.NoError(t, err)

	var buf bytes.Buffer
	prevOut, prevEnabled := common.Output, common.LoggingEnabled
	common.Output, common.LoggingEnabled = &buf, true
	t.Cleanup(func() {
		common.Output, common.LoggingEnabled = prevOut, prevEnabled
	})

	return &session{filter: bf, hashName: "xxh3"}, &buf
}

func TestSessionInsertAndQuery(t *testing.T) {
	s, out := newTestSession(t, 1<<20, 5)

	require.False(t, s.exec("query 8"))
	require.Contains(t, out.String(), "-Testing if '8' is new data... true")

	out.Reset()
	require.False(t, s.exec("insert 8"))
	require.Equal(t, "'8' entered\n", out.String())
	require.Equal(t, uint64(1), s.inserted)

	out.Reset()
	s.exec("query 8")
	require.Contains(t, out.String(), "-Testing if '8' is new data... false")
}

func TestSessionDatumWithSpaces(t *testing.T) {
	s, out := newTestSession(t, 1<<20, 5)

	s.exec("insert Hello World")
	out.Reset()
	s.exec("query Hello World")
	require.Contains(t, out.String(), "'Hello World' is new data... false")
}

func TestSessionUsage(t *testing.T) {
	s, out := newTestSession(t, 1024, 3)

	tests := []struct {
		input    string
		expected string
	}{
		{"insert", "usage: insert <datum>"},
		{"query", "usage: query <datum>"},
		{"load", "usage: load <file>"},
		{"seed 0", "seed: x must be a positive integer"},
		{"estimate x", "estimate: n must be a non-negative integer"},
		{"plan 10", "usage: plan <n> <p>"},
		{"plan 10 1.5", "plan: p must be between 0 and 1"},
		{"dump 0", "dump: row width must be a positive integer"},
		{"bogus", "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out.Reset()
			require.False(t, s.exec(tt.input))
			require.Contains(t, out.String(), tt.expected)
		})
	}
}

func TestSessionExit(t *testing.T) {
	s, _ := newTestSession(t, 1024, 3)

	require.True(t, s.exec("exit"))
	require.True(t, s.exec("QUIT"))
	require.False(t, s.exec("   "))
}

func TestSessionLoad(t *testing.T) {
	s, out := newTestSession(t, 1<<16, 5)

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Arctic\narctic\n\nzillions\n"), 0644))

	s.exec("load " + path)
	require.Contains(t, out.String(), "filter populated with 3 items")
	require.Equal(t, uint64(3), s.inserted)

	for _, w := range []string{"Arctic", "arctic", "zillions"} {
		isNew, err := s.filter.Query([]byte(w))
		require.NoError(t, err)
		require.False(t, isNew, w)
	}

	out.Reset()
	s.exec("load " + filepath.Join(t.TempDir(), "missing.txt"))
	require.Contains(t, out.String(), "load error")
}

func TestSessionSeed(t *testing.T) {
	s, out := newTestSession(t, 1<<16, 5)

	s.exec("seed 2")
	require.Contains(t, out.String(), "seeded 52 entries (26 * 2)")
	require.Equal(t, uint64(52), s.inserted)

	isNew, err := s.filter.Query([]byte("apple1"))
	require.NoError(t, err)
	require.False(t, isNew)
}

func TestSessionEstimateAndPlan(t *testing.T) {
	s, out := newTestSession(t, 32, 1)

	s.exec("estimate 16")
	require.Contains(t, out.String(), "false positive probability for 16 items: 0.393469")

	out.Reset()
	s.exec("plan 100 0.01")
	require.Contains(t, out.String(), "for 100 items at p=0.01: size=959 bits (120 bytes) k=7")
}

func TestSessionStats(t *testing.T) {
	s, out := newTestSession(t, 1024, 3)

	s.exec("insert 8")
	out.Reset()
	s.exec("stats")

	stats := out.String()
	require.Contains(t, stats, "size:      1024 bits")
	require.Contains(t, stats, "k:         3")
	require.Contains(t, stats, "hash:      xxh3")
	require.Contains(t, stats, "inserted:  1")
}

func TestSessionDump(t *testing.T) {
	s, out := newTestSession(t, 256, 3)

	s.exec("dump")
	require.Contains(t, out.String(), "(4 empty rows)")
	require.Contains(t, out.String(), "0 of 256 bits set")

	s.exec("insert 8")
	out.Reset()
	s.exec("dump 16")

	dump := out.String()
	require.Contains(t, dump, "of 256 bits set")
	ones := 0
	for _, line := range strings.Split(dump, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] != "..." {
			ones += strings.Count(fields[1], "1")
		}
	}
	require.Equal(t, int(s.filter.Ones()), ones)
}
