package main

import (
	"strings"

	"sieve/internal/common"
	"sieve/internal/filter"
)

// dumpBits prints the filter's bit array in rows of width flags, each row
// prefixed with the position of its first bit. Rows of zeros are elided.
func dumpBits(bf *filter.BloomFilter, width int) {
	bits := bf.String()
	zeros := strings.Repeat("0", width)

	skipped := 0
	for off := 0; off < len(bits); off += width {
		row := bits[off:min(off+width, len(bits))]
		if row == zeros[:len(row)] {
			skipped++
			continue
		}
		if skipped > 0 {
			common.Logf("%10s  (%d empty rows)\n", "...", skipped)
			skipped = 0
		}
		common.Logf("%10d  %s\n", off, row)
	}
	if skipped > 0 {
		common.Logf("%10s  (%d empty rows)\n", "...", skipped)
	}

	common.Logf("%d of %d bits set\n", bf.Ones(), bf.Size())
}
