package main

import (
	"fmt"
	"math/rand"
	"time"

	"sieve/internal/common"
)

var seedWords = []string{
	"apple", "banana", "cherry", "durian", "elderberry", "fig",
	"grapefruit", "honeydew", "imbe", "jackfruit", "kiwi", "lime",
	"mango", "nectarine", "orange", "peach", "quince", "raspberry",
	"strawberry", "tangerine", "ugni", "voavanga", "watermelon",
	"ximenia", "yuzu", "zarzamora",
}

// seed inserts x numbered variants of every seed word, e.g. "apple0".
func (s *session) seed(x int) {
	start := time.Now()
	count := 0

	// Randomize the order of words for a more realistic workload
	shuffled := make([]string, len(seedWords))
	copy(shuffled, seedWords)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i := 0; i < x; i++ {
		for _, word := range shuffled {
			datum := fmt.Sprintf("%s%d", word, i)
			if err := s.filter.Insert([]byte(datum)); err != nil {
				common.Logf("seed error: %v\n", err)
				return
			}
			count++
			s.inserted++
		}
	}

	avgPerEntry := time.Since(start) / time.Duration(count)
	common.LogDuration(start, "seeded %d entries (%d * %d) - %v/entry",
		count, len(seedWords), x, avgPerEntry)
}
