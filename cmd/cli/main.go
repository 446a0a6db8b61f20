package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"

	"sieve/internal/common"
	"sieve/internal/filter"
	"sieve/internal/hashfn"
)

func main() {
	size := pflag.Uint64("size", 1<<20, "number of bits in the filter")
	k := pflag.Uint32("k", 5, "hash positions per datum")
	hashName := pflag.String("hash", hashfn.Default, "base hash ("+strings.Join(hashfn.Names(), ", ")+")")
	words := pflag.String("words", "", "file with one datum per line to load at start")
	verbose := pflag.BoolP("verbose", "v", false, "log every inserted datum")
	pflag.Parse()

	logger := common.SetupLogger("cli", *verbose)

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

	s := &session{filter: bf, hashName: *hashName}

	fmt.Println("sieve - bloom filter shell")
	fmt.Printf("config: size=%d k=%d hash=%s\n", *size, *k, *hashName)
	fmt.Println("commands: insert <datum> | query <datum> | load <file> | seed <x> | estimate <n> | plan <n> <p> | stats | dump [bits] | history [n] | exit")

	if *words != "" {
		s.exec("load " + *words)
	}

	hist, err := newHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	if hist != nil {
		for _, cmd := range hist.list(0) {
			line.AppendHistory(cmd)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if hist != nil {
			hist.add(input)
		}

		if strings.Fields(input)[0] == "history" {
			printHistory(hist, input)
			continue
		}
		if s.exec(input) {
			break
		}
	}

	if hist != nil {
		if err := hist.save(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save history: %v\n", err)
		}
	}
}
