// Package source streams data items, one per line, from a text input.
package source

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
)

// LineSource yields the non-blank lines of a reader with surrounding
// whitespace trimmed. The underlying reader is consumed once; ranging over
// All a second time yields nothing new.
type LineSource struct {
	r      io.Reader
	closer io.Closer
	err    error
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

// Open returns a LineSource over the file at path. Close releases the file.
func Open(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &LineSource{r: f, closer: f}, nil
}

// All returns a lazy sequence of lines. Each yielded slice is owned by the
// caller. Read errors end the sequence early and are reported by Err.
func (s *LineSource) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		scanner := bufio.NewScanner(s.r)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			if !yield(bytes.Clone(line)) {
				return
			}
		}
		s.err = scanner.Err()
	}
}

// Err returns the first read error encountered by All, if any.
func (s *LineSource) Err() error {
	return s.err
}

func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
