// Package parser turns wiki markup into a wikiast.Document.
//
// The pipeline is: LineSource -> tokenizer -> quote-run fixup -> recursive
// descent over the owned token slice. All state is scoped to one Parse call;
// concurrent parses over separate calls are safe.
package parser

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields physical lines of input. Lines keep their trailing
// newline when the source has one; the final line of a source that does not
// end in a newline is yielded without one. Exhaustion is reported as io.EOF.
type LineSource interface {
	NextLine() (string, error)
}

type stringSource struct {
	lines []string
	next  int
}

// NewStringSource returns a LineSource over an in-memory string split on
// newlines. The original text is reproduced exactly, including a missing
// final newline.
func NewStringSource(text string) LineSource {
	if text == "" {
		return &stringSource{}
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return &stringSource{lines: parts}
}

func (s *stringSource) NextLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource returns a LineSource over an arbitrary reader. Input is
// buffered line by line; memory use is bounded by the longest line.
func NewReaderSource(r io.Reader) LineSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) NextLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if line == "" && err != nil {
		return "", io.EOF
	}
	return line, nil
}
