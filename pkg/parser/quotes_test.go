package parser

import (
	"testing"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// quoteRuns returns the contents of the quote-run delimiters left in toks
// after fixup, in order.
func quoteRuns(toks []wikiast.Token) []string {
	var runs []string
	for _, t := range toks {
		if isQuoteRun(t) {
			runs = append(runs, t.Content)
		}
	}
	return runs
}

func TestFixupQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"balanced italic", "''a''\n", []string{"''", "''"}},
		{"balanced bold", "'''a'''\n", []string{"'''", "'''"}},
		{"italic inside bold", "'''a ''b'' c'''\n", []string{"'''", "''", "''", "'''"}},
		{"bold inside italic", "''a '''b''' c''\n", []string{"''", "'''", "'''", "''"}},
		// Adjacent openers pair with the closers inside-out, so the two
		// opening runs swap.
		{"adjacent openers bold first", "'''''a''' b''\n", []string{"''", "'''", "'''", "''"}},
		{"adjacent openers italic first", "'''''a'' b'''\n", []string{"'''", "''", "''", "'''"}},
		// Adjacent closers likewise.
		{"adjacent closers italic inner", "'''a ''b'''''\n", []string{"'''", "''", "''", "'''"}},
		{"adjacent closers bold inner", "''a '''b'''''\n", []string{"''", "'''", "'''", "''"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks := lex(t, tc.input)
			fixupQuotes(toks)
			got := quoteRuns(toks)
			if len(got) != len(tc.want) {
				t.Fatalf("quote runs = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("quote runs = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFixupQuotesUnmatched(t *testing.T) {
	toks := lex(t, "''abc\n")
	fixupQuotes(toks)
	if runs := quoteRuns(toks); len(runs) != 0 {
		t.Fatalf("unmatched run survived fixup: %v", runs)
	}
	if toks[0].Kind != wikiast.TokText || toks[0].Content != "''" {
		t.Errorf("unmatched run = %s %q, want TEXT %q", toks[0].Kind, toks[0].Content, "''")
	}
}

func TestFixupQuotesUnmatchedAmongMatched(t *testing.T) {
	// The stray bold opener degrades, the italic pair survives.
	toks := lex(t, "''a'' '''b\n")
	fixupQuotes(toks)
	runs := quoteRuns(toks)
	if len(runs) != 2 || runs[0] != "''" || runs[1] != "''" {
		t.Fatalf("quote runs = %v, want ['' '']", runs)
	}
}
