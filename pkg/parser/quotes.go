package parser

import "github.com/yaklabco/wikitext/pkg/wikiast"

func isQuoteRun(t wikiast.Token) bool {
	return t.Kind == wikiast.TokDelim && (t.Content == "''" || t.Content == "'''")
}

// fixupQuotes resolves the pairing ambiguity of italic/bold quote runs in
// place, before parsing. The three constructions it disambiguates:
//
//	1a. '''a b ''c'' d'''      1b. ''a b '''c''' d''
//	2a. '''''a b'' c d'''      2b. '''''a b''' c d''
//	3a. '''a b ''c d'''''      3b. ''a b '''c d'''''
//
// Case 1 pops the matching opener; case 2 swaps the two adjacent stacked
// openers; case 3 swaps the current and the following delimiter. Every
// quote run still unmatched after the scan is rewritten to literal text, so
// each quote-run delimiter reaching the parser has a real partner.
func fixupQuotes(toks []wikiast.Token) {
	var stack []int
	for i := range toks {
		if !isQuoteRun(toks[i]) {
			continue
		}
		if len(stack) == 0 {
			stack = append(stack, i)
			continue
		}
		top := stack[len(stack)-1]
		switch {
		case toks[top].Content == toks[i].Content:
			stack = stack[:len(stack)-1]
		case len(stack) >= 2 && stack[len(stack)-2]+1 == top:
			under := stack[len(stack)-2]
			toks[under], toks[top] = toks[top], toks[under]
			stack = stack[:len(stack)-1]
		case i+1 < len(toks) && isQuoteRun(toks[i+1]) &&
			toks[top].Content == toks[i+1].Content:
			toks[i], toks[i+1] = toks[i+1], toks[i]
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, i)
		}
	}
	for _, i := range stack {
		toks[i] = toks[i].AsText()
	}
}
