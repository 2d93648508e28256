// Package wikiast defines the token and node model for wiki markup.
//
// Tokens are produced once by the tokenizer and owned by a single parse;
// the parser may rewrite a token slot in place when a speculative parse
// fails. Nodes form an immutable tree once the parse returns.
package wikiast

// TokenKind classifies a token in the wiki markup source.
type TokenKind uint8

// Token kinds.
const (
	TokEOF TokenKind = iota
	TokNewline
	TokText
	TokDelim
	TokOpenTag
	TokCloseTag
)

// String returns the kind tag used in trace output.
func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokNewline:
		return "NL"
	case TokText:
		return "TEXT"
	case TokDelim:
		return "DELIM"
	case TokOpenTag:
		return "OTAG"
	case TokCloseTag:
		return "CTAG"
	default:
		return "UNDEF"
	}
}

// Token represents one classified span of the source.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Content is the canonical spelling: text content for TokText, the
	// trimmed delimiter spelling for TokDelim.
	Content string

	// Raw is the literal source spelling, including whitespace swallowed
	// around delimiter runs. Degrading a token to literal text uses Raw so
	// the original input is reproduced. Empty means Raw == Content.
	Raw string

	// IsBlock marks delimiters and tags that cannot appear inside an
	// inline construct.
	IsBlock bool

	// Continuation marks an environment marker spelled with a trailing ':'
	// (";:", "*:", "#:"), which continues the previous element instead of
	// starting a new one.
	Continuation bool

	// Tag is the tag name for TokOpenTag and TokCloseTag.
	Tag string

	// Attrs holds the parsed attribute string of an open tag.
	Attrs *TagAttributes

	// SelfClosed is set on an open tag spelled <name ... />.
	SelfClosed bool
}

// Literal returns the original source spelling of the token.
func (t Token) Literal() string {
	if t.Raw != "" {
		return t.Raw
	}
	return t.Content
}

// AsText returns a text token holding the literal spelling of t.
// It is the degraded form used when a speculative parse fails.
func (t Token) AsText() Token {
	return Token{Kind: TokText, Content: t.Literal()}
}

// TextToken returns a plain text token.
func TextToken(content string) Token {
	return Token{Kind: TokText, Content: content}
}
