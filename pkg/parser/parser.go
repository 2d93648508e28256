package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// Options configure one parse.
type Options struct {
	// Strict makes malformed markup an error instead of degrading the
	// offending tokens to literal text.
	Strict bool

	// DebugLevel is the trace verbosity, 0 (silent) to 100 (every token).
	// Traces go to Logger at debug level.
	DebugLevel int

	// Logger receives trace output. Nil disables tracing.
	Logger *log.Logger
}

func (o Options) trace(lev int, format string, args ...any) {
	if o.DebugLevel >= lev && o.Logger != nil {
		o.Logger.Debugf(format, args...)
	}
}

// UnexpectedTokenError is returned under strict options when the input does
// not parse cleanly.
type UnexpectedTokenError struct {
	Token wikiast.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s token %q", e.Token.Kind, e.Token.Literal())
}

// Bracket delimiters with a defined closing counterpart, used by the
// failed-parse recovery scan.
var closeDelims = map[string]string{
	"[":  "]",
	"[[": "]]",
	"{{": "}}",
}

func envTypeOf(marker byte) (wikiast.EnvType, bool) {
	switch marker {
	case '*':
		return wikiast.EnvUnnumbered, true
	case '#':
		return wikiast.EnvNumbered, true
	case ';', ':':
		return wikiast.EnvDefinition, true
	default:
		return 0, false
	}
}

// envSubtype is 1 for definition bodies (':'), 0 for everything else.
func envSubtype(marker byte) int {
	if marker == ':' {
		return 1
	}
	return 0
}

// Parser holds the state of one parse: the owned token slice, the cursor,
// the mark stack and the footnote references seen so far. A Parser must not
// be shared across parses.
type Parser struct {
	opts Options

	toks        []wikiast.Token
	cursor      int
	marks       []int
	atLineStart bool

	refs []*wikiast.TagNode
}

// Parse tokenizes and parses the whole source.
func Parse(src LineSource, opts Options) (*wikiast.Document, error) {
	toks, err := tokenize(src, opts)
	if err != nil {
		return nil, err
	}
	fixupQuotes(toks)
	p := &Parser{opts: opts, toks: toks}
	return p.parse()
}

// ParseString parses an in-memory string.
func ParseString(text string, opts Options) (*wikiast.Document, error) {
	return Parse(NewStringSource(text), opts)
}

// ParseReader parses from a reader, line by line.
func ParseReader(r io.Reader, opts Options) (*wikiast.Document, error) {
	return Parse(NewReaderSource(r), opts)
}

func (p *Parser) parse() (*wikiast.Document, error) {
	doc := &wikiast.Document{}
	for {
		node, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	doc.References = p.refs
	return doc, nil
}

// Token cursor. next records whether the returned token starts a line;
// speculative parses save and restore the cursor through the mark stack.

func (p *Parser) next() wikiast.Token {
	p.atLineStart = p.cursor == 0 || p.toks[p.cursor-1].Kind == wikiast.TokNewline
	if p.cursor >= len(p.toks) {
		return wikiast.Token{Kind: wikiast.TokEOF}
	}
	tok := p.toks[p.cursor]
	p.cursor++
	return tok
}

func (p *Parser) peek(off int) wikiast.Token {
	i := p.cursor + off
	if i < 0 || i >= len(p.toks) {
		return wikiast.Token{Kind: wikiast.TokEOF}
	}
	return p.toks[i]
}

func (p *Parser) unread() {
	p.cursor--
	p.atLineStart = p.cursor == 0 || p.toks[p.cursor-1].Kind == wikiast.TokNewline
}

// unreadAs steps back one token and rewrites the slot.
func (p *Parser) unreadAs(tok wikiast.Token) {
	p.unread()
	p.toks[p.cursor] = tok
}

// rewriteLast replaces the most recently read token in place.
func (p *Parser) rewriteLast(tok wikiast.Token) {
	p.toks[p.cursor-1] = tok
}

func (p *Parser) pushMark() {
	p.marks = append(p.marks, p.cursor)
}

func (p *Parser) popMark() {
	p.cursor = p.marks[len(p.marks)-1]
	p.marks = p.marks[:len(p.marks)-1]
}

func (p *Parser) clearMark() {
	p.marks = p.marks[:len(p.marks)-1]
}

// isBlockEnd reports whether tok terminates the current block. A blank line
// before another blank line consumes the second; a block-flagged delimiter
// or tag is pushed back for the caller.
func (p *Parser) isBlockEnd(tok wikiast.Token) bool {
	switch tok.Kind {
	case wikiast.TokEOF:
		return true
	case wikiast.TokNewline:
		switch p.peek(0).Kind {
		case wikiast.TokEOF:
			return true
		case wikiast.TokNewline:
			p.next()
			return true
		}
	case wikiast.TokDelim, wikiast.TokOpenTag, wikiast.TokCloseTag:
		if tok.IsBlock {
			p.unread()
			return true
		}
	}
	return false
}

// parseBlock parses the next top-level block, or returns nil at the end of
// input.
func (p *Parser) parseBlock() (wikiast.Node, error) {
	tok := p.next()
	for tok.Kind == wikiast.TokNewline {
		tok = p.next()
	}
	switch {
	case tok.Kind == wikiast.TokEOF:
		return nil, nil
	case tok.Kind == wikiast.TokDelim:
		node, err := p.parseBlockDelim(tok)
		if err != nil {
			return nil, err
		}
		if node != nil {
			return node, nil
		}
		tok = p.next()
	case tok.Kind == wikiast.TokOpenTag && tok.IsBlock:
		return p.parseTag(tok)
	}
	return p.parsePara(tok)
}

// parseBlockDelim dispatches a block-flagged delimiter: rule, header,
// environment or indent. A failed header degrades its opening token and
// returns nil so the caller re-parses the line as a paragraph.
func (p *Parser) parseBlockDelim(tok wikiast.Token) (wikiast.Node, error) {
	p.opts.trace(80, "ENTER parseBlockDelim: %q", tok.Content)
	switch {
	case tok.Content == "----":
		return &wikiast.RuleNode{}, nil
	case strings.HasPrefix(tok.Content, "=="):
		node, err := p.parseHeader(tok)
		if err != nil {
			return nil, err
		}
		if node == nil {
			p.unreadAs(tok.AsText())
		}
		return node, nil
	default:
		if _, ok := envTypeOf(tok.Content[0]); ok {
			if tok.Content[0] == ':' {
				prev := p.peek(-2)
				if !(prev.Kind == wikiast.TokDelim && prev.Content == ";") {
					return p.parseIndent(tok)
				}
			}
			return p.parseEnv(tok)
		}
		p.unread()
		return nil, nil
	}
}

// parsePara reads a paragraph or preformatted block starting at tok. A
// block whose first token is text starting with a blank becomes
// preformatted; each kind terminates early when a line starts the other
// way.
func (p *Parser) parsePara(tok wikiast.Token) (wikiast.Node, error) {
	p.opts.trace(80, "ENTER parsePara: %q", tok.Literal())
	pre := tok.Kind == wikiast.TokText && startsWithBlank(tok.Content)

	var seq []wikiast.Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			seq = append(seq, &wikiast.TextNode{Content: text.String()})
			text.Reset()
		}
	}

	for !p.isBlockEnd(tok) {
		switch tok.Kind {
		case wikiast.TokText:
			if p.atLineStart && breaksBlock(pre, tok.Content) {
				p.unread()
				goto done
			}
			text.WriteString(tok.Content)
		case wikiast.TokNewline:
			text.WriteString("\n")
		case wikiast.TokOpenTag:
			flush()
			node, err := p.parseTag(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokDelim:
			flush()
			node, err := p.parseInlineDelim(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		default:
			if p.opts.Strict {
				return nil, &UnexpectedTokenError{Token: tok}
			}
			text.WriteString(tok.Literal())
		}
		tok = p.next()
	}
done:
	flush()
	if len(seq) == 0 {
		return nil, nil
	}
	if pre {
		return &wikiast.PreNode{Children: seq}, nil
	}
	return &wikiast.ParaNode{Children: seq}, nil
}

func startsWithBlank(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

// breaksBlock reports whether a line starting with this text ends the
// current block: a non-blank start ends a preformatted block, a blank start
// ends a paragraph.
func breaksBlock(pre bool, s string) bool {
	if s == "" {
		return false
	}
	if pre {
		return s[0] != ' ' && s[0] != '\t'
	}
	return s[0] == ' ' || s[0] == '\t'
}

// parseLine parses inline content up to the end of the line. It always
// succeeds, degrading block delimiters found mid-line to literal text.
func (p *Parser) parseLine() (*wikiast.SeqNode, error) {
	var seq []wikiast.Node
	for {
		tok := p.next()
		switch tok.Kind {
		case wikiast.TokNewline, wikiast.TokEOF:
			return &wikiast.SeqNode{Children: seq}, nil
		case wikiast.TokText:
			seq = append(seq, &wikiast.TextNode{Content: tok.Content})
		case wikiast.TokDelim:
			if tok.IsBlock {
				p.rewriteLast(tok.AsText())
				seq = append(seq, &wikiast.TextNode{Content: tok.Literal()})
				continue
			}
			node, err := p.parseInlineDelim(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokOpenTag:
			if tok.IsBlock {
				p.unread()
				return &wikiast.SeqNode{Children: seq}, nil
			}
			node, err := p.parseTag(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		default:
			seq = append(seq, &wikiast.TextNode{Content: tok.Literal()})
		}
	}
}

// parseIndent wraps one parsed line in an indent whose level is the marker
// run length.
func (p *Parser) parseIndent(tok wikiast.Token) (wikiast.Node, error) {
	line, err := p.parseLine()
	if err != nil {
		return nil, err
	}
	return &wikiast.IndentNode{Level: len(tok.Content), Content: line}, nil
}

// parseFontMod speculatively parses an italic or bold run opened by delim.
// A nil node means the run did not close within the block.
func (p *Parser) parseFontMod(delim string, style wikiast.FontStyle) (wikiast.Node, error) {
	var seq []wikiast.Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			seq = append(seq, &wikiast.TextNode{Content: text.String()})
			text.Reset()
		}
	}
	for {
		tok := p.next()
		switch {
		case tok.Kind == wikiast.TokText:
			text.WriteString(tok.Content)
		case p.isBlockEnd(tok):
			return nil, nil
		case tok.Kind == wikiast.TokDelim:
			if tok.Content == delim {
				flush()
				return &wikiast.FontNode{Style: style, Children: seq}, nil
			}
			flush()
			node, err := p.parseInlineDelim(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case tok.Kind == wikiast.TokNewline:
			flush()
			seq = append(seq, &wikiast.TextNode{Content: "\n"})
		default:
			return nil, nil
		}
	}
}

// parseRef speculatively parses a bracketed URL reference. The opening text
// must look like a URL or the parse is not recognized.
func (p *Parser) parseRef() (wikiast.Node, error) {
	tok := p.next()
	if tok.Kind != wikiast.TokText || !urlPrefixRe.MatchString(tok.Content) {
		return nil, nil
	}
	target, rest, _ := strings.Cut(tok.Content, " ")
	var seq []wikiast.Node
	if rest != "" {
		seq = append(seq, &wikiast.TextNode{Content: rest})
	}
	for {
		tok = p.next()
		if tok.Kind == wikiast.TokEOF || p.isBlockEnd(tok) {
			return nil, nil
		}
		switch tok.Kind {
		case wikiast.TokDelim:
			if tok.Content == "]" {
				return &wikiast.RefNode{
					Target:  target,
					Content: &wikiast.SeqNode{Children: seq},
				}, nil
			}
			node, err := p.parseInlineDelim(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokOpenTag:
			node, err := p.parseTag(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokText:
			seq = append(seq, &wikiast.TextNode{Content: tok.Content})
		default:
			seq = append(seq, &wikiast.TextNode{Content: tok.Literal()})
		}
	}
}

// parseLink speculatively parses a [[...]] link or {{...}} template up to
// the matching close delimiter, splitting the content on top-level '|'.
// Links do not span lines: any non-text token fails the parse.
func (p *Parser) parseLink(kind wikiast.LinkKind, close string) (wikiast.Node, error) {
	var parts []wikiast.Node
	var cur []wikiast.Node
	for {
		tok := p.next()
		switch tok.Kind {
		case wikiast.TokDelim:
			switch tok.Content {
			case close:
				if len(cur) > 0 {
					parts = append(parts, &wikiast.SeqNode{Children: cur})
				}
				return &wikiast.LinkNode{Kind: kind, Parts: parts}, nil
			case "|":
				if len(cur) > 1 {
					parts = append(parts, &wikiast.SeqNode{Children: cur})
				} else if len(cur) == 1 {
					parts = append(parts, cur[0])
				}
				cur = nil
			default:
				node, err := p.parseInlineDelim(tok)
				if err != nil {
					return nil, err
				}
				cur = append(cur, node)
			}
		case wikiast.TokText:
			cur = append(cur, &wikiast.TextNode{Content: tok.Content})
		default:
			return nil, nil
		}
	}
}

// parseInlineDelim parses an inline construct opened by tok. On speculative
// failure the cursor is restored, the opening token degrades to its literal
// spelling, and for bracket pairs the first unmatched closer ahead degrades
// too, so a dangling closer cannot open an unrelated construct later.
func (p *Parser) parseInlineDelim(tok wikiast.Token) (wikiast.Node, error) {
	p.opts.trace(80, "ENTER parseInlineDelim: %q", tok.Content)
	p.pushMark()
	var node wikiast.Node
	var err error
	switch tok.Content {
	case "''":
		node, err = p.parseFontMod("''", wikiast.FontItalic)
	case "'''":
		node, err = p.parseFontMod("'''", wikiast.FontBold)
	case "[":
		node, err = p.parseRef()
	case "[[":
		node, err = p.parseLink(wikiast.LinkPage, "]]")
	case "{{":
		node, err = p.parseLink(wikiast.LinkTemplate, "}}")
	}
	if err != nil {
		p.popMark()
		return nil, err
	}
	if node != nil {
		p.clearMark()
		return node, nil
	}

	p.popMark()
	if p.opts.Strict {
		return nil, &UnexpectedTokenError{Token: tok}
	}
	p.opts.trace(80, "delimiter recovery: %q", tok.Content)
	text := tok.AsText()
	p.rewriteLast(text)
	if close, ok := closeDelims[tok.Content]; ok {
		depth := 0
	scan:
		for i := p.cursor; i < len(p.toks); i++ {
			t := p.toks[i]
			switch {
			case t.Kind == wikiast.TokEOF:
				break scan
			case t.Kind != wikiast.TokDelim:
				continue
			case t.Content == tok.Content:
				depth++
			case t.Content == close:
				if depth == 0 {
					p.toks[i] = t.AsText()
					break scan
				}
				depth--
			}
		}
	}
	return &wikiast.TextNode{Content: text.Content}, nil
}

// literalNode converts a raw token to the text node used when structured
// parsing inside a tag gives up on it.
func literalNode(tok wikiast.Token) wikiast.Node {
	if tok.Kind == wikiast.TokNewline {
		return &wikiast.TextNode{Content: "\n"}
	}
	return &wikiast.TextNode{Content: tok.Literal()}
}

// parseTag parses the content of an open tag up to its matching close tag.
// Content is parsed as nested structure; an unterminated tag degrades to
// the literal open-tag text. Completing a "ref" tag assigns the next
// footnote index of this parse.
func (p *Parser) parseTag(tag wikiast.Token) (wikiast.Node, error) {
	p.opts.trace(80, "ENTER parseTag: %q", tag.Tag)
	var seq []wikiast.Node
	p.pushMark()
	for {
		tok := p.next()
		switch tok.Kind {
		case wikiast.TokEOF:
			p.popMark()
			return &wikiast.TextNode{Content: tag.Literal()}, nil
		case wikiast.TokCloseTag:
			if tok.Tag == tag.Tag {
				p.clearMark()
				node := &wikiast.TagNode{
					Name:    tag.Tag,
					Attrs:   tag.Attrs,
					IsBlock: tag.IsBlock,
					Content: &wikiast.SeqNode{Children: seq},
					Index:   -1,
				}
				if node.Name == "ref" {
					node.Index = len(p.refs)
					p.refs = append(p.refs, node)
				}
				return node, nil
			}
			p.rewriteLast(tok.AsText())
			seq = append(seq, &wikiast.TextNode{Content: tok.Literal()})
		case wikiast.TokDelim:
			var node wikiast.Node
			var err error
			if tok.IsBlock {
				node, err = p.parseBlockDelim(tok)
			} else {
				node, err = p.parseInlineDelim(tok)
			}
			if err != nil {
				return nil, err
			}
			if node == nil {
				node = literalNode(p.next())
			}
			seq = append(seq, node)
		case wikiast.TokOpenTag:
			node, err := p.parseTag(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokNewline:
			seq = append(seq, &wikiast.TextNode{Content: "\n"})
		default:
			seq = append(seq, &wikiast.TextNode{Content: tok.Content})
		}
	}
}

// parseEnv parses a list-like environment opened by tok. A shorter marker
// run ends it, a longer run nests, an equal run starts a new element unless
// the marker was a continuation, which extends the previous element.
func (p *Parser) parseEnv(tok wikiast.Token) (wikiast.Node, error) {
	envType, _ := envTypeOf(tok.Content[0])
	lev := len(tok.Content)
	p.opts.trace(80, "ENTER parseEnv(%s,%d)", envType, lev)
	var items []*wikiast.ElementNode
	for {
		et, sameKind := wikiast.EnvType(0), false
		if tok.Kind == wikiast.TokDelim && tok.Content != "" {
			et, sameKind = envTypeOf(tok.Content[0])
		}
		if !sameKind || et != envType || len(tok.Content) < lev {
			p.unread()
			break
		}
		if len(tok.Content) > lev {
			nested, err := p.parseEnv(tok)
			if err != nil {
				return nil, err
			}
			items = appendToElement(items, nested, envSubtype(tok.Content[0]))
		} else {
			line, err := p.parseLine()
			if err != nil {
				return nil, err
			}
			if tok.Continuation {
				items = appendToElement(items, line, envSubtype(tok.Content[0]))
			} else {
				items = append(items, &wikiast.ElementNode{
					Subtype: envSubtype(tok.Content[0]),
					Content: line,
				})
			}
		}
		tok = p.next()
	}
	return &wikiast.EnvNode{EnvType: envType, Level: lev, Items: items}, nil
}

// appendToElement merges a nested environment or continuation line into the
// last element's content sequence.
func appendToElement(items []*wikiast.ElementNode, node wikiast.Node, subtype int) []*wikiast.ElementNode {
	if len(items) == 0 {
		return append(items, &wikiast.ElementNode{Subtype: subtype, Content: node})
	}
	last := items[len(items)-1]
	seq, ok := last.Content.(*wikiast.SeqNode)
	if !ok {
		seq = &wikiast.SeqNode{Children: []wikiast.Node{last.Content}}
		last.Content = seq
	}
	seq.Children = append(seq.Children, node)
	return items
}

// parseHeader speculatively parses a header opened by a '=' run. Success
// requires the identical closing run followed by a newline; a block
// delimiter, block tag, newline or end of input fails the parse. When the
// closing run is present but no newline follows, the closing token degrades
// to literal text so the whole line re-parses as a paragraph.
func (p *Parser) parseHeader(tok wikiast.Token) (wikiast.Node, error) {
	p.opts.trace(80, "ENTER parseHeader: %q", tok.Content)
	delim := tok.Content
	p.pushMark()
	var seq []wikiast.Node
	for {
		t := p.next()
		switch t.Kind {
		case wikiast.TokText:
			seq = append(seq, &wikiast.TextNode{Content: t.Content})
		case wikiast.TokDelim:
			if t.Content == delim {
				if p.peek(0).Kind == wikiast.TokNewline {
					p.next()
					if p.peek(0).Kind == wikiast.TokNewline {
						p.next()
					}
					p.clearMark()
					return &wikiast.HeadingNode{
						Level:   len(delim),
						Content: &wikiast.SeqNode{Children: seq},
					}, nil
				}
				// Closing run with no newline: the input ends mid-line.
				// Degrade the closer so the line becomes one paragraph.
				p.rewriteLast(t.AsText())
				p.popMark()
				return nil, nil
			}
			if t.IsBlock {
				p.popMark()
				return nil, nil
			}
			node, err := p.parseInlineDelim(t)
			if err != nil {
				p.popMark()
				return nil, err
			}
			seq = append(seq, node)
		case wikiast.TokOpenTag:
			if t.IsBlock {
				p.popMark()
				return nil, nil
			}
			node, err := p.parseTag(t)
			if err != nil {
				p.popMark()
				return nil, err
			}
			seq = append(seq, node)
		default:
			// Newline or end of input before the closing run.
			p.popMark()
			return nil, nil
		}
	}
}
