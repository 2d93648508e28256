package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// Recognized tag names. Anything else spelled like a tag is literal text.
var recognizedTags = map[string]bool{
	"code":       true,
	"nowiki":     true,
	"tt":         true,
	"div":        true,
	"ref":        true,
	"references": true,
}

// Delimiters that may appear inside an inline construct. A delimiter whose
// trimmed spelling is not in this set is block-scoped.
var inlineDelims = map[string]bool{
	"''": true, "'''": true,
	"[": true, "]": true,
	"[[": true, "]]": true,
	"{{": true, "}}": true,
	"|": true,
}

var (
	openTagRe    = regexp.MustCompile(`^<([a-zA-Z0-9_]+)(?:[ \t]+([^/>][^>]*))?[ \t]*(/)?>`)
	closeTagRe   = regexp.MustCompile(`^</([a-zA-Z0-9_]+)[ \t]*>`)
	nowikiEndRe  = regexp.MustCompile(`</nowiki[ \t]*>`)
	urlPrefixRe  = regexp.MustCompile(`^https?://`)
)

// tokenizer converts the line source into a finite token sequence.
// It is single-use: one run per parse.
type tokenizer struct {
	src  LineSource
	opts Options

	line string
	pos  int
	toks []wikiast.Token
}

// tokenize reads the whole source and returns the token list, ending in a
// TokEOF token. Under strict options a malformed tag attribute string is an
// error; otherwise the offending tag degrades to literal text.
func tokenize(src LineSource, opts Options) ([]wikiast.Token, error) {
	t := &tokenizer{src: src, opts: opts}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.toks, nil
}

func (t *tokenizer) run() error {
	for {
		if t.line == "" || t.pos >= len(t.line) {
			line, err := t.src.NextLine()
			if err != nil || line == "" {
				t.emit(wikiast.Token{Kind: wikiast.TokEOF})
				return nil
			}
			t.line, t.pos = line, 0
			t.opts.trace(100, "LINE: %q", line)
		}

		if t.pos == 0 && t.line == "\n" {
			t.emit(wikiast.Token{Kind: wikiast.TokNewline, Content: "\n"})
			t.pos = 1
			continue
		}

		d, ok := t.findDelim()
		if !ok {
			t.finishLine()
			continue
		}

		if d.start > t.pos {
			t.emit(wikiast.TextToken(t.line[t.pos:d.start]))
		}
		t.pos = d.start

		if t.line[d.start] == '<' {
			if err := t.scanTag(); err != nil {
				return err
			}
			continue
		}

		tok := wikiast.Token{
			Kind:         wikiast.TokDelim,
			Content:      d.content,
			Raw:          t.line[d.start:d.end],
			IsBlock:      !inlineDelims[d.content],
			Continuation: d.continuation,
		}
		if tok.Raw == tok.Content {
			tok.Raw = ""
		}
		t.emit(tok)
		t.pos = d.end
	}
}

// delim is one recognized markup delimiter occurrence within the line.
type delim struct {
	start, end   int
	content      string
	continuation bool
}

// findDelim locates the next delimiter at or after the cursor. Line-start
// constructs (headers, the rule line, environment markers) are only
// recognized at position zero; everything else anywhere in the line.
func (t *tokenizer) findDelim() (delim, bool) {
	line := t.line
	if t.pos == 0 {
		if d, ok := lineStartDelim(line); ok {
			return d, true
		}
	}
	for i := t.pos; i < len(line); i++ {
		switch line[i] {
		case '<':
			return delim{start: i, end: i + 1, content: "<"}, true
		case '[':
			if i+1 < len(line) && line[i+1] == '[' {
				return delim{start: i, end: i + 2, content: "[["}, true
			}
			return delim{start: i, end: i + 1, content: "["}, true
		case ']':
			if i+1 < len(line) && line[i+1] == ']' {
				return delim{start: i, end: i + 2, content: "]]"}, true
			}
			return delim{start: i, end: i + 1, content: "]"}, true
		case '{':
			if i+1 < len(line) && line[i+1] == '{' {
				return delim{start: i, end: i + 2, content: "{{"}, true
			}
		case '}':
			if i+1 < len(line) && line[i+1] == '}' {
				return delim{start: i, end: i + 2, content: "}}"}, true
			}
		case '|':
			return delim{start: i, end: i + 1, content: "|"}, true
		case '\'':
			if i+1 < len(line) && line[i+1] == '\'' {
				n := 2
				if i+2 < len(line) && line[i+2] == '\'' {
					n = 3
				}
				return delim{start: i, end: i + n, content: line[i : i+n]}, true
			}
		case '=', ' ', '\t':
			if d, ok := headerCloseAt(line, i); ok {
				return d, true
			}
		}
	}
	return delim{}, false
}

// lineStartDelim recognizes constructs anchored to the start of a line:
// a header-open run, the exact "----" rule line, and environment markers.
func lineStartDelim(line string) (delim, bool) {
	body := strings.TrimSuffix(line, "\n")
	switch line[0] {
	case '=':
		n := runLen(line, 0, '=')
		if n < 2 {
			return delim{}, false
		}
		end := n
		for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
			end++
		}
		return delim{start: 0, end: end, content: line[:n]}, true
	case '-':
		if body != "----" {
			return delim{}, false
		}
		return delim{start: 0, end: len(body), content: "----"}, true
	case '*', '#', ';', ':':
		n := runLen(line, 0, line[0])
		d := delim{start: 0, end: n, content: line[:n]}
		if n < len(line) && line[n] == ':' && line[0] != ':' {
			d.continuation = true
			d.end++
		}
		for d.end < len(line) && (line[d.end] == ' ' || line[d.end] == '\t') {
			d.end++
		}
		return d, true
	}
	return delim{}, false
}

// headerCloseAt matches "blanks, a run of two or more '=', blanks, end of
// line" starting at index i.
func headerCloseAt(line string, i int) (delim, bool) {
	j := i
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	n := runLen(line, j, '=')
	if n < 2 {
		return delim{}, false
	}
	content := line[j : j+n]
	j += n
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	if j != len(line) && line[j] != '\n' {
		return delim{}, false
	}
	return delim{start: i, end: j, content: content}, true
}

func runLen(s string, i int, b byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == b {
		n++
	}
	return n
}

// scanTag handles a '<' at the cursor: open tag, close tag, nowiki raw-copy
// mode, or a literal '<'.
func (t *tokenizer) scanTag() error {
	rest := t.line[t.pos:]
	if m := openTagRe.FindStringSubmatch(rest); m != nil {
		full, name, argstr, closed := m[0], m[1], m[2], m[3]
		end := t.pos + len(full)
		switch {
		case name == "nowiki":
			t.pos = end
			if closed == "" {
				t.rawCopyNowiki()
			}
		case recognizedTags[name]:
			attrs, err := wikiast.ParseTagAttributes(argstr)
			if err != nil {
				if t.opts.Strict {
					return fmt.Errorf("tokenize %q: %w", full, err)
				}
				t.emit(wikiast.TextToken(full))
				t.pos = end
				return nil
			}
			t.emit(wikiast.Token{
				Kind:       wikiast.TokOpenTag,
				Tag:        name,
				Attrs:      attrs,
				IsBlock:    end < len(t.line) && t.line[end] == '\n',
				Raw:        full,
				SelfClosed: closed != "",
			})
			if closed != "" {
				t.emit(wikiast.Token{Kind: wikiast.TokCloseTag, Tag: name, Raw: full})
			}
			t.pos = end
		default:
			t.emit(wikiast.TextToken(full))
			t.pos = end
		}
		return nil
	}
	if m := closeTagRe.FindStringSubmatch(rest); m != nil {
		name := m[1]
		if recognizedTags[name] {
			t.emit(wikiast.Token{Kind: wikiast.TokCloseTag, Tag: name, Raw: m[0]})
		} else {
			t.emit(wikiast.TextToken(m[0]))
		}
		t.pos += len(m[0])
		return nil
	}
	t.emit(wikiast.TextToken("<"))
	t.pos++
	return nil
}

// rawCopyNowiki copies input verbatim as text until the matching close tag,
// scanning across line boundaries. End of input ends the mode silently.
func (t *tokenizer) rawCopyNowiki() {
	for {
		if t.pos >= len(t.line) {
			line, err := t.src.NextLine()
			if err != nil || line == "" {
				return
			}
			t.line, t.pos = line, 0
		}
		if loc := nowikiEndRe.FindStringIndex(t.line[t.pos:]); loc != nil {
			if loc[0] > 0 {
				t.emit(wikiast.TextToken(t.line[t.pos : t.pos+loc[0]]))
			}
			t.pos += loc[1]
			return
		}
		t.emit(wikiast.TextToken(t.line[t.pos:]))
		t.pos = len(t.line)
	}
}

// finishLine emits the trailing text and newline of the current line once
// no further delimiter is found.
func (t *tokenizer) finishLine() {
	rest := t.line[t.pos:]
	if strings.HasSuffix(rest, "\n") {
		if body := rest[:len(rest)-1]; body != "" {
			t.emit(wikiast.TextToken(body))
		}
		t.emit(wikiast.Token{Kind: wikiast.TokNewline, Content: "\n"})
	} else if rest != "" {
		t.emit(wikiast.TextToken(rest))
	}
	t.pos = len(t.line)
}

func (t *tokenizer) emit(tok wikiast.Token) {
	t.opts.trace(100, "TOK: %s %q", tok.Kind, tok.Literal())
	t.toks = append(t.toks, tok)
}
