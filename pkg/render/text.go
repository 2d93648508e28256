package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// DefaultWidth is the output width used when TextOptions.Width is zero.
const DefaultWidth = 78

// TextOptions configure the plain text renderer.
type TextOptions struct {
	Options

	// Width limits output to this many columns. Zero means DefaultWidth.
	Width int

	// ShowURLs appends link targets in parentheses after the link text.
	ShowURLs bool
}

// Text renders a document as plain text: paragraphs are refilled to the
// output width, font modifications become ASCII conventions (_italic_,
// UPPER CASE bold), lists are drawn with dashes and numbers.
type Text struct {
	opts  TextOptions
	width int

	refs   []*wikiast.TagNode
	nested int
}

// NewText returns a plain text renderer with the given options.
func NewText(opts TextOptions) *Text {
	opts.setDefaults()
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	return &Text{opts: opts, width: width}
}

// Render returns the document as plain text.
func (r *Text) Render(doc *wikiast.Document) string {
	r.refs = doc.References
	r.nested = 0
	var b strings.Builder
	for _, n := range doc.Nodes {
		b.WriteString(r.render(n))
	}
	return b.String()
}

func (r *Text) renderAll(nodes []wikiast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.render(n))
	}
	return b.String()
}

func (r *Text) render(n wikiast.Node) string {
	switch n := n.(type) {
	case *wikiast.TextNode:
		return n.Content
	case *wikiast.SeqNode:
		s := ""
		for _, c := range n.Children {
			if len(s) > 1 && !endsInSpace(s) {
				s += " "
			}
			s += r.render(c)
		}
		return s
	case *wikiast.FontNode:
		if n.Style == wikiast.FontBold {
			s := ""
			for _, c := range n.Children {
				if strings.HasSuffix(s, ".") {
					s += "  "
				} else {
					s += " "
				}
				s += r.render(c)
			}
			return strings.ToUpper(s)
		}
		s := ""
		for _, c := range n.Children {
			if cs := r.render(c); cs != "" {
				s += " " + cs
			}
		}
		return "_" + strings.TrimLeft(s, " ") + "_"
	case *wikiast.HeadingNode:
		return "\n" + strings.Repeat("*", n.Level) + " " +
			strings.TrimLeft(r.render(n.Content), " ") + "\n\n"
	case *wikiast.RuleNode:
		w := r.width
		if w < 5 {
			w = 5
		}
		return "\n" + center(strings.Repeat("-", w-5), w-1) + "\n"
	case *wikiast.ParaNode:
		return r.fmtpara(r.renderAll(n.Children)) + "\n\n"
	case *wikiast.PreNode:
		return r.renderAll(n.Children) + "\n"
	case *wikiast.IndentNode:
		return strings.Repeat(" ", n.Level) + r.render(n.Content) + "\n"
	case *wikiast.EnvNode:
		return r.renderEnv(n)
	case *wikiast.LinkNode:
		s := r.renderLink(n)
		if n.Kind == wikiast.LinkTemplate && s != "" {
			return "[" + s + "]"
		}
		return s
	case *wikiast.RefNode:
		text := r.render(n.Content)
		if text != "" {
			return fmt.Sprintf("%s (see %s) ", text, n.Target)
		}
		return "see " + n.Target
	case *wikiast.TagNode:
		return r.renderTag(n)
	default:
		return ""
	}
}

func (r *Text) renderEnv(n *wikiast.EnvNode) string {
	lev := n.Level
	if lev > r.width-4 {
		lev = 1
	}
	s := ""
	num := 1
	for _, item := range n.Items {
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		x := r.render(item.Content)
		switch n.EnvType {
		case wikiast.EnvUnnumbered:
			s += indentText(lev, "- "+strings.TrimLeft(x, " "))
		case wikiast.EnvNumbered:
			s += indentText(lev, fmt.Sprintf("%d. %s", num, x))
			num++
		case wikiast.EnvDefinition:
			if item.Subtype == 0 {
				s += indentText(lev-1, x)
			} else {
				s += indentText(lev+3, x)
			}
		}
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
	}
	return s
}

func (r *Text) renderTag(n *wikiast.TagNode) string {
	switch n.Name {
	case "code":
		r.nested++
		s := r.render(n.Content)
		r.nested--
		return s
	case "ref":
		return fmt.Sprintf("[%d]", n.Index+1)
	case "references":
		s := "\nReferences:\n"
		for _, ref := range r.refs {
			s += fmt.Sprintf("[%d]. %s\n", ref.Index+1, r.render(ref.Content))
		}
		return s
	default:
		s := "<" + n.Name
		if n.Attrs.Len() > 0 {
			s += " " + n.Attrs.String()
		}
		return s + ">" + r.render(n.Content) + "</" + n.Name + ">"
	}
}

func (r *Text) renderLink(n *wikiast.LinkNode) string {
	if len(n.Parts) == 0 {
		return ""
	}
	arg := r.render(n.Parts[0])
	var text string
	if len(n.Parts) > 1 {
		parts := make([]string, len(n.Parts))
		for i, p := range n.Parts {
			parts[i] = r.render(p)
		}
		if suppressedTemplate(parts) {
			return ""
		}
		text = parts[1]
	}

	qual, tgt, cut := strings.Cut(arg, ":")
	var target string
	switch {
	case !cut || tgt == "":
		target = r.opts.target(arg, "")
	default:
		if ns, ok := wikiNamespace(r.opts.Lang, qual); ok {
			switch ns {
			case nsImage:
				if !r.opts.ShowURLs {
					return ""
				}
				label := text
				if label == "" {
					label = arg
				}
				text = fmt.Sprintf("[%s: %s]", qual, label)
				target = fmt.Sprintf("%s/%s/250px-%s", r.opts.ImageBase, urlQuote(tgt), urlQuote(tgt))
			case nsMedia:
				text = "[" + qual + "]"
				target = tgt
			default:
				target = r.opts.target(tgt, "")
			}
		} else if name, ok := languageNames[qual]; ok && n.Kind == wikiast.LinkPage {
			text = name + ": " + tgt
			target = r.opts.target(tgt, qual)
		} else {
			target = r.opts.target(tgt, "")
		}
	}
	if r.opts.ShowURLs {
		return fmt.Sprintf("%s (see %s) ", text, target)
	}
	if text == "" {
		return arg
	}
	return text
}

// fmtpara refills a paragraph greedily to the output width, putting two
// spaces after a sentence-ending period. Widths are measured in printable
// cells, so escape sequences and wide runes count correctly.
func (r *Text) fmtpara(input string) string {
	var out strings.Builder
	linebuf := ""
	length := 0
	for _, word := range strings.Fields(input) {
		wlen := ansi.PrintableRuneWidth(word)
		wsc := 0
		if linebuf != "" {
			if strings.HasSuffix(linebuf, ".") {
				wsc = 2
			} else {
				wsc = 1
			}
		}
		if length+wsc+wlen > r.width {
			out.WriteString(linebuf)
			out.WriteString("\n")
			wsc = 0
			length = 0
			linebuf = ""
		}
		linebuf += strings.Repeat(" ", wsc) + word
		length += wsc + wlen
	}
	return out.String() + linebuf
}

// endsInSpace reports whether s ends in a whitespace rune.
func endsInSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

// indentText prefixes each non-empty line of text with lev spaces.
func indentText(lev int, text string) string {
	if lev < 0 {
		lev = 0
	}
	pad := strings.Repeat(" ", lev)
	if !strings.Contains(text, "\n") {
		return pad + text
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			b.WriteString(pad)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	s := b.String()
	if !strings.HasSuffix(text, "\n") {
		s = strings.TrimRight(s, "\n")
	}
	return s
}

// center pads s with spaces to width cells, extra padding on the right.
func center(s string, width int) string {
	gap := width - ansi.PrintableRuneWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
