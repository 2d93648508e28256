package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// SectioningModel selects the Texinfo structuring commands used for
// headings.
type SectioningModel string

// Sectioning models.
const (
	SectionNumbered   SectioningModel = "numbered"
	SectionUnnumbered SectioningModel = "unnumbered"
	SectionAppendix   SectioningModel = "appendix"
	SectionHeading    SectioningModel = "heading"
)

// Heading commands per model, indexed by effective heading level.
var sectioningCommands = map[SectioningModel][]string{
	SectionNumbered: {
		"@top",
		"@chapter",
		"@section",
		"@subsection",
		"@subsubsection",
	},
	SectionUnnumbered: {
		"@top",
		"@unnumbered",
		"@unnumberedsec",
		"@unnumberedsubsec",
		"@unnumberedsubsubsec",
	},
	SectionAppendix: {
		"@top",
		"@appendix",
		"@appendixsec",
		"@appendixsubsec",
		"@appendixsubsubsec",
	},
	SectionHeading: {
		"@majorheading",
		"@chapheading",
		"@heading",
		"@subheading",
		"@subsubheading",
	},
}

// TexinfoOptions configure the Texinfo renderer.
type TexinfoOptions struct {
	Options

	// SectioningModel picks the heading command set. Empty means numbered.
	SectioningModel SectioningModel

	// SectioningStart shifts heading levels down by this many positions,
	// 0 through 4.
	SectioningStart int
}

// Texinfo renders a document as Texinfo source.
type Texinfo struct {
	opts     TexinfoOptions
	sectcomm []string

	acc    *acc
	nested int
}

// NewTexinfo returns a Texinfo renderer, validating the sectioning options.
func NewTexinfo(opts TexinfoOptions) (*Texinfo, error) {
	opts.setDefaults()
	if opts.SectioningModel == "" {
		opts.SectioningModel = SectionNumbered
	}
	comm, ok := sectioningCommands[opts.SectioningModel]
	if !ok {
		return nil, fmt.Errorf("invalid sectioning model %q", opts.SectioningModel)
	}
	if opts.SectioningStart < 0 || opts.SectioningStart > 4 {
		return nil, fmt.Errorf("invalid sectioning start %d", opts.SectioningStart)
	}
	return &Texinfo{opts: opts, sectcomm: comm}, nil
}

// Render returns the document as Texinfo source.
func (r *Texinfo) Render(doc *wikiast.Document) string {
	r.acc = &acc{}
	r.nested = 0
	for _, n := range doc.Nodes {
		r.render(n)
	}
	r.acc.trimPara()
	return r.acc.String()
}

var texiEscaper = strings.NewReplacer("@", "@@", "{", "@{", "}", "@}")

// emit appends escaped text to the output.
func (r *Texinfo) emit(text string) {
	r.acc.write(texiEscaper.Replace(text))
}

// emitRaw appends text without escaping.
func (r *Texinfo) emitRaw(text string) {
	r.acc.write(text)
}

// breakLine ensures the output is at the start of a line.
func (r *Texinfo) breakLine() {
	if !r.acc.endsWith("\n") {
		r.acc.write("\n")
	}
}

// capture renders through f into a fresh accumulator and returns the
// produced text, restoring the previous accumulator afterwards.
func (r *Texinfo) capture(f func()) string {
	save := r.acc
	r.acc = &acc{}
	f()
	s := r.acc.String()
	r.acc = save
	return s
}

func (r *Texinfo) render(n wikiast.Node) {
	switch n := n.(type) {
	case *wikiast.TextNode:
		r.emit(n.Content)
	case *wikiast.SeqNode:
		for _, c := range n.Children {
			r.render(c)
		}
	case *wikiast.FontNode:
		comm := "@i{"
		if n.Style == wikiast.FontBold {
			comm = "@b{"
		}
		r.emitRaw(comm)
		for _, c := range n.Children {
			r.render(c)
		}
		r.emitRaw("}")
	case *wikiast.HeadingNode:
		r.renderHeading(n)
	case *wikiast.RuleNode:
		r.emit("\n-----\n")
	case *wikiast.ParaNode:
		if !r.acc.inNewPara() {
			r.breakLine()
			r.emit("\n")
		}
		for _, c := range n.Children {
			r.render(c)
		}
		if !r.acc.inNewPara() {
			r.breakLine()
			r.emit("\n")
		}
	case *wikiast.PreNode:
		if r.nested == 0 {
			r.breakLine()
			r.emitRaw("@example\n")
		}
		for _, c := range n.Children {
			r.render(c)
		}
		if r.nested == 0 {
			r.breakLine()
			r.emitRaw("@end example\n")
		}
	case *wikiast.IndentNode:
		r.breakLine()
		r.emitRaw(strings.Repeat("@w{ }", n.Level))
		r.render(n.Content)
		r.breakLine()
	case *wikiast.EnvNode:
		r.renderEnv(n)
	case *wikiast.LinkNode:
		r.renderLink(n)
	case *wikiast.RefNode:
		text := r.capture(func() { r.render(n.Content) })
		if text != "" {
			r.emitRaw(fmt.Sprintf("@uref{%s,%s}", n.Target, text))
		} else {
			r.emitRaw(fmt.Sprintf("@uref{%s}", n.Target))
		}
	case *wikiast.TagNode:
		r.renderTag(n)
	}
}

func (r *Texinfo) renderHeading(n *wikiast.HeadingNode) {
	idx := n.Level - r.opts.SectioningStart
	if idx < 0 || idx >= len(r.sectcomm) {
		r.breakLine()
		r.emitRaw("@* ")
		r.render(n.Content)
	} else {
		r.breakLine()
		r.emitRaw(r.sectcomm[idx] + " ")
		r.render(n.Content)
		r.breakLine()
		if r.sectcomm[0] == "@top" {
			r.emitRaw("@node ")
			r.render(n.Content)
			r.emit("\n")
		}
	}
	r.breakLine()
}

func (r *Texinfo) renderEnv(n *wikiast.EnvNode) {
	switch n.EnvType {
	case wikiast.EnvUnnumbered, wikiast.EnvNumbered:
		begin, end := "@itemize @bullet\n", "@end itemize\n"
		if n.EnvType == wikiast.EnvNumbered {
			begin, end = "@enumerate\n", "@end enumerate\n"
		}
		r.breakLine()
		r.emitRaw(begin)
		for _, item := range n.Items {
			r.breakLine()
			r.emitRaw("@item ")
			r.render(item.Content)
			r.breakLine()
			r.emit("\n")
		}
		r.breakLine()
		r.emitRaw(end)
	case wikiast.EnvDefinition:
		r.breakLine()
		r.emitRaw("@table @asis\n")
		for _, item := range n.Items {
			if item.Subtype == 0 {
				r.breakLine()
				r.emitRaw("@item ")
				r.render(item.Content)
				r.breakLine()
			} else {
				r.render(item.Content)
				r.breakLine()
				r.emit("\n")
			}
		}
		r.breakLine()
		r.emitRaw("@end table\n")
	}
}

func (r *Texinfo) renderLink(n *wikiast.LinkNode) {
	if len(n.Parts) == 0 {
		return
	}
	arg := r.capture(func() { r.render(n.Parts[0]) })
	var text string
	if len(n.Parts) > 1 {
		parts := make([]string, len(n.Parts))
		for i, p := range n.Parts {
			parts[i] = r.capture(func() { r.render(p) })
		}
		if suppressedTemplate(parts) {
			return
		}
		text = parts[1]
	}
	qual, _, _ := strings.Cut(arg, ":")
	if text != "" {
		r.emitRaw(fmt.Sprintf("@ref{%s,%s}", qual, text))
	} else {
		r.emitRaw(fmt.Sprintf("@ref{%s}", qual))
	}
}

func (r *Texinfo) renderTag(n *wikiast.TagNode) {
	switch n.Name {
	case "code", "tt":
		s := r.capture(func() {
			r.nested++
			r.render(n.Content)
			r.nested--
		})
		if n.IsBlock {
			r.breakLine()
			r.emitRaw("@example\n")
			r.emitRaw(s)
			r.breakLine()
			r.emitRaw("@end example\n")
		} else {
			r.emitRaw("@code{" + s + "}")
		}
	case "div":
		if id, ok := n.Attrs.Get("id"); ok {
			r.breakLine()
			r.emitRaw("@anchor{" + id + "}\n")
		}
		r.render(n.Content)
	case "ref":
		r.emitRaw("@footnote{")
		r.render(n.Content)
		r.emitRaw("}")
	case "references":
		// Footnotes are rendered inline, nothing to collect here.
	default:
		r.emit("<" + n.Name)
		if n.Attrs.Len() > 0 {
			r.emit(" " + n.Attrs.String())
		}
		r.emit(">")
		r.render(n.Content)
		r.emit("</" + n.Name + ">")
	}
}

// acc is the output accumulator: a list of appended chunks with cheap
// inspection and trimming of the tail, so renderers can ask "am I at the
// start of a line or paragraph" without joining the chunks.
type acc struct {
	parts []string
}

func (a *acc) write(s string) {
	if s != "" {
		a.parts = append(a.parts, s)
	}
}

func (a *acc) String() string {
	return strings.Join(a.parts, "")
}

func (a *acc) empty() bool {
	return len(a.parts) == 0
}

// tail returns the last n bytes of the accumulated output.
func (a *acc) tail(n int) string {
	var s string
	for i := len(a.parts) - 1; i >= 0 && n > 0; i-- {
		elt := a.parts[i]
		if len(elt) > n {
			elt = elt[len(elt)-n:]
		}
		s = elt + s
		n -= len(elt)
	}
	return s
}

func (a *acc) endsWith(s string) bool {
	return a.tail(len(s)) == s
}

// trim removes the last n bytes.
func (a *acc) trim(n int) {
	for len(a.parts) > 0 && n > 0 {
		last := a.parts[len(a.parts)-1]
		a.parts = a.parts[:len(a.parts)-1]
		if len(last) > n {
			a.parts = append(a.parts, last[:len(last)-n])
			return
		}
		n -= len(last)
	}
}

// trimPara removes one trailing paragraph separator.
func (a *acc) trimPara() {
	if a.endsWith("\n\n") {
		a.trim(2)
	}
}

func (a *acc) inNewPara() bool {
	return a.empty() || a.endsWith("\n\n")
}
