package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/wikitext/pkg/langdetect"
	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// HTML renders a document as an HTML fragment.
type HTML struct {
	opts Options

	// DetectCodeLanguage classifies the content of block code tags and
	// adds a language-NAME class to the generated <code> element.
	DetectCodeLanguage bool

	refs   []*wikiast.TagNode
	nested int
}

// NewHTML returns an HTML renderer with the given options.
func NewHTML(opts Options) *HTML {
	opts.setDefaults()
	return &HTML{opts: opts}
}

// Render returns the document as an HTML fragment.
func (r *HTML) Render(doc *wikiast.Document) string {
	r.refs = doc.References
	r.nested = 0
	var b strings.Builder
	for _, n := range doc.Nodes {
		b.WriteString(r.render(n))
	}
	return b.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}

func (r *HTML) renderAll(nodes []wikiast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.render(n))
	}
	return b.String()
}

func (r *HTML) render(n wikiast.Node) string {
	switch n := n.(type) {
	case *wikiast.TextNode:
		return htmlEscape(n.Content)
	case *wikiast.SeqNode:
		return r.renderAll(n.Children)
	case *wikiast.FontNode:
		tag := "i"
		if n.Style == wikiast.FontBold {
			tag = "b"
		}
		return "<" + tag + ">" + r.renderAll(n.Children) + "</" + tag + ">"
	case *wikiast.HeadingNode:
		level := n.Level
		if level > 6 {
			level = 6
		}
		return fmt.Sprintf("<h%d>%s</h%d>\n\n", level, r.render(n.Content), level)
	case *wikiast.RuleNode:
		return "<hr/>\n"
	case *wikiast.ParaNode:
		return "<p>" + r.renderAll(n.Children) + "</p>\n"
	case *wikiast.PreNode:
		s := r.renderAll(n.Children)
		if r.nested > 0 {
			return s
		}
		return "<pre>" + s + "</pre>"
	case *wikiast.IndentNode:
		return strings.Repeat("<dl><dd>", n.Level) +
			r.render(n.Content) +
			strings.Repeat("</dd></dl>", n.Level)
	case *wikiast.EnvNode:
		return r.renderEnv(n)
	case *wikiast.LinkNode:
		return r.renderLink(n)
	case *wikiast.RefNode:
		text := r.render(n.Content)
		if text == "" {
			text = n.Target
		}
		return fmt.Sprintf("<a href=%q>%s</a>", n.Target, text)
	case *wikiast.TagNode:
		return r.renderTag(n)
	default:
		return ""
	}
}

// Environment container and element tags, indexed by element subtype.
var htmlEnvTags = map[wikiast.EnvType]struct {
	hdr string
	elt []string
}{
	wikiast.EnvUnnumbered: {"ul", []string{"li"}},
	wikiast.EnvNumbered:   {"ol", []string{"li"}},
	wikiast.EnvDefinition: {"dl", []string{"dt", "dd"}},
}

func (r *HTML) renderEnv(n *wikiast.EnvNode) string {
	tags := htmlEnvTags[n.EnvType]
	var b strings.Builder
	for _, item := range n.Items {
		elt := tags.elt[0]
		if item.Subtype < len(tags.elt) {
			elt = tags.elt[item.Subtype]
		}
		b.WriteString("<" + elt + ">" + r.render(item.Content) + "</" + elt + ">")
	}
	return "<" + tags.hdr + ">" + b.String() + "</" + tags.hdr + ">"
}

func (r *HTML) renderTag(n *wikiast.TagNode) string {
	switch n.Name {
	case "code":
		r.nested++
		s := r.render(n.Content)
		r.nested--
		class := ""
		if r.DetectCodeLanguage && n.IsBlock {
			if lang := langdetect.Detect([]byte(plainText(n.Content))); lang != langdetect.Unknown {
				class = fmt.Sprintf(" class=%q", "language-"+lang)
			}
		}
		return "<pre><code" + class + ">" + s + "</code></pre>"
	case "ref":
		num := n.Index + 1
		return fmt.Sprintf(`<sup id="cite_ref-%d" class="reference"><a name="cite_ref-%d" href="#cite_note-%d">%d</a></sup>`,
			num, num, num, num)
	case "references":
		var b strings.Builder
		b.WriteString("<div class=\"references\">\n<ol class=\"references\">\n")
		for i, ref := range r.refs {
			fmt.Fprintf(&b, `<li id="cite_note-%d"><span class="mw-cite-backlink"><b><a href="#cite_ref-%d">^</a></b></span><span class="reference-text">%s</span></li>`,
				i+1, i+1, r.render(ref.Content))
			b.WriteString("\n")
		}
		b.WriteString("</ol>\n</div>\n")
		return b.String()
	default:
		s := "<" + n.Name
		if n.Attrs.Len() > 0 {
			s += " " + n.Attrs.String()
		}
		return s + ">" + r.render(n.Content) + "</" + n.Name + ">"
	}
}

var tmplNameRe = regexp.MustCompile(`^t[+-]$`)

func (r *HTML) renderLink(n *wikiast.LinkNode) string {
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
		text = `<span class="template">` + parts[1] + "</span>"
		if n.Kind == wikiast.LinkTemplate {
			switch {
			case tmplNameRe.MatchString(parts[0]):
				if len(parts) > 2 {
					text = parts[2]
				}
			case parts[0] == "term":
				text = tmplTerm(parts)
			case parts[0] == "proto":
				text = tmplProto(parts)
			}
			return text
		}
	}

	qual, tgt, cut := strings.Cut(arg, ":")
	var href string
	switch {
	case !cut || tgt == "":
		href = r.opts.target(arg, "")
	default:
		if ns, ok := wikiNamespace(r.opts.Lang, qual); ok {
			switch ns {
			case nsImage:
				return ""
			case nsMedia:
				href = r.opts.MediaBase + "/" + tgt
			default:
				href = r.opts.target(tgt, "")
			}
		} else if name, ok := languageNames[qual]; ok && n.Kind == wikiast.LinkPage {
			href = r.opts.target(tgt, qual)
			if text == "" {
				text = name
			}
		} else {
			href = r.opts.target(tgt, "")
		}
	}
	if text == "" {
		text = arg
	}
	return fmt.Sprintf("<a href=%q>%s</a>", href, text)
}

var tmplKeywordRe = regexp.MustCompile(`^(\w+)=`)

// tmplTerm renders a {{term|...}} invocation: the first non-keyword
// argument is the term, a tr= keyword adds its transliteration.
func tmplTerm(parts []string) string {
	if len(parts) == 2 {
		return parts[1]
	}
	var text, trans string
	for _, p := range parts[1:] {
		if m := tmplKeywordRe.FindStringSubmatch(p); m != nil {
			if m[1] == "tr" {
				trans = p[len(m[0]):]
			}
		} else if text == "" {
			text = p
		}
	}
	if text != "" && trans != "" {
		text += ` <span class="trans">[` + trans + `]</span>`
	}
	return text
}

// tmplProto renders a {{proto|...}} invocation: the reconstructed
// proto-language form with its meaning.
func tmplProto(parts []string) string {
	text := `<span class="proto-lang">Proto-` + parts[1] + "</span>"
	if len(parts) >= 4 {
		meaning := parts[len(parts)-2]
		for i, p := range parts[2 : len(parts)-2] {
			if i > 0 {
				text += ","
			}
			text += ` <span class="proto">` + p + "</span>"
			text += ` <span class="meaning">(` + meaning + ")</span>"
		}
	}
	return text
}

// plainText flattens the unescaped text content of a subtree.
func plainText(n wikiast.Node) string {
	switch n := n.(type) {
	case *wikiast.TextNode:
		return n.Content
	case *wikiast.SeqNode:
		var b strings.Builder
		for _, c := range n.Children {
			b.WriteString(plainText(c))
		}
		return b.String()
	default:
		return ""
	}
}
