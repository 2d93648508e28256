package parser

import (
	"errors"
	"testing"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

func parse(t *testing.T, input string) *wikiast.Document {
	t.Helper()
	doc, err := ParseString(input, Options{})
	if err != nil {
		t.Fatalf("ParseString(%q): %v", input, err)
	}
	return doc
}

// textOf flattens the plain text content of a subtree. Non-text leaves
// contribute nothing.
func textOf(n wikiast.Node) string {
	switch n := n.(type) {
	case *wikiast.TextNode:
		return n.Content
	case *wikiast.SeqNode:
		s := ""
		for _, c := range n.Children {
			s += textOf(c)
		}
		return s
	case *wikiast.ParaNode:
		return textOf(&wikiast.SeqNode{Children: n.Children})
	case *wikiast.PreNode:
		return textOf(&wikiast.SeqNode{Children: n.Children})
	case *wikiast.FontNode:
		return textOf(&wikiast.SeqNode{Children: n.Children})
	default:
		return ""
	}
}

func TestParseParagraph(t *testing.T) {
	doc := parse(t, "Hello ''world''.\n")
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Nodes))
	}
	para, ok := doc.Nodes[0].(*wikiast.ParaNode)
	if !ok {
		t.Fatalf("block = %T, want *ParaNode", doc.Nodes[0])
	}
	if len(para.Children) != 3 {
		t.Fatalf("paragraph children = %d, want 3", len(para.Children))
	}
	it, ok := para.Children[1].(*wikiast.FontNode)
	if !ok || it.Style != wikiast.FontItalic {
		t.Fatalf("middle child = %#v, want italic FontNode", para.Children[1])
	}
	if got := textOf(it); got != "world" {
		t.Errorf("italic content = %q, want %q", got, "world")
	}
}

func TestParseTwoParagraphs(t *testing.T) {
	doc := parse(t, "first\n\nsecond\n")
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Nodes))
	}
	if got := textOf(doc.Nodes[0]); got != "first" {
		t.Errorf("first block = %q", got)
	}
	if got := textOf(doc.Nodes[1]); got != "second" {
		t.Errorf("second block = %q", got)
	}
}

func TestParseParagraphJoinsLines(t *testing.T) {
	doc := parse(t, "one\ntwo\n")
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Nodes))
	}
	if got := textOf(doc.Nodes[0]); got != "one\ntwo" {
		t.Errorf("paragraph text = %q, want %q", got, "one\ntwo")
	}
}

func TestParsePreformatted(t *testing.T) {
	doc := parse(t, "  x := 1\n  y := 2\nplain\n")
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Nodes))
	}
	if _, ok := doc.Nodes[0].(*wikiast.PreNode); !ok {
		t.Fatalf("first block = %T, want *PreNode", doc.Nodes[0])
	}
	if _, ok := doc.Nodes[1].(*wikiast.ParaNode); !ok {
		t.Fatalf("second block = %T, want *ParaNode", doc.Nodes[1])
	}
	if got := textOf(doc.Nodes[0]); got != "  x := 1\n  y := 2\n" {
		t.Errorf("preformatted text = %q", got)
	}
}

func TestParseHeader(t *testing.T) {
	doc := parse(t, "== Title ==\n\nbody\n")
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Nodes))
	}
	hdr, ok := doc.Nodes[0].(*wikiast.HeadingNode)
	if !ok {
		t.Fatalf("first block = %T, want *HeadingNode", doc.Nodes[0])
	}
	if hdr.Level != 2 {
		t.Errorf("header level = %d, want 2", hdr.Level)
	}
	if got := textOf(hdr.Content); got != "Title" {
		t.Errorf("header content = %q, want Title", got)
	}
}

func TestParseHeaderLevels(t *testing.T) {
	doc := parse(t, "=== Deep ===\n")
	hdr, ok := doc.Nodes[0].(*wikiast.HeadingNode)
	if !ok || hdr.Level != 3 {
		t.Fatalf("block = %#v, want level 3 heading", doc.Nodes[0])
	}
}

func TestParseHeaderWithoutNewline(t *testing.T) {
	// A header line that ends the input without a newline is not a header.
	doc := parse(t, "== Title ==")
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Nodes))
	}
	para, ok := doc.Nodes[0].(*wikiast.ParaNode)
	if !ok {
		t.Fatalf("block = %T, want *ParaNode", doc.Nodes[0])
	}
	if got := textOf(para); got != "== Title ==" {
		t.Errorf("paragraph text = %q, want the literal input", got)
	}
}

func TestParseUnterminatedHeader(t *testing.T) {
	doc := parse(t, "== Title\nmore\n")
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Nodes))
	}
	if got := textOf(doc.Nodes[0]); got != "== Title\nmore" {
		t.Errorf("paragraph text = %q", got)
	}
}

func TestParseRule(t *testing.T) {
	doc := parse(t, "a\n----\nb\n")
	if len(doc.Nodes) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Nodes))
	}
	if _, ok := doc.Nodes[1].(*wikiast.RuleNode); !ok {
		t.Fatalf("middle block = %T, want *RuleNode", doc.Nodes[1])
	}
}

func TestParseUnnumberedList(t *testing.T) {
	doc := parse(t, "* a\n* b\n")
	env, ok := doc.Nodes[0].(*wikiast.EnvNode)
	if !ok {
		t.Fatalf("block = %T, want *EnvNode", doc.Nodes[0])
	}
	if env.EnvType != wikiast.EnvUnnumbered || env.Level != 1 {
		t.Fatalf("env = %s level %d, want unnumbered level 1", env.EnvType, env.Level)
	}
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}
	if got := textOf(env.Items[0].Content); got != "a" {
		t.Errorf("first item = %q, want a", got)
	}
}

func TestParseNestedList(t *testing.T) {
	doc := parse(t, "* a\n** b\n* c\n")
	env := doc.Nodes[0].(*wikiast.EnvNode)
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}
	// The nested environment lives inside the first item's sequence.
	seq, ok := env.Items[0].Content.(*wikiast.SeqNode)
	if !ok {
		t.Fatalf("first item content = %T, want *SeqNode", env.Items[0].Content)
	}
	nested, ok := seq.Children[len(seq.Children)-1].(*wikiast.EnvNode)
	if !ok || nested.Level != 2 {
		t.Fatalf("nested = %#v, want level 2 env", seq.Children[len(seq.Children)-1])
	}
	if got := textOf(nested.Items[0].Content); got != "b" {
		t.Errorf("nested item = %q, want b", got)
	}
}

func TestParseNumberedList(t *testing.T) {
	doc := parse(t, "# one\n# two\n")
	env := doc.Nodes[0].(*wikiast.EnvNode)
	if env.EnvType != wikiast.EnvNumbered {
		t.Fatalf("env type = %s, want numbered", env.EnvType)
	}
}

func TestParseDefinitionList(t *testing.T) {
	doc := parse(t, "; term\n: body\n")
	env := doc.Nodes[0].(*wikiast.EnvNode)
	if env.EnvType != wikiast.EnvDefinition {
		t.Fatalf("env type = %s, want defn", env.EnvType)
	}
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}
	if env.Items[0].Subtype != 0 || env.Items[1].Subtype != 1 {
		t.Errorf("subtypes = %d, %d, want 0, 1", env.Items[0].Subtype, env.Items[1].Subtype)
	}
}

func TestParseContinuationLine(t *testing.T) {
	doc := parse(t, "; term\n: body\n;: more body\n")
	env := doc.Nodes[0].(*wikiast.EnvNode)
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2 (continuation must not open a third)", len(env.Items))
	}
	if got := textOf(env.Items[1].Content); got != "bodymore body" {
		t.Errorf("continued item = %q", got)
	}
}

func TestParseIndent(t *testing.T) {
	doc := parse(t, ":: indented\n")
	ind, ok := doc.Nodes[0].(*wikiast.IndentNode)
	if !ok {
		t.Fatalf("block = %T, want *IndentNode", doc.Nodes[0])
	}
	if ind.Level != 2 {
		t.Errorf("indent level = %d, want 2", ind.Level)
	}
	if got := textOf(ind.Content); got != "indented" {
		t.Errorf("indent content = %q", got)
	}
}

func TestParseLink(t *testing.T) {
	doc := parse(t, "[[Foo|Bar]]\n")
	para := doc.Nodes[0].(*wikiast.ParaNode)
	link, ok := para.Children[0].(*wikiast.LinkNode)
	if !ok || link.Kind != wikiast.LinkPage {
		t.Fatalf("child = %#v, want page LinkNode", para.Children[0])
	}
	if len(link.Parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(link.Parts))
	}
	// A single-node pipe part stays bare; the closing part is always a
	// sequence.
	if _, ok := link.Parts[0].(*wikiast.TextNode); !ok {
		t.Errorf("target part = %T, want *TextNode", link.Parts[0])
	}
	if _, ok := link.Parts[1].(*wikiast.SeqNode); !ok {
		t.Errorf("label part = %T, want *SeqNode", link.Parts[1])
	}
	if got := textOf(link.Parts[1]); got != "Bar" {
		t.Errorf("label = %q, want Bar", got)
	}
}

func TestParseTemplate(t *testing.T) {
	doc := parse(t, "{{cite|title=X}}\n")
	para := doc.Nodes[0].(*wikiast.ParaNode)
	link, ok := para.Children[0].(*wikiast.LinkNode)
	if !ok || link.Kind != wikiast.LinkTemplate {
		t.Fatalf("child = %#v, want template LinkNode", para.Children[0])
	}
}

func TestParseUnterminatedLink(t *testing.T) {
	doc := parse(t, "see [[Foo\n\n")
	if got := textOf(doc.Nodes[0]); got != "see [[Foo" {
		t.Errorf("paragraph text = %q", got)
	}
}

func TestParseRef(t *testing.T) {
	doc := parse(t, "[http://example.org the site]\n")
	para := doc.Nodes[0].(*wikiast.ParaNode)
	ref, ok := para.Children[0].(*wikiast.RefNode)
	if !ok {
		t.Fatalf("child = %#v, want *RefNode", para.Children[0])
	}
	if ref.Target != "http://example.org" {
		t.Errorf("target = %q", ref.Target)
	}
	if got := textOf(ref.Content); got != "the site" {
		t.Errorf("label = %q, want %q", got, "the site")
	}
}

func TestParseRefRequiresURL(t *testing.T) {
	// A bracket whose content is not a URL stays literal.
	doc := parse(t, "[not a url]\n")
	if got := textOf(doc.Nodes[0]); got != "[not a url]" {
		t.Errorf("paragraph text = %q", got)
	}
}

func TestParseUnterminatedFontMod(t *testing.T) {
	doc := parse(t, "x '''y\n\nz\n")
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Nodes))
	}
	if got := textOf(doc.Nodes[0]); got != "x '''y" {
		t.Errorf("paragraph text = %q, want %q", got, "x '''y")
	}
}

func TestParseDanglingCloserDegrades(t *testing.T) {
	// The recovery scan degrades the first unmatched closer ahead so it
	// cannot terminate an unrelated construct.
	doc := parse(t, "a [[b\nc ]] d [[x]]\n")
	para := doc.Nodes[0].(*wikiast.ParaNode)
	var links int
	for _, c := range para.Children {
		if _, ok := c.(*wikiast.LinkNode); ok {
			links++
		}
	}
	if links != 1 {
		t.Fatalf("links = %d, want exactly the trailing [[x]]", links)
	}
}

func TestParseFootnotes(t *testing.T) {
	doc := parse(t, "a<ref>first</ref> b<ref>second</ref>\n")
	if len(doc.References) != 2 {
		t.Fatalf("references = %d, want 2", len(doc.References))
	}
	if doc.References[0].Index != 0 || doc.References[1].Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1",
			doc.References[0].Index, doc.References[1].Index)
	}
	if got := textOf(doc.References[1].Content); got != "second" {
		t.Errorf("second footnote = %q", got)
	}
}

func TestParseFootnotesScopedPerParse(t *testing.T) {
	for i := 0; i < 2; i++ {
		doc := parse(t, "x<ref>n</ref>\n")
		if len(doc.References) != 1 || doc.References[0].Index != 0 {
			t.Fatalf("parse %d: references = %+v, want one ref with index 0", i, doc.References)
		}
	}
}

func TestParseUnterminatedTag(t *testing.T) {
	doc := parse(t, "a<tt>b\n")
	para := doc.Nodes[0].(*wikiast.ParaNode)
	if len(para.Children) < 2 {
		t.Fatalf("children = %d, want at least 2", len(para.Children))
	}
	lit, ok := para.Children[1].(*wikiast.TextNode)
	if !ok || lit.Content != "<tt>" {
		t.Fatalf("degraded tag = %#v, want TEXT %q", para.Children[1], "<tt>")
	}
}

func TestParseBlockTag(t *testing.T) {
	doc := parse(t, "<code>\nx := 1\n</code>\n")
	tag, ok := doc.Nodes[0].(*wikiast.TagNode)
	if !ok {
		t.Fatalf("block = %T, want *TagNode", doc.Nodes[0])
	}
	if tag.Name != "code" || !tag.IsBlock {
		t.Errorf("tag = %q block=%v, want code block", tag.Name, tag.IsBlock)
	}
}

func TestParseStrictError(t *testing.T) {
	_, err := ParseString("see [[Foo\n\n", Options{Strict: true})
	var ute *UnexpectedTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("strict parse error = %v, want *UnexpectedTokenError", err)
	}
}

func TestParseEmpty(t *testing.T) {
	doc := parse(t, "")
	if len(doc.Nodes) != 0 {
		t.Fatalf("blocks = %d, want 0", len(doc.Nodes))
	}
	doc = parse(t, "\n\n\n")
	if len(doc.Nodes) != 0 {
		t.Fatalf("blank input blocks = %d, want 0", len(doc.Nodes))
	}
}
