package wikiast

// Node is the interface implemented by every parse tree node.
// Type returns the kind tag ("TEXT", "BOLD", "ENV", ...) used by the JSON
// encoding and trace output; renderers dispatch on the concrete type.
type Node interface {
	Type() string
}

// FontStyle selects the font modification applied by a FontNode.
type FontStyle uint8

const (
	FontItalic FontStyle = iota
	FontBold
)

// EnvType identifies the kind of a list-like environment.
type EnvType uint8

const (
	EnvUnnumbered EnvType = iota
	EnvNumbered
	EnvDefinition
)

// String returns the environment tag used in the JSON encoding.
func (e EnvType) String() string {
	switch e {
	case EnvNumbered:
		return "numbered"
	case EnvDefinition:
		return "defn"
	default:
		return "unnumbered"
	}
}

// LinkKind distinguishes page links from template invocations.
type LinkKind uint8

const (
	LinkPage LinkKind = iota
	LinkTemplate
)

// TextNode holds literal text.
type TextNode struct {
	Content string
}

func (*TextNode) Type() string { return "TEXT" }

// SeqNode is an ordered sequence of nodes.
type SeqNode struct {
	Children []Node
}

func (*SeqNode) Type() string { return "SEQ" }

// FontNode wraps content in a font modification (italic or bold).
type FontNode struct {
	Style    FontStyle
	Children []Node
}

func (n *FontNode) Type() string {
	if n.Style == FontBold {
		return "BOLD"
	}
	return "IT"
}

// HeadingNode is a section heading. Level is the delimiter run length and
// is clamped by renderers, never here.
type HeadingNode struct {
	Level   int
	Content Node
}

func (*HeadingNode) Type() string { return "HDR" }

// RuleNode is a horizontal rule. It carries no payload.
type RuleNode struct{}

func (*RuleNode) Type() string { return "BAR" }

// ParaNode is a paragraph block.
type ParaNode struct {
	Children []Node
}

func (*ParaNode) Type() string { return "PARA" }

// PreNode is a preformatted block.
type PreNode struct {
	Children []Node
}

func (*PreNode) Type() string { return "PRE" }

// IndentNode is an indented line. Level is the marker run length.
type IndentNode struct {
	Level   int
	Content Node
}

func (*IndentNode) Type() string { return "IND" }

// ElementNode is one item of an environment. Subtype 0 is a regular item
// or definition term, subtype 1 a definition body.
type ElementNode struct {
	Subtype int
	Content Node
}

func (*ElementNode) Type() string { return "ELT" }

// EnvNode is a list-like environment. All items share its level.
type EnvNode struct {
	EnvType EnvType
	Level   int
	Items   []*ElementNode
}

func (*EnvNode) Type() string { return "ENV" }

// LinkNode is a [[...]] page link or {{...}} template invocation.
// Parts[0] is the target; the remaining parts are positional or key=value
// arguments.
type LinkNode struct {
	Kind  LinkKind
	Parts []Node
}

func (n *LinkNode) Type() string {
	if n.Kind == LinkTemplate {
		return "TMPL"
	}
	return "LINK"
}

// RefNode is an inline bracketed URL reference ([url text...]).
type RefNode struct {
	Target  string
	Content Node
}

func (*RefNode) Type() string { return "REF" }

// TagNode is a recognized markup tag and its parsed content.
// Index is the running footnote number for "ref" tags, assigned at
// construction time within one parse; -1 for every other tag.
type TagNode struct {
	Name    string
	Attrs   *TagAttributes
	IsBlock bool
	Content Node
	Index   int
}

func (*TagNode) Type() string { return "TAG" }

// Document is the result of one parse: the top-level block nodes and the
// footnote references collected in order of first appearance. References
// are scoped to the parse that produced them; documents are never merged.
type Document struct {
	Nodes      []Node
	References []*TagNode
}
