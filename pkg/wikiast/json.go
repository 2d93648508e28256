package wikiast

import "encoding/json"

// Every node marshals to an object carrying "wikinode" (the variant name),
// "type" (the kind tag) and its declared fields. Maps give deterministic,
// lexicographically ordered keys.

func marshalNode(n Node, name string, fields map[string]any) ([]byte, error) {
	fields["wikinode"] = name
	fields["type"] = n.Type()
	return json.Marshal(fields)
}

// nodeList returns nil for an empty child list so absent content encodes
// as JSON null, matching the dump format.
func nodeList(children []Node) any {
	if len(children) == 0 {
		return nil
	}
	return children
}

func (n *TextNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "TextNode", map[string]any{"content": n.Content})
}

func (n *SeqNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "SeqNode", map[string]any{"content": nodeList(n.Children)})
}

func (n *FontNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "FontNode", map[string]any{"content": nodeList(n.Children)})
}

func (n *HeadingNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "HeadingNode", map[string]any{
		"level":   n.Level,
		"content": n.Content,
	})
}

func (n *RuleNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "RuleNode", map[string]any{})
}

func (n *ParaNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "ParaNode", map[string]any{"content": nodeList(n.Children)})
}

func (n *PreNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "PreNode", map[string]any{"content": nodeList(n.Children)})
}

func (n *IndentNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "IndentNode", map[string]any{
		"level":   n.Level,
		"content": n.Content,
	})
}

func (n *ElementNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "ElementNode", map[string]any{
		"subtype": n.Subtype,
		"content": n.Content,
	})
}

func (n *EnvNode) MarshalJSON() ([]byte, error) {
	items := make([]Node, len(n.Items))
	for i, it := range n.Items {
		items[i] = it
	}
	return marshalNode(n, "EnvNode", map[string]any{
		"envtype": n.EnvType.String(),
		"level":   n.Level,
		"content": nodeList(items),
	})
}

func (n *LinkNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "LinkNode", map[string]any{"content": nodeList(n.Parts)})
}

func (n *RefNode) MarshalJSON() ([]byte, error) {
	return marshalNode(n, "RefNode", map[string]any{
		"ref":     n.Target,
		"content": n.Content,
	})
}

func (n *TagNode) MarshalJSON() ([]byte, error) {
	var args any
	if n.Attrs != nil && len(n.Attrs.Values) > 0 {
		args = n.Attrs.Values
	}
	var idx any
	if n.Index >= 0 {
		idx = n.Index
	}
	var content any
	if n.Content != nil {
		content = n.Content
	}
	return marshalNode(n, "TagNode", map[string]any{
		"tag":     n.Name,
		"isblock": n.IsBlock,
		"args":    args,
		"content": content,
		"idx":     idx,
	})
}
