package render

import (
	"encoding/json"
	"strings"

	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// Dump returns a JSON rendition of the parse tree. Object keys are emitted
// in sorted order, so the output is deterministic. indent is the number of
// spaces per nesting level; zero or less produces compact output.
func Dump(doc *wikiast.Document, indent int) (string, error) {
	nodes := doc.Nodes
	if nodes == nil {
		nodes = []wikiast.Node{}
	}
	var out []byte
	var err error
	if indent > 0 {
		out, err = json.MarshalIndent(nodes, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(nodes)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
