package wikiast

import (
	"fmt"
	"strings"
)

// AttrSyntaxError reports a malformed tag attribute string. The tokenizer
// degrades the offending open tag to literal text instead of failing the
// parse, unless strict mode is on.
type AttrSyntaxError struct {
	Rest string
}

func (e *AttrSyntaxError) Error() string {
	return fmt.Sprintf("malformed tag attributes at %q", e.Rest)
}

// TagAttributes is the parsed attribute list of an open tag.
// Values maps attribute names to string values, or true for bare attributes
// (<div foo>). Printable preserves the original attribute string for
// renderers that pass tags through literally.
type TagAttributes struct {
	Printable string
	Values    map[string]any
}

// ParseTagAttributes parses a tag attribute string with a small
// quoted-value grammar: name, name="value" with backslash escapes.
func ParseTagAttributes(s string) (*TagAttributes, error) {
	attrs := &TagAttributes{Printable: s, Values: map[string]any{}}
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return attrs, nil
		}
		name, after, ok := scanAttrName(rest)
		if !ok {
			return nil, &AttrSyntaxError{Rest: rest}
		}
		rest = after
		if !strings.HasPrefix(rest, `="`) {
			attrs.Values[name] = true
			continue
		}
		rest = rest[2:]
		var val strings.Builder
		closed := false
		for !closed {
			if rest == "" {
				return nil, &AttrSyntaxError{Rest: rest}
			}
			switch rest[0] {
			case '\\':
				if len(rest) < 2 {
					return nil, &AttrSyntaxError{Rest: rest}
				}
				val.WriteByte(rest[1])
				rest = rest[2:]
			case '"':
				rest = rest[1:]
				attrs.Values[name] = val.String()
				closed = true
			default:
				val.WriteByte(rest[0])
				rest = rest[1:]
			}
		}
	}
}

func scanAttrName(s string) (name, rest string, ok bool) {
	i := 0
	for i < len(s) && isAttrNameByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

func isAttrNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '_' || b == '-'
}

// Len returns the number of parsed attributes.
func (a *TagAttributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

// Get returns the string value of a quoted attribute.
func (a *TagAttributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.Values[name].(string)
	return v, ok
}

// Has reports whether the attribute is present, quoted or bare.
func (a *TagAttributes) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.Values[name]
	return ok
}

// String returns the original attribute string.
func (a *TagAttributes) String() string {
	if a == nil {
		return ""
	}
	return a.Printable
}
