// Package render turns a parsed wikiast.Document into an output format:
// HTML, plain text, Texinfo or a JSON dump of the tree.
package render

import (
	"net/url"
	"strings"
)

// Options bundles the settings shared by all renderers. The zero value
// renders English-language wiki input with the standard Wikipedia bases.
type Options struct {
	// Lang is the language code of the wiki the input came from. It fills
	// the {lang} placeholder of HTMLBase and selects the namespace table.
	Lang string

	// HTMLBase is the URL prefix for page links. A {lang} placeholder is
	// replaced by the language code of the link.
	HTMLBase string

	// ImageBase is the URL prefix for image links.
	ImageBase string

	// MediaBase is the URL prefix for media links.
	MediaBase string
}

const (
	defaultLang      = "en"
	defaultHTMLBase  = "http://{lang}.wikipedia.org/wiki/"
	defaultImageBase = "http://upload.wikimedia.org/wikipedia/commons/thumb/a/bf"
	defaultMediaBase = "http://www.mediawiki.org/xml/export-0.3"
)

func (o *Options) setDefaults() {
	if o.Lang == "" {
		o.Lang = defaultLang
	}
	if o.HTMLBase == "" {
		o.HTMLBase = defaultHTMLBase
	}
	if o.ImageBase == "" {
		o.ImageBase = defaultImageBase
	}
	if o.MediaBase == "" {
		o.MediaBase = defaultMediaBase
	}
}

// target builds the URL of a page link. An empty lang falls back to the
// document language.
func (o Options) target(tgt, lang string) string {
	if lang == "" {
		lang = o.Lang
	}
	return strings.ReplaceAll(o.HTMLBase, "{lang}", lang) + urlQuote(tgt)
}

// urlQuote percent-encodes a link target as a URL path, keeping '/'.
func urlQuote(s string) string {
	u := url.URL{Path: s}
	return u.EscapedPath()
}

// Template invocations with these first arguments produce no output.
func suppressedTemplate(parts []string) bool {
	if parts[0] == "disambigR" || parts[0] == "wikiquote" {
		return true
	}
	return len(parts) > 1 && parts[1] == "thumb"
}
