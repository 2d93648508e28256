package configloader

import "github.com/yaklabco/wikitext/pkg/config"

// mergeConfig applies the set fields of over onto base. A field counts as
// set when it differs from the zero value, which matches what the YAML
// decoder leaves untouched for absent keys.
func mergeConfig(base, over *config.Config) {
	if over == nil {
		return
	}

	if over.Lang != "" {
		base.Lang = over.Lang
	}
	if over.HTMLBase != "" {
		base.HTMLBase = over.HTMLBase
	}
	if over.ImageBase != "" {
		base.ImageBase = over.ImageBase
	}
	if over.MediaBase != "" {
		base.MediaBase = over.MediaBase
	}
	if over.Width != 0 {
		base.Width = over.Width
	}
	if over.ShowURLs {
		base.ShowURLs = true
	}
	if over.SectioningModel != "" {
		base.SectioningModel = over.SectioningModel
	}
	if over.SectioningStart != 0 {
		base.SectioningStart = over.SectioningStart
	}
	if over.Indent != 0 {
		base.Indent = over.Indent
	}
	if over.Strict {
		base.Strict = true
	}
	if over.DebugLevel != 0 {
		base.DebugLevel = over.DebugLevel
	}
}
