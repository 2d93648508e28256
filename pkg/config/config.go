// Package config defines core configuration types for wikitext.
// These types are pure data structures; flag handling and file loading live
// in the CLI layer.
package config

import "fmt"

// OutputFormat selects the rendition produced from parsed wiki input.
type OutputFormat string

const (
	FormatHTML    OutputFormat = "html"
	FormatText    OutputFormat = "text"
	FormatTexinfo OutputFormat = "texinfo"
	FormatDump    OutputFormat = "dump"
)

// IsValid returns true if the output format is one of the known renditions.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatText, FormatTexinfo, FormatDump:
		return true
	default:
		return false
	}
}

// Known Texinfo sectioning models. The empty string means numbered.
var sectioningModels = map[string]bool{
	"":           true,
	"numbered":   true,
	"unnumbered": true,
	"appendix":   true,
	"heading":    true,
}

// Config is the root configuration structure for wikitext.
type Config struct {
	// Lang is the language code of the source wiki.
	Lang string `mapstructure:"lang" yaml:"lang,omitempty"`

	// HTMLBase is the URL prefix for page links. A {lang} placeholder is
	// replaced by the language code.
	HTMLBase string `mapstructure:"html_base" yaml:"html_base,omitempty"`

	// ImageBase is the URL prefix for image links.
	ImageBase string `mapstructure:"image_base" yaml:"image_base,omitempty"`

	// MediaBase is the URL prefix for media links.
	MediaBase string `mapstructure:"media_base" yaml:"media_base,omitempty"`

	// Width limits plain text output to this many columns (0 = default).
	Width int `mapstructure:"width" yaml:"width,omitempty"`

	// ShowURLs appends link targets after the link text in plain text
	// output.
	ShowURLs bool `mapstructure:"show_urls" yaml:"show_urls,omitempty"`

	// SectioningModel picks the Texinfo heading command set.
	SectioningModel string `mapstructure:"sectioning_model" yaml:"sectioning_model,omitempty"`

	// SectioningStart shifts Texinfo heading levels down, 0 through 4.
	SectioningStart int `mapstructure:"sectioning_start" yaml:"sectioning_start,omitempty"`

	// Indent is the indentation step of the JSON dump (0 = compact).
	Indent int `mapstructure:"indent" yaml:"indent,omitempty"`

	// Strict makes malformed markup a parse error instead of degrading it
	// to literal text.
	Strict bool `mapstructure:"strict" yaml:"strict,omitempty"`

	// DebugLevel is the parser trace verbosity, 0 through 100.
	DebugLevel int `mapstructure:"debug_level" yaml:"debug_level,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output rendition.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Output is the output file path; empty means stdout.
	Output string `mapstructure:"-" yaml:"-"`
}

// Default returns a configuration with the stock defaults.
func Default() *Config {
	return &Config{
		Lang:   "en",
		Format: FormatHTML,
	}
}

// Validate checks the configuration for values no renderer would accept.
func (c *Config) Validate() error {
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("invalid output format %q", c.Format)
	}
	if !sectioningModels[c.SectioningModel] {
		return fmt.Errorf("invalid sectioning model %q", c.SectioningModel)
	}
	if c.SectioningStart < 0 || c.SectioningStart > 4 {
		return fmt.Errorf("invalid sectioning start %d", c.SectioningStart)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d", c.Width)
	}
	if c.Indent < 0 {
		return fmt.Errorf("invalid indent %d", c.Indent)
	}
	if c.DebugLevel < 0 || c.DebugLevel > 100 {
		return fmt.Errorf("invalid debug level %d", c.DebugLevel)
	}
	return nil
}
