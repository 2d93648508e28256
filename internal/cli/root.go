// Package cli provides the Cobra command structure for wikitext.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wikitext/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root wikitext command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "wikitext",
		Short: "Convert MediaWiki markup to HTML, plain text or Texinfo",
		Long: `wikitext parses MediaWiki markup and renders it as an HTML fragment,
refilled plain text, Texinfo source, or a JSON dump of the parse tree.

It understands headings, bold and italic quote runs, page and interwiki
links, templates, numbered, unnumbered and definition lists, preformatted
blocks, footnote references and a handful of HTML-style tags.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
