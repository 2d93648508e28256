package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/wikitext/internal/configloader"
	"github.com/yaklabco/wikitext/internal/logging"
	"github.com/yaklabco/wikitext/pkg/config"
	"github.com/yaklabco/wikitext/pkg/fsutil"
	"github.com/yaklabco/wikitext/pkg/parser"
	"github.com/yaklabco/wikitext/pkg/render"
	"github.com/yaklabco/wikitext/pkg/wikiast"
)

// outputFilePermissions is the file mode for rendered output files.
const outputFilePermissions = 0644

type renderFlags struct {
	format          string
	lang            string
	htmlBase        string
	imageBase       string
	mediaBase       string
	width           int
	showURLs        bool
	sectioningModel string
	sectioningStart int
	indent          int
	strict          bool
	debugLevel      int
	detectLang      bool
	output          string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render wiki markup in another format",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

const renderLongDescription = `Render wiki markup as HTML, plain text, Texinfo, or a JSON parse tree.

Reads from the named file, or from standard input when no file (or "-")
is given. The result goes to standard output unless --output names a file.

Examples:
  wikitext render page.wiki                 # HTML fragment to stdout
  wikitext render --format text page.wiki   # refilled plain text
  wikitext render -f texinfo -o page.texi page.wiki
  wikitext render --format dump --indent 2 page.wiki
  cat page.wiki | wikitext render --lang de --show-urls -f text`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errConfig, err)
	}

	cfg := loadResult.Config
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldInput, loadResult.LoadedFrom)
	}

	applyRenderFlags(cmd, cfg, flags)

	if err := cfg.Validate(); err != nil {
		return errors.Join(errConfig, err)
	}

	// Parser traces go through Debugf, so a trace verbosity implies debug logging.
	if cfg.DebugLevel > 0 {
		logging.SetLevel("debug")
	}

	// Fit text output to the terminal when no width was configured.
	if cfg.Format == config.FormatText && cfg.Width == 0 && cfg.Output == "" {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			cfg.Width = w
		}
	}

	logger.Debug("configuration",
		logging.FieldFormat, cfg.Format,
		logging.FieldLang, cfg.Lang,
		logging.FieldWidth, cfg.Width,
		logging.FieldStrict, cfg.Strict,
	)

	input, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	doc, err := parser.ParseString(input, parser.Options{
		Strict:     cfg.Strict,
		DebugLevel: cfg.DebugLevel,
		Logger:     logging.FromContext(ctx),
	})
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	logger.Debug("parsed input",
		logging.FieldInput, name,
		logging.FieldBlocks, len(doc.Nodes),
		logging.FieldReferences, len(doc.References),
	)

	out, err := renderDocument(cfg, flags, doc)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		changed, err := fsutil.WriteAtomicIfChanged(ctx, cfg.Output, []byte(out), outputFilePermissions)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if changed {
			logger.Debug("wrote output", logging.FieldOutput, cfg.Output)
		} else {
			logger.Debug("output unchanged", logging.FieldOutput, cfg.Output)
		}
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// applyRenderFlags overlays values explicitly provided on the command line.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) {
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Output = flags.output

	if cmd.Flags().Changed("lang") {
		cfg.Lang = flags.lang
	}
	if cmd.Flags().Changed("html-base") {
		cfg.HTMLBase = flags.htmlBase
	}
	if cmd.Flags().Changed("image-base") {
		cfg.ImageBase = flags.imageBase
	}
	if cmd.Flags().Changed("media-base") {
		cfg.MediaBase = flags.mediaBase
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = flags.width
	}
	if cmd.Flags().Changed("show-urls") {
		cfg.ShowURLs = flags.showURLs
	}
	if cmd.Flags().Changed("sectioning-model") {
		cfg.SectioningModel = flags.sectioningModel
	}
	if cmd.Flags().Changed("sectioning-start") {
		cfg.SectioningStart = flags.sectioningStart
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = flags.indent
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
	if cmd.Flags().Changed("debug-level") {
		cfg.DebugLevel = flags.debugLevel
	}
}

// readInput returns the markup to parse and a display name for it.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return string(data), args[0], nil
}

func renderDocument(cfg *config.Config, flags *renderFlags, doc *wikiast.Document) (string, error) {
	opts := render.Options{
		Lang:      cfg.Lang,
		HTMLBase:  cfg.HTMLBase,
		ImageBase: cfg.ImageBase,
		MediaBase: cfg.MediaBase,
	}

	switch cfg.Format {
	case config.FormatHTML:
		r := render.NewHTML(opts)
		r.DetectCodeLanguage = flags.detectLang
		return r.Render(doc), nil

	case config.FormatText:
		r := render.NewText(render.TextOptions{
			Options:  opts,
			Width:    cfg.Width,
			ShowURLs: cfg.ShowURLs,
		})
		return r.Render(doc), nil

	case config.FormatTexinfo:
		r, err := render.NewTexinfo(render.TexinfoOptions{
			Options:         opts,
			SectioningModel: render.SectioningModel(cfg.SectioningModel),
			SectioningStart: cfg.SectioningStart,
		})
		if err != nil {
			return "", errors.Join(errConfig, err)
		}
		return r.Render(doc), nil

	case config.FormatDump:
		return render.Dump(doc, cfg.Indent)

	default:
		return "", errors.Join(errConfig, fmt.Errorf("invalid output format %q", cfg.Format))
	}
}

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVarP(&flags.format, "format", "f", "html",
		"output format: html, text, texinfo, dump")
	cmd.Flags().StringVar(&flags.lang, "lang", "en", "language code of the source wiki")
	cmd.Flags().StringVar(&flags.htmlBase, "html-base", "",
		"URL prefix for page links ({lang} is replaced by the language code)")
	cmd.Flags().StringVar(&flags.imageBase, "image-base", "", "URL prefix for image links")
	cmd.Flags().StringVar(&flags.mediaBase, "media-base", "", "URL prefix for media links")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0,
		"output width for text format (0 = terminal width or 78)")
	cmd.Flags().BoolVar(&flags.showURLs, "show-urls", false,
		"append link targets after link text (text format)")
	cmd.Flags().StringVar(&flags.sectioningModel, "sectioning-model", "",
		"Texinfo sectioning model: numbered, unnumbered, appendix, heading")
	cmd.Flags().IntVar(&flags.sectioningStart, "sectioning-start", 0,
		"shift Texinfo heading levels down by this many positions (0-4)")
	cmd.Flags().IntVar(&flags.indent, "indent", 0, "indentation step for dump format (0 = compact)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"treat malformed markup as an error instead of rendering it literally")
	cmd.Flags().IntVar(&flags.debugLevel, "debug-level", 0, "parser trace verbosity (0-100)")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-code-language", false,
		"classify block code content and tag it with a language class (html format)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
}
