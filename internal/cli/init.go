package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/wikitext/internal/logging"
	"github.com/yaklabco/wikitext/pkg/config"
	"github.com/yaklabco/wikitext/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// configFileHeader is prepended to generated configuration files.
const configFileHeader = `# wikitext configuration.
# All keys are optional; absent keys keep their built-in defaults.
# See 'wikitext render --help' for the matching command line flags.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wikitext configuration file",
		Long: `Create a new .wikitext.yml configuration file in the current directory
with the stock defaults. The file can be customized to set the source
language, link URL bases, output width and other options.

Examples:
  wikitext init                     Create .wikitext.yml
  wikitext init --output custom.yml   Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .wikitext.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".wikitext.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldOutput, outputPath)
	}

	content, err := config.Default().ToYAMLWithHeader(configFileHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := fsutil.WriteAtomic(context.Background(), absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldOutput, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
