// Package configloader discovers and loads wikitext configuration files.
//
// Precedence, lowest to highest: built-in defaults, a discovered or
// explicitly named config file, WIKITEXT_* environment variables. Command
// line flags are applied on top by the CLI layer.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/wikitext/pkg/config"
)

// Config file names probed in the working directory, in order.
var configFileNames = []string{
	".wikitext.yml",
	".wikitext.yaml",
}

// LoadOptions control configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory probed for a config file when no
	// explicit path is given.
	WorkingDir string

	// ExplicitPath names a config file directly. When set, the file must
	// exist; discovery is skipped.
	ExplicitPath string
}

// Result is the outcome of loading configuration.
type Result struct {
	// Config is the merged configuration.
	Config *config.Config

	// LoadedFrom is the path of the config file that was read, or empty
	// when defaults were used.
	LoadedFrom string
}

// Load builds a configuration from defaults, an optional config file and
// the environment.
func Load(opts LoadOptions) (*Result, error) {
	cfg := config.Default()
	result := &Result{Config: cfg}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		fileCfg, err := config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		mergeConfig(cfg, fileCfg)
		result.LoadedFrom = path
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		if result.LoadedFrom != "" {
			return nil, fmt.Errorf("config %s: %w", result.LoadedFrom, err)
		}
		return nil, err
	}

	return result, nil
}

func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("probe config file %s: %w", candidate, err)
		}
	}

	return "", nil
}
