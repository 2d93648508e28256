package configloader

import (
	"os"
	"strconv"

	"github.com/yaklabco/wikitext/pkg/config"
)

// Environment variables recognized as configuration overrides.
const (
	envLang      = "WIKITEXT_LANG"
	envHTMLBase  = "WIKITEXT_HTML_BASE"
	envImageBase = "WIKITEXT_IMAGE_BASE"
	envMediaBase = "WIKITEXT_MEDIA_BASE"
	envWidth     = "WIKITEXT_WIDTH"
)

// applyEnv overlays WIKITEXT_* environment variables on cfg. Unparseable
// numeric values are ignored rather than failing the whole load.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv(envLang); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv(envHTMLBase); v != "" {
		cfg.HTMLBase = v
	}
	if v := os.Getenv(envImageBase); v != "" {
		cfg.ImageBase = v
	}
	if v := os.Getenv(envMediaBase); v != "" {
		cfg.MediaBase = v
	}
	if v := os.Getenv(envWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Width = n
		}
	}
}
