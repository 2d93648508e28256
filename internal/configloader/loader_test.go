package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wikitext/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	result, err := Load(LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, "en", result.Config.Lang)
}

func TestLoadDiscoversConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".wikitext.yml", "lang: de\nwidth: 60\n")

	result, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, "de", result.Config.Lang)
	assert.Equal(t, 60, result.Config.Width)
}

func TestLoadPrefersYmlOverYaml(t *testing.T) {
	dir := t.TempDir()
	yml := writeConfig(t, dir, ".wikitext.yml", "lang: fr\n")
	writeConfig(t, dir, ".wikitext.yaml", "lang: pl\n")

	result, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, yml, result.LoadedFrom)
	assert.Equal(t, "fr", result.Config.Lang)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yml", "strict: true\n")

	result, err := Load(LoadOptions{WorkingDir: dir, ExplicitPath: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.LoadedFrom)
	assert.True(t, result.Config.Strict)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
	})
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".wikitext.yml", "sectioning_model: bogus\n")

	_, err := Load(LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".wikitext.yml", "width: [oops\n")

	_, err := Load(LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".wikitext.yml", "lang: de\n")
	t.Setenv(envLang, "es")
	t.Setenv(envWidth, "50")

	result, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "es", result.Config.Lang)
	assert.Equal(t, 50, result.Config.Width)
}

func TestEnvIgnoresBadWidth(t *testing.T) {
	t.Setenv(envWidth, "wide")

	result, err := Load(LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Config.Width)
}

func TestMergeConfig(t *testing.T) {
	base := config.Default()
	mergeConfig(base, &config.Config{Width: 72, ShowURLs: true})
	assert.Equal(t, "en", base.Lang)
	assert.Equal(t, 72, base.Width)
	assert.True(t, base.ShowURLs)

	mergeConfig(base, nil)
	assert.Equal(t, 72, base.Width)
}
