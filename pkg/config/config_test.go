package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wikitext/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, config.FormatHTML, cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestOutputFormatIsValid(t *testing.T) {
	valid := []config.OutputFormat{
		config.FormatHTML, config.FormatText, config.FormatTexinfo, config.FormatDump,
	}
	for _, f := range valid {
		assert.True(t, f.IsValid(), "format %q", f)
	}
	assert.False(t, config.OutputFormat("markdown").IsValid())
}

func TestValidate(t *testing.T) {
	t.Run("accepts sectioning models", func(t *testing.T) {
		for _, model := range []string{"", "numbered", "unnumbered", "appendix", "heading"} {
			cfg := config.Default()
			cfg.SectioningModel = model
			assert.NoError(t, cfg.Validate(), "model %q", model)
		}
	})

	t.Run("rejects bad values", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"unknown format", func(c *config.Config) { c.Format = "pdf" }},
			{"unknown sectioning model", func(c *config.Config) { c.SectioningModel = "bogus" }},
			{"sectioning start too high", func(c *config.Config) { c.SectioningStart = 5 }},
			{"negative sectioning start", func(c *config.Config) { c.SectioningStart = -1 }},
			{"negative width", func(c *config.Config) { c.Width = -1 }},
			{"negative indent", func(c *config.Config) { c.Indent = -2 }},
			{"debug level out of range", func(c *config.Config) { c.DebugLevel = 101 }},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				cfg := config.Default()
				tc.mutate(cfg)
				assert.Error(t, cfg.Validate())
			})
		}
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	original := &config.Config{
		Lang:            "de",
		HTMLBase:        "http://{lang}.example.org/wiki/",
		Width:           60,
		ShowURLs:        true,
		SectioningModel: "appendix",
		SectioningStart: 1,
		Indent:          2,
		Strict:          true,
		DebugLevel:      80,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestYAMLOmitsCLIFields(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatTexinfo
	cfg.Output = "out.texi"

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "out.texi")
	assert.NotContains(t, string(data), "texinfo")
}

func TestFromYAMLRejectsGarbage(t *testing.T) {
	_, err := config.FromYAML([]byte("width: [not an int\n"))
	assert.Error(t, err)
}

func TestToYAMLWithHeader(t *testing.T) {
	cfg := config.Default()
	data, err := cfg.ToYAMLWithHeader("# wikitext configuration")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Contains(t, string(data), "# wikitext configuration\n\n")
}

func TestClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("copies CLI fields", func(t *testing.T) {
		cfg := config.Default()
		cfg.Format = config.FormatDump
		cfg.Output = "tree.json"

		clone := cfg.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, cfg, clone)
		assert.Equal(t, cfg, clone)
	})
}
