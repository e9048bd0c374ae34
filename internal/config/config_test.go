package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Scrape.TimeoutSecs)
	assert.Equal(t, 2, cfg.Scrape.MaxSubPages)
	assert.Equal(t, 15, cfg.Source.TimeoutSecs)
	assert.Equal(t, 0.6, cfg.Anthropic.Temperature)
	assert.Equal(t, 3, cfg.Anthropic.MaxAttempts)
	assert.Equal(t, "enriched_results.csv", cfg.Output.Path)
	assert.True(t, cfg.Output.BOM)
	assert.False(t, cfg.Pipeline.Strict)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Scrape.UserAgent, "Firefox")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OUTREACH_SOURCE_URL", "https://sheets.example/pub?output=csv")
	t.Setenv("OUTREACH_ANTHROPIC_KEY", "sk-test")
	t.Setenv("OUTREACH_OUTPUT_PATH", "out.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://sheets.example/pub?output=csv", cfg.Source.URL)
	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
	assert.Equal(t, "out.csv", cfg.Output.Path)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}

func TestInitLogger_Console(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	assert.NoError(t, err)
}
