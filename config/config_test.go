package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *cfg)
	assert.Equal(t, "Player1", cfg.Player)
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := writeTempConfig(t, `{"player": "  Ada ", "theme": {"draw_grid_dots": false, "symbols": {"block": 9632, "empty": 32}}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Player)
	assert.False(t, cfg.Theme.DrawGridDots)
	assert.Equal(t, '■', cfg.Theme.Symbols.Block)
	assert.Equal(t, DefaultTheme.Colors, cfg.Theme.Colors)
}

func TestLoadConfigBlankPlayerFallsBack(t *testing.T) {
	path := writeTempConfig(t, `{"player": "   "}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Player1", cfg.Player)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"player": `)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"control symbol", func(c *Config) { c.Theme.Symbols.Block = '\t' }},
		{"c1 symbol", func(c *Config) { c.Theme.Symbols.Empty = 130 }},
		{"negative color", func(c *Config) { c.Theme.Colors.Background = -1 }},
		{"block color", func(c *Config) { c.Theme.Colors.Blocks[4] = 300 }},
		{"long player", func(c *Config) { c.Player = "abcdefghijklmnopq" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig
			tc.mutate(&cfg)
			err := cfg.Validate()
			var invalid *InvalidConfig
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
	cfg := DefaultConfig
	assert.NoError(t, cfg.Validate())
}
