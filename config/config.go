// Package config loads chromadrop user preferences from the XDG config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "chromadrop/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-color palette indexes.
type ConfigColors struct {
	Background int    `json:"background"`
	GridDot    int    `json:"grid_dot"`
	Border     int    `json:"border"`
	Blocks     [6]int `json:"blocks"` // red, green, blue, yellow, magenta, cyan
}

type ConfigSymbols struct {
	Block rune `json:"block"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawGridDots bool          `json:"draw_grid_dots"`
	Colors       ConfigColors  `json:"colors"`
	Symbols      ConfigSymbols `json:"symbols"`
}

type Config struct {
	Theme  Theme  `json:"theme"`
	Player string `json:"player"`
}

// InitConfig returns the defaults overlaid with the user's config file, if any.
func InitConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return LoadConfig(path)
}

// LoadConfig reads the config file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	config.Player = strings.TrimSpace(config.Player)
	if config.Player == "" {
		config.Player = DefaultConfig.Player
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Block, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := append([]int{c.Theme.Colors.Background, c.Theme.Colors.GridDot, c.Theme.Colors.Border}, c.Theme.Colors.Blocks[:]...)
	for _, color := range colors {
		if color < 0 || color > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", color)}
		}
	}
	if len([]rune(c.Player)) > 16 {
		return &InvalidConfig{"player name is longer than 16 characters"}
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse config %s: %w", filePath, err)
	}
	return nil
}
