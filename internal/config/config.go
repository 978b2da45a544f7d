// Package config handles loading and saving user configuration for speedread.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/speedread/internal/reader"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	ConfigFile  = "config.yaml"
	TextsFile   = "texts.yaml"
	HistoryFile = "history.db"
	LogFile     = "speedread.log"
)

// Config holds all user configuration for the trainer.
type Config struct {
	Speed       int    `yaml:"speed"`        // Units per minute, 100-3000
	Mode        string `yaml:"mode"`         // "words" or "scroll"
	ScrollOnly  bool   `yaml:"scroll_only"`  // Hide the mode selector
	TextID      int    `yaml:"text_id"`      // Text selected on startup
	TextsFile   string `yaml:"texts_file"`   // Extra texts, relative to the config dir
	ScrollWidth int    `yaml:"scroll_width"` // Scroll viewport width in cells, 0 = fit window
	BigWords    bool   `yaml:"big_words"`    // Render words as block glyphs when a font is found
	History     bool   `yaml:"history"`      // Record finished runs
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Speed:     reader.DefaultSpeed,
		Mode:      reader.ModeWords.String(),
		TextsFile: TextsFile,
		History:   true,
	}
}

// Normalize replaces invalid values with usable ones.
func (c *Config) Normalize() {
	if c.Speed == 0 {
		c.Speed = reader.DefaultSpeed
	}
	if c.Speed < reader.MinSpeed {
		c.Speed = reader.MinSpeed
	}
	if c.Speed > reader.MaxSpeed {
		c.Speed = reader.MaxSpeed
	}
	if _, err := reader.ParseMode(c.Mode); err != nil || c.Mode == "" {
		c.Mode = reader.ModeWords.String()
	}
	if c.ScrollWidth < 0 {
		c.ScrollWidth = 0
	}
}

// ReaderMode returns the parsed display mode.
func (c Config) ReaderMode() reader.Mode {
	m, _ := reader.ParseMode(c.Mode)
	return m
}

// Load reads config.yaml from dir. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes cfg to config.yaml in dir.
func Save(dir string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFile), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// LoadTexts loads extra sample texts from a YAML file.
func LoadTexts(path string) ([]reader.SampleText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texts file: %w", err)
	}

	var texts struct {
		Texts []reader.SampleText `yaml:"texts"`
	}
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("parsing texts file: %w", err)
	}

	for i := range texts.Texts {
		texts.Texts[i].Body = normalize(texts.Texts[i].Body)
	}

	return texts.Texts, nil
}

// SaveTexts saves sample texts to a YAML file.
func SaveTexts(path string, texts []reader.SampleText) error {
	data := struct {
		Texts []reader.SampleText `yaml:"texts"`
	}{Texts: texts}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling texts: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing texts file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
// SPEEDREAD_CONFIG_HOME and XDG_CONFIG_HOME take precedence over the
// platform's user config location.
func GetConfigDir() (string, error) {
	if c := os.Getenv("SPEEDREAD_CONFIG_HOME"); c != "" {
		return c, nil
	}
	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		return filepath.Join(c, "speedread"), nil
	}

	scope := gap.NewScope(gap.User, "speedread")
	dir, err := scope.ConfigPath("")
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return dir, nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}

// ResolvePath resolves a config-relative path against dir. A leading ~ is
// expanded to the home directory.
func ResolvePath(dir, path string) string {
	if path == "" {
		return path
	}
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
