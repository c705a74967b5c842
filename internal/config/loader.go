package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game tuning.
// Search order: customPath -> ~/.dodge/configs/dodge.{yaml,toml} ->
// ./configs/dodge.{yaml,toml} -> embedded default.
// Files only need to name the keys they override.
func Load(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatOf(customPath))
		if err != nil {
			return Tuning{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, formatOf(path)); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTuningYAML, FormatYAML)
	if err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format is a tuning file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// Parse decodes a tuning file on top of the compiled-in defaults and
// validates the result.
func Parse(data []byte, format Format) (Tuning, error) {
	cfg := DefaultTuning()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Tuning{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Tuning{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}
	return cfg, nil
}

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "dodge.yaml"), filepath.Join(dir, "dodge.toml"))
	}
	return append(paths, filepath.Join("configs", "dodge.yaml"), filepath.Join("configs", "dodge.toml"))
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs")
}
