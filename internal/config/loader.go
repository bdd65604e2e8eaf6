package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name configurations that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadDodger loads Circle Dodger configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/dodger.{yaml,toml} ->
// ./configs/dodger.{yaml,toml} -> embedded default -> hardcoded default.
// Files only need to set the keys they change; everything else keeps its default.
// Only an explicit customPath may fail; the implicit locations are skipped when
// missing or unreadable.
func LoadDodger(customPath string) (DodgerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DodgerConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	candidates := make([]string, 0, 4)
	for _, name := range []string{"dodger.yaml", "dodger.toml"} {
		// Try user config directory
		if p := userConfigPath(name); p != "" {
			candidates = append(candidates, p)
		}
	}
	// Try local configs directory
	candidates = append(candidates, filepath.Join("configs", "dodger.yaml"), filepath.Join("configs", "dodger.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("dodger.yaml", defaultDodgerYAML)
	if err != nil {
		return DefaultDodgerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decode parses data on top of the hardcoded defaults, choosing the format by
// the file extension. Anything that is not .toml is treated as YAML.
func decode(path string, data []byte) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return DodgerConfig{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DodgerConfig{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// MarshalYAML renders a configuration the way it would appear in a config file.
func MarshalYAML(cfg DodgerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
