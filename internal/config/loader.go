package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the user and local directories.
const FileName = "config.yaml"

// LocalPath is the config file checked relative to the working directory.
var LocalPath = filepath.Join("configs", "ocelot.yaml")

// Load loads the ocelot configuration.
// Search order: customPath -> ~/.ocelot/config.yaml -> ./configs/ocelot.yaml -> embedded default
//
// Files are decoded on top of Default, so a file only needs the keys it
// changes. An explicit path that cannot be read or parsed is an error; the
// other locations are skipped silently.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(LocalPath); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ocelot", FileName)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
