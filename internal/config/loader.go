package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "stickhero.yaml"

// LoadStickHero loads the stick hero configuration.
// Search order: customPath -> ~/.stickhero/configs/stickhero.yaml ->
// ./configs/stickhero.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadStickHero(customPath string) (StickHeroConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StickHeroConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseStickHero(data)
		if err != nil {
			return StickHeroConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseStickHero(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseStickHero(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseStickHero(defaultStickHeroYAML)
	if err != nil {
		return DefaultStickHeroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseStickHero decodes YAML over the built-in defaults and validates the result.
func ParseStickHero(data []byte) (StickHeroConfig, error) {
	cfg := DefaultStickHeroConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StickHeroConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StickHeroConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickhero", "configs", filename)
}
