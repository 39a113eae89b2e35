package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.shadowstep/config.yaml ->
// ./configs/shadowstep.yaml -> embedded default.
// A customPath that cannot be read or parsed is an error; the fallback
// locations fail silently to the next candidate.
// Unmarshalling starts from the defaults, so a partial file overrides
// only the keys it mentions; omitted rules keep their default values.
func Load(customPath string) (StealthConfig, error) {
	cfg := DefaultStealthConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = DefaultStealthConfig() // Discard a partial unmarshal
		}
	}

	if data, err := os.ReadFile("configs/shadowstep.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = DefaultStealthConfig()
	}

	if err := yaml.Unmarshal(defaultStealthYAML, &cfg); err != nil {
		return DefaultStealthConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize clamps nonsensical values back to defaults.
func normalize(cfg StealthConfig) StealthConfig {
	if cfg.Rules.MaxMovesPerTurn < 1 {
		cfg.Rules.MaxMovesPerTurn = 3
	}
	if cfg.Display.TickRate < 1 {
		cfg.Display.TickRate = 30
	}
	return cfg
}

// userConfigPath returns the path of a config file in the user's
// ~/.shadowstep directory, or empty when the home dir is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shadowstep", name)
}
