package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "breakout.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are merged onto DefaultBreakoutConfig, so partial files are fine.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped silently when missing.
func Load(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return Parse(data, path)
	}

	return Parse(defaultBreakoutYAML, "embedded defaults")
}

// Parse decodes YAML onto the defaults and validates the result. source
// only labels errors.
func Parse(data []byte, source string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
