package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable.
func Load(customPath string) (RunnerConfig, Source, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
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
