package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in order in every search directory.
var configNames = []string{"arkanoid.yaml", "arkanoid.yml", "arkanoid.toml"}

// LoadArkanoid loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/arkanoid.{yaml,yml,toml} ->
// ./configs/arkanoid.{yaml,yml,toml} -> embedded default.
// Only an explicit customPath produces an error; broken files found by the
// search are skipped. Keys missing from a file keep their default values.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return DefaultArkanoidConfig(), err
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			if cfg, err := decodeFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads a config file, picking the decoder by extension.
func decodeFile(path string) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchDirs returns the implicit config directories, user directory first.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	return append(dirs, "configs")
}

// Marshal renders the configuration as YAML.
func Marshal(cfg ArkanoidConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
