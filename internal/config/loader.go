package config

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// dataFS embeds the default configuration at build time.
//
//go:embed defaults.yaml
var dataFS embed.FS

// LoadEmbedded reads and unmarshals a YAML file from the embedded filesystem.
func LoadEmbedded[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoadEmbedded reads and unmarshals an embedded YAML file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadEmbedded[T any](filename string) T {
	result, err := LoadEmbedded[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// overlayFile unmarshals a YAML file on top of out. Keys missing from the
// file keep their current values.
func overlayFile(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}
