// Package ops resolves run configuration: a flat JSON file, layered under
// whatever flags the caller explicitly set on the command line.
package ops

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileConfig mirrors the on-disk JSON config layout. Every field is a
// pointer so an absent key leaves the corresponding CLI flag value alone.
type FileConfig struct {
	Input      *string `json:"input"`
	OutputDir  *string `json:"outputDir"`
	Workers    *int    `json:"workers"`
	PprofAddr  *string `json:"pprofAddr"`
}

// Config is the fully resolved run configuration.
type Config struct {
	Input     string
	OutputDir string
	Workers   int
	PprofAddr string
}

// Load reads the JSON config file at path, if path is non-empty, and layers
// it under base: any field the file sets overrides the matching field in
// base, but flags the caller explicitly passed should be re-applied by the
// caller after Load returns, since Load cannot distinguish a default flag
// value from one an operator supplied deliberately.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var file FileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	resolved := base
	if file.Input != nil {
		resolved.Input = *file.Input
	}
	if file.OutputDir != nil {
		resolved.OutputDir = *file.OutputDir
	}
	if file.Workers != nil {
		resolved.Workers = *file.Workers
	}
	if file.PprofAddr != nil {
		resolved.PprofAddr = *file.PprofAddr
	}

	if err := validate(resolved); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func validate(cfg Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("config: input path is required")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("config: outputDir is required")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0")
	}
	return nil
}
