// Package config loads optional per-corpus settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig holds settings loaded from phrasebook.yml in a corpus
// directory. The input file list is fixed at build time and is deliberately
// not configurable here.
type CorpusConfig struct {
	// Output overrides the merged artifact filename.
	Output string `yaml:"output,omitempty"`

	// Verbose enables per-file progress lines.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Load attempts to read phrasebook.yml or phrasebook.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*CorpusConfig, error) {
	for _, name := range []string{"phrasebook.yml", "phrasebook.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg CorpusConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return &cfg, nil
	}
	return &CorpusConfig{}, nil
}
