package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rkotla/subcue/internal/cue"
)

// Config holds the reconciliation tunables. All fields are optional; the
// zero value of any field falls back to its default.
type Config struct {
	Flatten FlattenConfig `yaml:"flatten"`
	Compat  CompatConfig  `yaml:"compat"`
}

type FlattenConfig struct {
	// gap below which adjacent same-text cues merge, in milliseconds
	NearGapMillis int `yaml:"near_gap_ms"`
	// safety cap on convergence rounds
	MaxRounds int `yaml:"max_rounds"`
}

type CompatConfig struct {
	// legacy &nbsp; -> apostrophe decoding for byte-compatible output
	NbspApostrophe bool `yaml:"nbsp_apostrophe"`
}

func Default() Config {
	return Config{
		Flatten: FlattenConfig{
			NearGapMillis: int(cue.DefaultNearGap / time.Millisecond),
			MaxRounds:     cue.DefaultMaxRounds,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing path is not
// an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Flattener builds the reconciliation engine this config describes.
func (c Config) Flattener() *cue.Flattener {
	f := cue.NewFlattener()
	if c.Flatten.NearGapMillis > 0 {
		f.NearGap = time.Duration(c.Flatten.NearGapMillis) * time.Millisecond
	}
	if c.Flatten.MaxRounds > 0 {
		f.MaxRounds = c.Flatten.MaxRounds
	}
	f.Sanitizer = cue.Sanitizer{NbspAsApostrophe: c.Compat.NbspApostrophe}
	return f
}
