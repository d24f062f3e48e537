// Package config resolves pairwise settings from defaults, an optional YAML
// file and PAIRWISE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pablasso/pairwise/internal/survey"
)

const (
	DefaultFile          = "pairwise.yaml"
	DefaultGenerationDir = "generation_test"
	DefaultOutputDir     = "data"
	DefaultBaseline      = "maestro"
	DefaultLogLevel      = "info"

	envPrefix = "PAIRWISE_"
)

// Config holds the settings shared by all commands.
type Config struct {
	GenerationDir string   `yaml:"generation_dir"`
	OutputDir     string   `yaml:"output_dir"`
	Baseline      string   `yaml:"baseline"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Seed          uint64   `yaml:"seed"` // 0 means nondeterministic
	Exclude       []string `yaml:"exclude,omitempty"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GenerationDir: DefaultGenerationDir,
		OutputDir:     DefaultOutputDir,
		Baseline:      DefaultBaseline,
		Title:         survey.DefaultTitle,
		Description:   survey.DefaultDescription,
		LogLevel:      DefaultLogLevel,
	}
}

// Load builds a Config from defaults, then the YAML file at path, then the
// environment. An empty path falls back to DefaultFile, which may be absent.
// An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// optional
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"GENERATION_DIR": &c.GenerationDir,
		"OUTPUT_DIR":     &c.OutputDir,
		"BASELINE":       &c.Baseline,
		"TITLE":          &c.Title,
		"DESCRIPTION":    &c.Description,
		"LOG_LEVEL":      &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED %q: %w", envPrefix, v, err)
		}
		c.Seed = seed
	}

	if v, ok := lookup(envPrefix + "EXCLUDE"); ok && v != "" {
		c.Exclude = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Exclude = append(c.Exclude, name)
			}
		}
	}
	return nil
}

// Validate checks that the required paths and names are set.
func (c Config) Validate() error {
	if c.GenerationDir == "" {
		return fmt.Errorf("generation_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Baseline == "" {
		return fmt.Errorf("baseline must not be empty")
	}
	return nil
}

// BuilderOptions converts the survey-related settings into builder options.
func (c Config) BuilderOptions() []survey.Option {
	opts := []survey.Option{
		survey.WithTitle(c.Title),
		survey.WithDescription(c.Description),
	}
	if c.Seed != 0 {
		opts = append(opts, survey.WithRand(survey.NewSeededRand(c.Seed)))
	}
	return opts
}
