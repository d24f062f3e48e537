package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/pairwise/internal/survey"
	"github.com/pablasso/pairwise/internal/testutil"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	testutil.SetupTestDir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "generation_test", cfg.GenerationDir)
	assert.Equal(t, "data", cfg.OutputDir)
	assert.Equal(t, "maestro", cfg.Baseline)
	assert.Equal(t, survey.DefaultTitle, cfg.Title)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	yamlData := `generation_dir: runs/v2
baseline: sdxl
seed: 99
exclude:
  - scratch
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(yamlData), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "runs/v2", cfg.GenerationDir)
	assert.Equal(t, "sdxl", cfg.Baseline)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, []string{"scratch"}, cfg.Exclude)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	testutil.SetupTestDir(t)

	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [not a number"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("baseline: from-file\n"), 0644))
	t.Setenv("PAIRWISE_BASELINE", "from-env")
	t.Setenv("PAIRWISE_SEED", "5")
	t.Setenv("PAIRWISE_EXCLUDE", "a, b ,,c")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Baseline)
	assert.Equal(t, uint64(5), cfg.Seed)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Exclude)
}

func TestLoad_InvalidSeedEnv(t *testing.T) {
	testutil.SetupTestDir(t)
	t.Setenv("PAIRWISE_SEED", "-1")

	_, err := Load("")
	assert.ErrorContains(t, err, "PAIRWISE_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty generation dir", func(c *Config) { c.GenerationDir = "" }, "generation_dir"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"empty baseline", func(c *Config) { c.Baseline = "" }, "baseline"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBuilderOptions_SeedIsDeterministic(t *testing.T) {
	files := []string{"1.png", "2.png", "3.png", "4.png", "5.png", "6.png", "7.png", "8.png"}
	prompts := map[string]string{}
	for i := 1; i <= len(files); i++ {
		prompts[fmt.Sprint(i)] = fmt.Sprintf("prompt %d", i)
	}
	genDir := testutil.NewGeneration(t).
		Method("alpha", files...).
		Method("beta", files...).
		Prompts(prompts).
		Dir()

	cfg := Default()
	cfg.Seed = 3
	cfg.Title = "Seeded"

	first, err := survey.NewBuilder(cfg.BuilderOptions()...).Assemble("alpha", "beta", genDir)
	require.NoError(t, err)
	second, err := survey.NewBuilder(cfg.BuilderOptions()...).Assemble("alpha", "beta", genDir)
	require.NoError(t, err)

	assert.Equal(t, "Seeded", first.Title)
	assert.Equal(t, first, second)
}

func TestBuilderOptions_ZeroSeedKeepsDefaultSource(t *testing.T) {
	cfg := Default()
	cfg.Seed = 3
	assert.Len(t, cfg.BuilderOptions(), 3)

	cfg.Seed = 0
	assert.Len(t, cfg.BuilderOptions(), 2)
}
