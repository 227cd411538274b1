package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Progression: ProgressionConfig{
			CatalogDir:     "catalog",
			BasePoints:     10,
			PointsPerLevel: 2,
			MaxLevel:       60,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
progression:
  catalog_dir: testdata/catalog
  base_points: 8
  points_per_level: 3
  max_level: 40
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "testdata/catalog", cfg.Progression.CatalogDir)
	assert.Equal(t, 8, cfg.Progression.BasePoints)
	assert.Equal(t, 3, cfg.Progression.PointsPerLevel)
	assert.Equal(t, 40, cfg.Progression.MaxLevel)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "catalog", cfg.Progression.CatalogDir)
	assert.Equal(t, 10, cfg.Progression.BasePoints)
	assert.Equal(t, 2, cfg.Progression.PointsPerLevel)
	assert.Equal(t, 60, cfg.Progression.MaxLevel)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateCatalogDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Progression.CatalogDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateBasePointsNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Progression.BasePoints = -1
	assert.Error(t, cfg.Validate())
}

func TestValidatePointsPerLevelNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Progression.PointsPerLevel = -5
	assert.Error(t, cfg.Validate())
}

func TestValidateMaxLevelBelowOne(t *testing.T) {
	cfg := validConfig()
	cfg.Progression.MaxLevel = 0
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyValidPointEconomy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Progression.BasePoints = rapid.IntRange(0, 1000).Draw(t, "base_points")
		cfg.Progression.PointsPerLevel = rapid.IntRange(0, 100).Draw(t, "points_per_level")
		cfg.Progression.MaxLevel = rapid.IntRange(1, 1000).Draw(t, "max_level")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid economy rejected: %v", err)
		}
	})
}

func TestPropertyNegativeEconomyRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Progression.BasePoints = rapid.IntRange(-1000, -1).Draw(t, "base_points")
		if err := cfg.Validate(); err == nil {
			t.Fatalf("negative base points accepted: %d", cfg.Progression.BasePoints)
		}
	})
}
