package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "assume.yaml")

	configContent := `
mode: optimized
paths:
  - ./internal
  - ./cmd
strict: true
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "optimized", cfg.Mode)
	assert.Equal(t, []string{"./internal", "./cmd"}, cfg.Paths)
	assert.True(t, cfg.Strict)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "assume.yaml")

	err := os.WriteFile(configPath, []byte("strict: true\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "verified", cfg.Mode)
	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.True(t, cfg.Strict)
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/assume.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(configPath, []byte("mode: [unclosed"), 0o644)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestLoad_InvalidMode(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "assume.yaml")

	err := os.WriteFile(configPath, []byte("mode: fast\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(configPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "assume.yaml")

	err := os.WriteFile(configPath, []byte("mode: verified\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("ASSUME_MODE", "optimized")
	t.Setenv("ASSUME_STRICT", "1")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "optimized", cfg.Mode)
	assert.True(t, cfg.Strict)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg := FromEnv()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "verified", cfg.Mode)
		assert.False(t, cfg.Strict)
	})

	t.Run("mode override", func(t *testing.T) {
		t.Setenv("ASSUME_MODE", "optimized")
		cfg := FromEnv()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "optimized", cfg.Mode)
	})

	t.Run("invalid strict value keeps default", func(t *testing.T) {
		t.Setenv("ASSUME_STRICT", "yes")
		cfg := FromEnv()
		assert.False(t, cfg.Strict)
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts both modes", func(t *testing.T) {
		for _, mode := range []string{"verified", "optimized"} {
			cfg := Default()
			cfg.Mode = mode
			assert.NoError(t, cfg.Validate())
		}
	})

	t.Run("rejects empty paths", func(t *testing.T) {
		cfg := Default()
		cfg.Paths = nil
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
