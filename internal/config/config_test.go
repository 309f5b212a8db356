package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{"threshold": 80, "borderline_band": 5, "workers": 8}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threshold)
	assert.Equal(t, 80, *cfg.Threshold)
	require.NotNil(t, cfg.BorderlineBand)
	assert.Equal(t, 5, *cfg.BorderlineBand)
	require.NotNil(t, cfg.Workers)
	assert.Equal(t, 8, *cfg.Workers)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfig_AbsentKeysStayNil(t *testing.T) {
	path := writeConfigFile(t, `{"api_key": "k"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Threshold)
	assert.Nil(t, cfg.BorderlineBand)
	assert.Nil(t, cfg.Workers)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"threshold": }`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, (&Settings{Threshold: 70, BorderlineBand: 10, Workers: 4}).Validate())
	assert.NoError(t, (&Settings{Threshold: 0, BorderlineBand: 0, Workers: 4}).Validate())
	assert.Error(t, (&Settings{Threshold: 101}).Validate())
	assert.Error(t, (&Settings{Threshold: -1}).Validate())
	assert.Error(t, (&Settings{BorderlineBand: 200}).Validate())
	assert.Error(t, (&Settings{Workers: -1}).Validate())
}

func TestConfig_Resolve(t *testing.T) {
	defaults := Settings{Threshold: 70, BorderlineBand: 10, Workers: 4, APIKey: "env-key"}

	resolved := (&Config{}).Resolve(defaults)
	assert.Equal(t, defaults, resolved)

	threshold := 85
	resolved = (&Config{Threshold: &threshold, APIKey: "file-key"}).Resolve(defaults)
	assert.Equal(t, 85, resolved.Threshold)
	assert.Equal(t, 10, resolved.BorderlineBand)
	assert.Equal(t, "file-key", resolved.APIKey)
}

func TestConfig_ResolveExplicitZeroWins(t *testing.T) {
	defaults := Settings{Threshold: 70, BorderlineBand: 10, Workers: 4}

	path := writeConfigFile(t, `{"threshold": 0, "borderline_band": 0}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// threshold 0 shortlists everyone; band 0 removes the borderline tier.
	// Both are legitimate values, not absent keys.
	resolved := cfg.Resolve(defaults)
	assert.Equal(t, 0, resolved.Threshold)
	assert.Equal(t, 0, resolved.BorderlineBand)
	assert.Equal(t, 4, resolved.Workers)
	assert.NoError(t, resolved.Validate())
}
