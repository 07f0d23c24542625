package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSecrets(t *testing.T) {
	path := writeSecrets(t, `{"EIA_API_KEY": "abcdef1234567890"}`)

	s, err := LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdef1234567890", s.EIAAPIKey)
}

func TestLoadSecretsMissingFile(t *testing.T) {
	_, err := LoadSecrets(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadSecretsInvalidJSON(t *testing.T) {
	path := writeSecrets(t, `not json`)
	_, err := LoadSecrets(path)
	assert.Error(t, err)
}

func TestResolveAPIKeyExplicitWins(t *testing.T) {
	t.Setenv("EIA_API_KEY", "from-env-1234567890")
	path := writeSecrets(t, `{"EIA_API_KEY": "from-file-1234567890"}`)

	key, err := ResolveAPIKey("explicit-1234567890", path)
	require.NoError(t, err)
	assert.Equal(t, "explicit-1234567890", key)
}

func TestResolveAPIKeyEnv(t *testing.T) {
	t.Setenv("EIA_API_KEY", "from-env-1234567890")

	key, err := ResolveAPIKey("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env-1234567890", key)
}

func TestResolveAPIKeySecretsFile(t *testing.T) {
	t.Setenv("EIA_API_KEY", "")
	path := writeSecrets(t, `{"EIA_API_KEY": "from-file-1234567890"}`)

	key, err := ResolveAPIKey("", path)
	require.NoError(t, err)
	assert.Equal(t, "from-file-1234567890", key)
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Setenv("EIA_API_KEY", "")

	_, err := ResolveAPIKey("", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EIA API key is required")
}
