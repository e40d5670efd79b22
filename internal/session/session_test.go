package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "token")
}

func TestLoadMissingFileIsUnauthenticated(t *testing.T) {
	t.Setenv(EnvToken, "")

	s, err := Load(tokenPath(t))
	require.NoError(t, err)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestSetTokenPersists(t *testing.T) {
	t.Setenv(EnvToken, "")

	path := tokenPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc123"))

	assert.True(t, s.Authenticated())
	assert.Equal(t, "abc123", s.Token())

	// A fresh session sees the persisted copy.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reloaded.Token())
}

func TestClearRemovesTokenAndFile(t *testing.T) {
	path := tokenPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc123"))
	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing an already-clear session is fine.
	assert.NoError(t, s.Clear())
}

func TestEnvTokenWinsOverFile(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

	t.Setenv(EnvToken, "from-env")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Token())
}

func TestLoadTrimsToken(t *testing.T) {
	t.Setenv(EnvToken, "")

	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("  abc123 \n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", s.Token())
}

func TestEmptyPathStaysInMemory(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())
	assert.NoError(t, s.Clear())
	assert.False(t, s.Authenticated())
}
