package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewStore(path)

	require.NoError(t, s.Save("tok123"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.True(t, s.LoggedIn())
}

func TestSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewStore(path)
	require.NoError(t, s.Save("tok123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveRejectsEmptyToken(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "token"))
	assert.Error(t, s.Save(""))
}

func TestTokenMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "token"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, s.LoggedIn())
}

func TestTokenTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok123\n\n"), 0o600))

	token, err := NewStore(path).Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewStore(path)
	require.NoError(t, s.Save("tok123"))

	require.NoError(t, s.Clear())
	assert.False(t, s.LoggedIn())
	assert.NoFileExists(t, path)

	// Clearing again is fine.
	require.NoError(t, s.Clear())
}
