// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	secret, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, secret)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	s := NewFileStore(path)

	require.NoError(t, s.Save("a@b.com.n1"))

	secret, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com.n1", secret)
}

// TestFileStore_FilePermissions: the credential file must be readable by
// the owner only.
func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s := NewFileStore(path)
	require.NoError(t, s.Save("a@b.com.n1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, s.Save("old"))
	require.NoError(t, s.Save("new"))

	secret, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", secret)
}

func TestFileStore_Clear(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, s.Save("a@b.com.n1"))
	require.NoError(t, s.Clear())

	secret, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, secret)
}

func TestFileStore_ClearMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, s.Clear())
}