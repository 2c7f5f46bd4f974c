package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atm.list")

	require.NoError(t, WriteFileAtomic(path, []byte("first\n"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second\n"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "state")
	err := WriteFileAtomic(path, []byte("[]"), 0o644)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileAtomic_RenameFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	orig := rename
	t.Cleanup(func() { rename = orig })
	rename = func(string, string) error { return errors.New("rename boom") }

	err := WriteFileAtomic(path, []byte("new"), 0o644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename boom")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_CreateTempFailure(t *testing.T) {
	orig := createTemp
	t.Cleanup(func() { createTemp = orig })
	createTemp = func(string, string) (*os.File, error) { return nil, errors.New("no space") }

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "state"), []byte("x"), 0o644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space")
}
