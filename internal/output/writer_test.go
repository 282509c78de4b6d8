package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWrite_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2025", "03", "2025-03.html")

	res, err := NewWriter(true, nil).Write(path, "one")
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.False(t, res.BackedUp)
	assert.Equal(t, "one", read(t, path))
	assert.NoFileExists(t, path+BackupSuffix)
}

func TestWrite_SingleGenerationBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	w := NewWriter(true, nil)

	_, err := w.Write(path, "first")
	require.NoError(t, err)
	res, err := w.Write(path, "second")
	require.NoError(t, err)
	assert.True(t, res.BackedUp)
	assert.Equal(t, "first", read(t, path+BackupSuffix))

	_, err = w.Write(path, "third")
	require.NoError(t, err)
	assert.Equal(t, "second", read(t, path+BackupSuffix))
	assert.NoFileExists(t, path+BackupSuffix+BackupSuffix)
	assert.Equal(t, "third", read(t, path))
}

func TestWrite_BackupDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	w := NewWriter(false, nil)
	_, err := w.Write(path, "a")
	require.NoError(t, err)
	_, err = w.Write(path, "b")
	require.NoError(t, err)
	assert.NoFileExists(t, path+BackupSuffix)
}

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.html")
	w := NewWriter(true, nil)

	res, err := w.WriteIfChanged(path, "same")
	require.NoError(t, err)
	assert.True(t, res.Written)

	res, err = w.WriteIfChanged(path, "same")
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.NoFileExists(t, path+BackupSuffix)
}

func TestWrite_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewWriter(false, nil).Write(filepath.Join(blocker, "child.html"), "x")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
}
