package period

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEntries creates <root>/<yyyy>/<mm>/days/<name> for each name.
func writeEntries(t *testing.T, root string, k Key, names ...string) {
	t.Helper()
	dir := filepath.Join(root, k.YearDir(), k.MonthDir(), "days")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("<article></article>"), 0o600))
	}
}

func TestFindAdjacent_SparseMonths(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2025, 1), "2025-01-05.html")
	writeEntries(t, root, MonthKey(2025, 6), "2025-06-01.html")
	ix := NewIndex(Layout{Root: root})

	prev, next := ix.FindAdjacent(MonthKey(2025, 6), 24)
	require.NotNil(t, prev)
	assert.Equal(t, MonthKey(2025, 1), *prev)
	assert.Nil(t, next)

	prev, next = ix.FindAdjacent(MonthKey(2025, 1), 24)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, MonthKey(2025, 6), *next)
}

func TestFindAdjacent_Horizon(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2022, 1), "2022-01-01.html")
	writeEntries(t, root, MonthKey(2025, 1), "2025-01-01.html")
	ix := NewIndex(Layout{Root: root})

	prev, _ := ix.FindAdjacent(MonthKey(2025, 1), 24)
	assert.Nil(t, prev, "36 months back is outside the horizon")

	prev, _ = ix.FindAdjacent(MonthKey(2025, 1), 36)
	require.NotNil(t, prev)
	assert.Equal(t, MonthKey(2022, 1), *prev)
}

func TestFindAdjacent_EmptyDirectoriesDoNotQualify(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2024, 10), "2024-10-10.html")
	// December exists but holds no entries.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024", "12", "days"), 0o750))
	// November has only a non-entry file.
	writeEntries(t, root, MonthKey(2024, 11), "notes.txt")
	ix := NewIndex(Layout{Root: root})

	prev, next := ix.FindAdjacent(MonthKey(2025, 1), 24)
	require.NotNil(t, prev)
	assert.Equal(t, MonthKey(2024, 10), *prev)
	assert.Nil(t, next)
}

func TestFindAdjacent_Years(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2021, 3), "2021-03-01.html")
	// 2023 has a month directory but no entries, so it must be skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2023", "04", "days"), 0o750))
	writeEntries(t, root, MonthKey(2024, 2), "2024-02-02.html")
	writeEntries(t, root, MonthKey(2026, 7), "2026-07-07.html")
	ix := NewIndex(Layout{Root: root})

	prev, next := ix.FindAdjacent(YearKey(2024), 10)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, YearKey(2021), *prev)
	assert.Equal(t, YearKey(2026), *next)

	prev, next = ix.FindAdjacent(YearKey(2024), 1)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestIndex_MonthsAndEntries(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2025, 3), "2025-03-02.html", "2025-03-01.html", "skip.md")
	writeEntries(t, root, MonthKey(2025, 1), "2025-01-01.html")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2025", "notes"), 0o750))
	ix := NewIndex(Layout{Root: root})

	assert.Equal(t, []Key{MonthKey(2025, 1), MonthKey(2025, 3)}, ix.MonthsInYear(2025))
	assert.Equal(t, 2, ix.CountEntries(MonthKey(2025, 3)))
	assert.Equal(t, 0, ix.CountEntries(MonthKey(2025, 2)))
	assert.Equal(t, []int{2025}, ix.Years())

	files, err := ix.EntryFiles(MonthKey(2025, 3))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "2025-03-01.html", filepath.Base(files[0]))

	files, err = ix.EntryFiles(MonthKey(2019, 1))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestIndex_MonthsInYearIgnoresNonCanonicalDirs(t *testing.T) {
	root := t.TempDir()
	writeEntries(t, root, MonthKey(2025, 3), "2025-03-01.html")
	for _, stray := range []string{"3", "003", "+3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "2025", stray, "days"), 0o750))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "+202", "01", "days"), 0o750))
	ix := NewIndex(Layout{Root: root})

	assert.Equal(t, []Key{MonthKey(2025, 3)}, ix.MonthsInYear(2025))
	assert.Equal(t, []int{2025}, ix.Years())
}
