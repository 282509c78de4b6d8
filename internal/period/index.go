package period

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Layout describes where entries live under the corpus root.
type Layout struct {
	Root       string
	EntriesDir string // "days"
	Extension  string // ".html"
}

// Index answers existence questions about the corpus. It only reads the filesystem.
type Index struct {
	layout Layout
}

// NewIndex returns an Index over layout, filling in the conventional entries dir and extension.
func NewIndex(layout Layout) *Index {
	if layout.EntriesDir == "" {
		layout.EntriesDir = "days"
	}
	if layout.Extension == "" {
		layout.Extension = ".html"
	}
	return &Index{layout: layout}
}

// Layout returns the resolved layout.
func (ix *Index) Layout() Layout { return ix.layout }

// YearPath is <root>/<yyyy>.
func (ix *Index) YearPath(k Key) string {
	return filepath.Join(ix.layout.Root, k.YearDir())
}

// MonthPath is <root>/<yyyy>/<mm>.
func (ix *Index) MonthPath(k Key) string {
	return filepath.Join(ix.layout.Root, k.YearDir(), k.MonthDir())
}

// EntriesPath is <root>/<yyyy>/<mm>/<entries>.
func (ix *Index) EntriesPath(k Key) string {
	return filepath.Join(ix.MonthPath(k), ix.layout.EntriesDir)
}

// EntryFiles returns the entry documents of a month sorted by file name.
// A missing directory yields no files and no error.
func (ix *Index) EntryFiles(k Key) ([]string, error) {
	dir := ix.EntriesPath(k)
	des, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, de := range des {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ix.layout.Extension) {
			continue
		}
		files = append(files, filepath.Join(dir, de.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// CountEntries returns the number of entry documents in a month.
func (ix *Index) CountEntries(k Key) int {
	files, _ := ix.EntryFiles(k)
	return len(files)
}

// HasEntries reports whether a month holds at least one entry document.
func (ix *Index) HasEntries(k Key) bool {
	return ix.CountEntries(k) > 0
}

// MonthsInYear returns the months of a year that hold entries, ascending.
func (ix *Index) MonthsInYear(year int) []Key {
	des, err := os.ReadDir(ix.YearPath(YearKey(year)))
	if err != nil {
		return nil
	}
	var months []Key
	for _, de := range des {
		if !de.IsDir() || !digits(de.Name(), 2) {
			continue
		}
		m, err := strconv.Atoi(de.Name())
		if err != nil || m < 1 || m > 12 {
			continue
		}
		k := MonthKey(year, m)
		if ix.HasEntries(k) {
			months = append(months, k)
		}
	}
	slices.SortFunc(months, func(a, b Key) int { return a.Index() - b.Index() })
	return months
}

// digits reports whether s is exactly n ASCII digits.
func digits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Years returns every four digit year directory under the root, ascending.
func (ix *Index) Years() []int {
	des, err := os.ReadDir(ix.layout.Root)
	if err != nil {
		return nil
	}
	var years []int
	for _, de := range des {
		if !de.IsDir() || !digits(de.Name(), 4) {
			continue
		}
		if y, err := strconv.Atoi(de.Name()); err == nil {
			years = append(years, y)
		}
	}
	slices.Sort(years)
	return years
}

// Qualifies reports whether k exists with content: a month with at least one entry,
// or a year with at least one such month.
func (ix *Index) Qualifies(k Key) bool {
	if k.IsYear() {
		return len(ix.MonthsInYear(k.Year)) > 0
	}
	return ix.HasEntries(k)
}

// FindAdjacent scans up to horizon steps on each side of current and returns the
// nearest qualifying periods. Either result is nil when nothing qualifies in range.
func (ix *Index) FindAdjacent(current Key, horizon int) (prev, next *Key) {
	prev = ix.scan(current, horizon, -1)
	next = ix.scan(current, horizon, 1)
	return prev, next
}

func (ix *Index) scan(current Key, horizon, dir int) *Key {
	for step := 1; step <= horizon; step++ {
		k := current.Add(dir * step)
		if ix.Qualifies(k) {
			return &k
		}
	}
	return nil
}
