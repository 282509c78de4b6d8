// Package testutil builds journal corpora on disk for tests and asserts on
// the pages written from them.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)

// Corpus is a journal tree under a temporary directory.
type Corpus struct {
	t    *testing.T
	Root string
}

// NewCorpus creates an empty corpus below t.TempDir().
func NewCorpus(t *testing.T) *Corpus {
	t.Helper()
	root := filepath.Join(t.TempDir(), "zakki")
	if err := os.MkdirAll(root, testDirPermissions); err != nil {
		t.Fatalf("Failed to create corpus root: %v", err)
	}
	return &Corpus{t: t, Root: root}
}

// Entry writes <root>/<yyyy>/<mm>/days/<date>.html for a YYYY-MM-DD date.
// The article id is the YYMMDD date code and body goes inside the article-body region.
func (c *Corpus) Entry(date, body string) *Corpus {
	c.t.Helper()
	code := strings.ReplaceAll(date[2:], "-", "")
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<article id="%s"><h2>%s</h2><div class="article-body">%s</div></article>
</body></html>`, code, date, body)
	return c.Raw(date, doc)
}

// Raw writes an entry file with arbitrary content.
func (c *Corpus) Raw(date, doc string) *Corpus {
	c.t.Helper()
	dir := c.EntriesDir(date[0:4], date[5:7])
	if err := os.MkdirAll(dir, testDirPermissions); err != nil {
		c.t.Fatalf("Failed to create entries directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, date+".html"), []byte(doc), testFilePermissions); err != nil {
		c.t.Fatalf("Failed to write entry %s: %v", date, err)
	}
	return c
}

// EmptyMonth creates a month whose entries directory holds nothing.
func (c *Corpus) EmptyMonth(year, month string) *Corpus {
	c.t.Helper()
	if err := os.MkdirAll(c.EntriesDir(year, month), testDirPermissions); err != nil {
		c.t.Fatalf("Failed to create entries directory: %v", err)
	}
	return c
}

// File writes a file relative to the corpus root.
func (c *Corpus) File(rel, content string) string {
	c.t.Helper()
	p := filepath.Join(c.Root, rel)
	if err := os.MkdirAll(filepath.Dir(p), testDirPermissions); err != nil {
		c.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(p, []byte(content), testFilePermissions); err != nil {
		c.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return p
}

// EntriesDir is <root>/<yyyy>/<mm>/days.
func (c *Corpus) EntriesDir(year, month string) string {
	return filepath.Join(c.Root, year, month, "days")
}

// Assert returns file assertions rooted at the corpus.
func (c *Corpus) Assert() *FileAssertions {
	return NewFileAssertions(c.t, c.Root)
}
