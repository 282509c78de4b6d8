package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a file exists
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileNotExists validates that a file does not exist
func (fa *FileAssertions) AssertFileNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected file to not exist: %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a page contains every fragment
func (fa *FileAssertions) AssertFileContains(relativePath string, fragments ...string) *FileAssertions {
	fa.t.Helper()
	content := fa.Content(relativePath)
	for _, f := range fragments {
		if !strings.Contains(content, f) {
			fa.t.Errorf("Expected %s to contain %q\nActual content:\n%s", relativePath, f, content)
		}
	}
	return fa
}

// AssertOrder validates that the fragments appear in the page in the given order
func (fa *FileAssertions) AssertOrder(relativePath string, fragments ...string) *FileAssertions {
	fa.t.Helper()
	content := fa.Content(relativePath)
	last := -1
	for _, f := range fragments {
		i := strings.Index(content, f)
		if i < 0 {
			fa.t.Errorf("Expected %s to contain %q", relativePath, f)
			return fa
		}
		if i < last {
			fa.t.Errorf("Expected %q to appear later in %s", f, relativePath)
		}
		last = i
	}
	return fa
}

// Content reads a file relative to the base directory
func (fa *FileAssertions) Content(relativePath string) string {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Fatalf("Failed to read file %s: %v", fullPath, err)
	}
	return string(content)
}
