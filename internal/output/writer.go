// Package output persists generated documents.
package output

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
)

// BackupSuffix is appended to the name of the single retained backup.
const BackupSuffix = ".bak"

// Result describes one write.
type Result struct {
	Path     string
	Written  bool
	BackedUp bool
}

// Writer writes documents, keeping one backup generation of what it replaces.
type Writer struct {
	backup bool
	logger *slog.Logger
}

// NewWriter returns a Writer. With backup set, an existing file is copied to
// <name>.bak before it is replaced; an older backup is overwritten.
func NewWriter(backup bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{backup: backup, logger: logger}
}

// Write replaces path with content, creating parent directories.
func (w *Writer) Write(path, content string) (Result, error) {
	res := Result{Path: path}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return res, errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
			WithContext("path", path).Build()
	}
	if w.backup {
		ok, err := backupFile(path)
		if err != nil {
			// A failed backup does not block the write.
			w.logger.Warn("Could not create backup", logfields.Path(path), logfields.Error(err))
		}
		res.BackedUp = ok
	}
	if err := writeAtomic(path, []byte(content)); err != nil {
		return res, errors.WrapError(err, errors.CategoryFileSystem, "write output").
			WithContext("path", path).Build()
	}
	res.Written = true
	w.logger.Debug("Wrote output", logfields.Path(path), slog.Bool("backup", res.BackedUp))
	return res, nil
}

// WriteIfChanged writes only when the file is missing or differs from content.
func (w *Writer) WriteIfChanged(path, content string) (Result, error) {
	current, err := os.ReadFile(filepath.Clean(path))
	if err == nil && bytes.Equal(current, []byte(content)) {
		return Result{Path: path}, nil
	}
	return w.Write(path, content)
}

func backupFile(path string) (bool, error) {
	src, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+BackupSuffix, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return false, err
	}
	return true, dst.Close()
}

// writeAtomic writes to a sibling temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
