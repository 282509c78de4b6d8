package tags

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
)

// ScanResult is an index plus counters from one pass over the corpus.
type ScanResult struct {
	Index    Index
	Files    int
	Sections int
	// Skipped lists entry files that could not be read or parsed.
	Skipped []string
}

// Scanner walks every entry document and collects sections carrying a tag attribute.
// It never writes to the corpus.
type Scanner struct {
	index  *period.Index
	logger *slog.Logger
}

// NewScanner creates a scanner over the corpus described by ix.
func NewScanner(ix *period.Index, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{index: ix, logger: logger}
}

// Scan reads the corpus. A missing root is an error; unreadable entries are skipped.
func (s *Scanner) Scan() (*ScanResult, error) {
	root := s.index.Layout().Root
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return nil, errors.NotFoundError("corpus root not found").WithContext("path", root).WithCause(err).Build()
	}

	res := &ScanResult{Index: Index{}}
	for _, year := range s.index.Years() {
		for _, month := range s.index.MonthsInYear(year) {
			files, err := s.index.EntryFiles(month)
			if err != nil {
				s.logger.Warn("Cannot list entries", logfields.Period(month.String()), logfields.Error(err))
				continue
			}
			for _, file := range files {
				res.Files++
				found, err := s.scanFile(file, month)
				if err != nil {
					s.logger.Warn("Skipping unreadable entry", logfields.Path(file), logfields.Error(err))
					res.Skipped = append(res.Skipped, file)
					continue
				}
				for _, e := range found {
					res.Index[e.Tag] = append(res.Index[e.Tag], e)
					res.Sections++
				}
			}
		}
	}
	s.logger.Debug("Tag scan complete",
		slog.Int("files", res.Files), slog.Int("sections", res.Sections), slog.Int("tags", len(res.Index)))
	return res, nil
}

func (s *Scanner) scanFile(path string, month period.Key) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	date := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out []Entry
	var scanErr error
	doc.Find("section[" + Attribute + "]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw, _ := sel.Attr(Attribute)
		parsed := ParseAttribute(raw)
		if len(parsed) == 0 {
			return true
		}
		markup, err := goquery.OuterHtml(sel)
		if err != nil {
			scanErr = err
			return false
		}
		names := make([]string, 0, len(parsed))
		for name := range parsed {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			out = append(out, Entry{
				Tag:        name,
				Date:       date,
				Year:       month.Year,
				Month:      month.Month,
				Markup:     markup,
				Relevance:  parsed[name],
				SourcePath: path,
			})
		}
		return true
	})
	return out, scanErr
}
