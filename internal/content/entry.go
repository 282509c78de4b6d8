package content

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

// BodyClass marks the region of an entry that previews truncate.
const BodyClass = "article-body"

// Entry is one parsed daily journal document.
type Entry struct {
	// ID is the article id attribute, normally a YYMMDD date code.
	ID string
	// Name is the source file name without extension, normally YYYY-MM-DD.
	Name    string
	Path    string
	Article *html.Node
	// Body is nil when the article has no article-body region.
	Body *html.Node
}

// LoadEntry reads and parses the entry document at path.
func LoadEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read entry").
			WithContext("path", path).
			Build()
	}
	e, err := ParseEntry(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.Path = path
	e.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return e, nil
}

// ParseEntry extracts the first article of a document and its body region.
func ParseEntry(r io.Reader) (*Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, "parse entry markup").Build()
	}
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, ErrNoArticle
	}
	e := &Entry{Article: article.Nodes[0]}
	e.ID, _ = article.Attr("id")
	if body := article.Find("." + BodyClass).First(); body.Length() > 0 {
		e.Body = body.Nodes[0]
	}
	return e, nil
}

// ErrNoArticle is returned for documents without an article element.
var ErrNoArticle = errors.ParseError("entry has no article element").Build()

// Leaves flattens the body of the entry. It returns nil when there is no body.
func (e *Entry) Leaves() []*Leaf {
	if e.Body == nil {
		return nil
	}
	return Flatten(Build(e.Body))
}

// DateCode is a parsed six digit YYMMDD identifier.
type DateCode struct {
	Year, Month, Day int
}

// ParseDateCode accepts exactly six ASCII digits with month 01-12 and day 01-31.
// The century is always 20.
func ParseDateCode(id string) (DateCode, bool) {
	if len(id) != 6 {
		return DateCode{}, false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return DateCode{}, false
		}
	}
	y, _ := strconv.Atoi(id[0:2])
	m, _ := strconv.Atoi(id[2:4])
	d, _ := strconv.Atoi(id[4:6])
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return DateCode{}, false
	}
	return DateCode{Year: 2000 + y, Month: m, Day: d}, true
}

// Date formats the code as YYYY-MM-DD.
func (c DateCode) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}
