// Package render turns assembled page data into markup.
package render

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer produces complete documents from page data.
type Renderer interface {
	Month(MonthPage) (string, error)
	Year(YearPage) (string, error)
	Tag(TagPage) (string, error)
	TagIndex(TagIndexPage) (string, error)
}

// Link is a navigation target. A nil *Link renders as a disabled control.
type Link struct {
	Href  string
	Label string
}

// Chrome is the page frame shared by every document.
type Chrome struct {
	Title       string
	Lang        string
	Stylesheets []string
	Breadcrumbs []Link
	Generator   string
}

// MonthPage lists the previews of one month.
type MonthPage struct {
	Chrome     Chrome
	Key        period.Key
	Count      int
	Entries    []template.HTML
	Prev, Next *Link
}

// MonthSlot is one of the twelve cells of a year's month index.
type MonthSlot struct {
	Key   period.Key
	Count int
}

// MonthSection holds the previews of one month on a year page.
type MonthSection struct {
	Key     period.Key
	Href    string
	Entries []template.HTML
}

// YearPage lists the months of one year.
type YearPage struct {
	Chrome     Chrome
	Year       int
	Total      int
	Slots      []MonthSlot
	Sections   []MonthSection
	Prev, Next *Link
}

// TagGroup is the sections of one day on a tag page.
type TagGroup struct {
	Date      string
	Href      string
	Relevance int
	Sections  []template.HTML
}

// TagPage lists every section carrying a tag.
type TagPage struct {
	Chrome      Chrome
	Tag         string
	Sort        tags.SortOrder
	Description template.HTML
	Stats       tags.Stats
	Groups      []TagGroup
}

// TagRow is one tag on the index page.
type TagRow struct {
	Name        string
	Href        string
	Stats       tags.Stats
	Description template.HTML
}

// TagIndexPage lists every tag.
type TagIndexPage struct {
	Chrome   Chrome
	Rows     []TagRow
	Sections int
}

// HTMLRenderer renders pages with the embedded html/template set.
type HTMLRenderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	t, err := template.New("pages").ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "parse page templates").Build()
	}
	return &HTMLRenderer{tmpl: t, md: goldmark.New()}, nil
}

func (r *HTMLRenderer) Month(p MonthPage) (string, error) { return r.execute("month", p) }

func (r *HTMLRenderer) Year(p YearPage) (string, error) { return r.execute("year", p) }

func (r *HTMLRenderer) Tag(p TagPage) (string, error) { return r.execute("tag", p) }

func (r *HTMLRenderer) TagIndex(p TagIndexPage) (string, error) { return r.execute("tag_index", p) }

// Markdown converts a tag description to markup. Raw HTML in the source is not passed through.
func (r *HTMLRenderer) Markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", errors.WrapError(err, errors.CategoryBuild, "convert description").Build()
	}
	return template.HTML(bytes.TrimSpace(buf.Bytes())), nil
}

func (r *HTMLRenderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.WrapError(err, errors.CategoryBuild, "render page").WithContext("template", name).Build()
	}
	return buf.String(), nil
}
