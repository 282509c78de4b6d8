// Package taglist keeps the tag list embedded in a master page in step with the corpus.
package taglist

import (
	"cmp"
	"fmt"
	"html"
	"net/url"
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/normalization"
)

// Order sorts tag summaries in the embedded list.
type Order string

const (
	CountDesc Order = "count-desc"
	CountAsc  Order = "count-asc"
	NameAsc   Order = "name-asc"
	NameDesc  Order = "name-desc"
)

var orders = normalization.NewNormalizer(map[string]Order{
	"count-desc": CountDesc,
	"count-asc":  CountAsc,
	"name-asc":   NameAsc,
	"name-desc":  NameDesc,
}, CountDesc)

// ParseOrder resolves s. Empty input means CountDesc.
func ParseOrder(s string) (Order, error) { return orders.Parse(s) }

// Summary is a tag and the number of sections carrying it.
type Summary struct {
	Tag   string
	Count int
}

// Markers delimit the region of the master document that is rewritten.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers match an ordered list with id "taglist".
func DefaultMarkers() Markers {
	return Markers{Start: `<ol id="taglist">`, End: `</ol>`}
}

// Renderer formats the list fragment.
type Renderer struct {
	// LinkPrefix is the site path of the tag pages, e.g. "/txt/zakki/tag".
	LinkPrefix string
	Extension  string
	// Indent precedes every item line.
	Indent string
}

// DefaultRenderer matches the layout of the hand-written master page.
func DefaultRenderer() Renderer {
	return Renderer{LinkPrefix: "/tag", Extension: ".html", Indent: strings.Repeat(" ", 20)}
}

// ErrMarkerNotFound is returned when the start or end marker is absent.
var ErrMarkerNotFound = errors.ValidationError("tag list markers not found in master document").Build()

// ErrMarkerAmbiguous is returned when the start marker occurs more than once.
var ErrMarkerAmbiguous = errors.ValidationError("tag list start marker occurs more than once").Build()

// SortSummaries returns a sorted copy. Count orders break ties by name ascending.
func SortSummaries(in []Summary, order Order) []Summary {
	out := slices.Clone(in)
	byName := func(a, b Summary) int { return cmp.Compare(a.Tag, b.Tag) }
	switch order {
	case CountAsc:
		slices.SortStableFunc(out, func(a, b Summary) int { return cmp.Or(cmp.Compare(a.Count, b.Count), byName(a, b)) })
	case NameAsc:
		slices.SortStableFunc(out, byName)
	case NameDesc:
		slices.SortStableFunc(out, func(a, b Summary) int { return byName(b, a) })
	default:
		slices.SortStableFunc(out, func(a, b Summary) int { return cmp.Or(cmp.Compare(b.Count, a.Count), byName(a, b)) })
	}
	return out
}

// Fragment renders the inner content of the list: one item per line, wrapped in newlines.
func (r Renderer) Fragment(summaries []Summary) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, s := range summaries {
		href := path.Join("/", r.LinkPrefix, url.PathEscape(s.Tag)+r.Extension)
		fmt.Fprintf(&b, "%s<li class=\"tags\"><a href=\"%s\">#%s</a></li>\n",
			r.Indent, html.EscapeString(href), html.EscapeString(s.Tag))
	}
	b.WriteString(strings.Repeat(" ", max(len(r.Indent)-2, 0)))
	return b.String()
}

// Sync replaces the content between the markers of master with the rendered list.
// It reports changed=false and returns master untouched when the content is already current.
func Sync(master string, summaries []Summary, order Order, markers Markers, r Renderer) (string, bool, error) {
	start := strings.Index(master, markers.Start)
	if start < 0 {
		return master, false, ErrMarkerNotFound
	}
	if strings.Count(master, markers.Start) > 1 {
		return master, false, ErrMarkerAmbiguous
	}
	innerStart := start + len(markers.Start)
	end := strings.Index(master[innerStart:], markers.End)
	if end < 0 {
		return master, false, ErrMarkerNotFound
	}
	innerEnd := innerStart + end

	fragment := r.Fragment(SortSummaries(summaries, order))
	if master[innerStart:innerEnd] == fragment {
		return master, false, nil
	}
	return master[:innerStart] + fragment + master[innerEnd:], true, nil
}
