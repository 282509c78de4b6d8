package tags

import (
	"cmp"
	"slices"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/normalization"
)

// SortOrder orders the sections of a tag page.
type SortOrder string

const (
	DateDesc      SortOrder = "date-desc"
	DateAsc       SortOrder = "date-asc"
	RelevanceDesc SortOrder = "relevance-desc"
	RelevanceAsc  SortOrder = "relevance-asc"
)

var sortOrders = normalization.NewNormalizer(map[string]SortOrder{
	"date-desc":      DateDesc,
	"date-asc":       DateAsc,
	"relevance-desc": RelevanceDesc,
	"relevance-asc":  RelevanceAsc,
}, DateDesc)

// ParseSortOrder resolves s. Empty input means DateDesc.
func ParseSortOrder(s string) (SortOrder, error) {
	return sortOrders.Parse(s)
}

// SortOrders lists the accepted spellings.
func SortOrders() []string { return sortOrders.ValidKeys() }

// Sort returns a sorted copy of entries. Relevance orders break ties by date in the same direction.
func Sort(entries []Entry, order SortOrder) []Entry {
	out := slices.Clone(entries)
	var less func(a, b Entry) int
	switch order {
	case DateAsc:
		less = func(a, b Entry) int { return cmp.Compare(a.Date, b.Date) }
	case RelevanceDesc:
		less = func(a, b Entry) int {
			return cmp.Or(cmp.Compare(b.Relevance, a.Relevance), cmp.Compare(b.Date, a.Date))
		}
	case RelevanceAsc:
		less = func(a, b Entry) int {
			return cmp.Or(cmp.Compare(a.Relevance, b.Relevance), cmp.Compare(a.Date, b.Date))
		}
	default:
		less = func(a, b Entry) int { return cmp.Compare(b.Date, a.Date) }
	}
	slices.SortStableFunc(out, less)
	return out
}
