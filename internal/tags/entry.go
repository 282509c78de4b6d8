package tags

import (
	"cmp"
	"slices"
)

// Entry is one tagged section as seen from one of its tags.
type Entry struct {
	Tag        string
	Date       string // YYYY-MM-DD, from the entry file name
	Year       int
	Month      int
	Markup     string
	Relevance  int
	SourcePath string
}

// Index maps tag names to their entries in scan order.
type Index map[string][]Entry

// Names returns the tag names in ascending order.
func (ix Index) Names() []string {
	names := make([]string, 0, len(ix))
	for name := range ix {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sections counts entries over all tags.
func (ix Index) Sections() int {
	n := 0
	for _, entries := range ix {
		n += len(entries)
	}
	return n
}

// DateGroup collects the sections of a tag written on one day.
type DateGroup struct {
	Date string
	// Relevance is the highest relevance in the group.
	Relevance int
	Entries   []Entry
}

// GroupByDate groups entries by date. Groups are ordered newest first whatever
// the order of entries; entries keep their relative order inside a group.
func GroupByDate(entries []Entry) []DateGroup {
	pos := map[string]int{}
	var groups []DateGroup
	for _, e := range entries {
		i, ok := pos[e.Date]
		if !ok {
			i = len(groups)
			pos[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date, Relevance: e.Relevance})
		}
		g := &groups[i]
		g.Entries = append(g.Entries, e)
		g.Relevance = max(g.Relevance, e.Relevance)
	}
	slices.SortStableFunc(groups, func(a, b DateGroup) int { return cmp.Compare(b.Date, a.Date) })
	return groups
}

// Stats summarises the entries of a tag.
type Stats struct {
	Count         int
	Earliest      string
	Latest        string
	MeanRelevance float64
}

// ComputeStats derives count, date range and mean relevance. Empty input yields a zero mean.
func ComputeStats(entries []Entry) Stats {
	s := Stats{Count: len(entries)}
	if len(entries) == 0 {
		return s
	}
	sum := 0
	s.Earliest, s.Latest = entries[0].Date, entries[0].Date
	for _, e := range entries {
		sum += e.Relevance
		if e.Date < s.Earliest {
			s.Earliest = e.Date
		}
		if e.Date > s.Latest {
			s.Latest = e.Date
		}
	}
	s.MeanRelevance = float64(sum) / float64(len(entries))
	return s
}
