package render

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
)

func newRenderer(t *testing.T) *HTMLRenderer {
	t.Helper()
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	return r
}

func TestMonth(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Month(MonthPage{
		Chrome:  Chrome{Title: "2025-03", Lang: "ja", Breadcrumbs: []Link{{Href: "/", Label: "home"}, {Href: "../../2025/2025.html", Label: "2025"}}},
		Key:     period.MonthKey(2025, 3),
		Count:   1,
		Entries: []template.HTML{`<article id="250301"><p>x</p></article>`},
		Prev:    &Link{Href: "../02/2025-02.html", Label: "2025-02"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `<main id="zakki03" class="month-page" data-period="2025-03">`)
	assert.Contains(t, out, `<article id="250301"><p>x</p></article>`)
	assert.Contains(t, out, `<a class="prev" href="../02/2025-02.html">&laquo; 2025-02</a>`)
	assert.Contains(t, out, `<span class="next disabled">&raquo;</span>`)
	assert.Contains(t, out, `<a class="addressbar" href="/">home</a> / <a class="addressbar" href="../../2025/2025.html">2025</a>`)
	assert.Contains(t, out, `<html lang="ja">`)
}

func TestYear(t *testing.T) {
	r := newRenderer(t)
	slots := make([]MonthSlot, 12)
	for i := range slots {
		slots[i] = MonthSlot{Key: period.MonthKey(2025, i+1)}
	}
	slots[2].Count = 4
	out, err := r.Year(YearPage{
		Chrome: Chrome{Title: "2025"},
		Year:   2025,
		Total:  4,
		Slots:  slots,
		Sections: []MonthSection{{
			Key: period.MonthKey(2025, 3), Href: "03/2025-03.html",
			Entries: []template.HTML{`<article>a</article>`},
		}},
		Next: &Link{Href: "../2026/2026.html", Label: "2026"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, `class="has-articles"`))
	assert.Equal(t, 11, strings.Count(out, `class="no-articles"`))
	assert.Contains(t, out, `<section class="month-section" id="month-03">`)
	assert.Contains(t, out, `<h2><a href="03/2025-03.html">2025-03</a></h2>`)
	assert.Contains(t, out, `4 entries in 1 months`)
	assert.Contains(t, out, `<span class="prev disabled">`)
}

func TestTag(t *testing.T) {
	r := newRenderer(t)
	desc, err := r.Markdown("Songs **I** liked <script>x</script>")
	require.NoError(t, err)
	out, err := r.Tag(TagPage{
		Chrome:      Chrome{Title: "#music"},
		Tag:         "music",
		Sort:        tags.RelevanceDesc,
		Description: desc,
		Stats:       tags.Stats{Count: 2, Earliest: "2025-01-01", Latest: "2025-02-01", MeanRelevance: 75},
		Groups: []TagGroup{{
			Date: "2025-02-01", Href: "/2025/02/days/2025-02-01.html", Relevance: 90,
			Sections: []template.HTML{`<section data-tags="music=90">s</section>`},
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `<article class="tag-article" data-date="2025-02-01" data-relevance="90">`)
	assert.Contains(t, out, `<h3><a href="/2025/02/days/2025-02-01.html">2025-02-01</a></h3>`)
	assert.Contains(t, out, `<strong>I</strong>`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `mean relevance: 75%`)
	assert.Contains(t, out, `data-sort="relevance-desc"`)
}

func TestTagIndex(t *testing.T) {
	r := newRenderer(t)
	out, err := r.TagIndex(TagIndexPage{
		Chrome: Chrome{Title: "Tags"},
		Rows: []TagRow{
			{Name: "music", Href: "music.html", Stats: tags.Stats{Count: 3, Earliest: "2024-01-01", Latest: "2025-01-01", MeanRelevance: 66.6}},
			{Name: "a<b", Href: "a%3Cb.html", Stats: tags.Stats{Count: 1}},
		},
		Sections: 4,
	})
	require.NoError(t, err)

	assert.Contains(t, out, `2 tags | 4 sections`)
	assert.Contains(t, out, `<a href="music.html">#music</a>`)
	assert.Contains(t, out, `#a&lt;b`)
	assert.Contains(t, out, `67%`)
}

func TestMarkdown_Empty(t *testing.T) {
	out, err := newRenderer(t).Markdown("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
