package taglist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const master = `<html><body>
  <nav>
    <ol id="taglist">
      <li>stale</li>
    </ol>
  </nav>
  <ol id="other"><li>keep</li></ol>
</body></html>`

func summaries() []Summary {
	return []Summary{{"music", 3}, {"anime", 5}, {"go", 3}, {"timeline", 1}}
}

func names(s []Summary) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = x.Tag
	}
	return out
}

func TestSortSummaries(t *testing.T) {
	in := summaries()
	assert.Equal(t, []string{"anime", "go", "music", "timeline"}, names(SortSummaries(in, CountDesc)))
	assert.Equal(t, []string{"timeline", "go", "music", "anime"}, names(SortSummaries(in, CountAsc)))
	assert.Equal(t, []string{"anime", "go", "music", "timeline"}, names(SortSummaries(in, NameAsc)))
	assert.Equal(t, []string{"timeline", "music", "go", "anime"}, names(SortSummaries(in, NameDesc)))
	assert.Equal(t, "music", in[0].Tag)
}

func TestSync_ReplacesOnlyMarkedRegion(t *testing.T) {
	r := Renderer{LinkPrefix: "/txt/zakki/tag", Extension: ".html", Indent: "      "}

	out, changed, err := Sync(master, summaries(), CountDesc, DefaultMarkers(), r)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotContains(t, out, "stale")
	assert.Contains(t, out, `      <li class="tags"><a href="/txt/zakki/tag/anime.html">#anime</a></li>`)
	assert.True(t, strings.HasPrefix(out, "<html><body>\n  <nav>\n    <ol id=\"taglist\">\n"))
	assert.True(t, strings.HasSuffix(out, "</ol>\n  </nav>\n  <ol id=\"other\"><li>keep</li></ol>\n</body></html>"))
	assert.Less(t, strings.Index(out, "#anime"), strings.Index(out, "#go"))
}

func TestSync_Idempotent(t *testing.T) {
	r := DefaultRenderer()
	once, changed, err := Sync(master, summaries(), CountDesc, DefaultMarkers(), r)
	require.NoError(t, err)
	require.True(t, changed)

	twice, changed, err := Sync(once, summaries(), CountDesc, DefaultMarkers(), r)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestSync_Markers(t *testing.T) {
	r := DefaultRenderer()

	_, _, err := Sync("<ol id=\"x\"></ol>", summaries(), CountDesc, DefaultMarkers(), r)
	assert.ErrorIs(t, err, ErrMarkerNotFound)

	_, _, err = Sync(`<ol id="taglist"><li>open`, summaries(), CountDesc, DefaultMarkers(), r)
	assert.ErrorIs(t, err, ErrMarkerNotFound)

	doubled := `<ol id="taglist"></ol><ol id="taglist"></ol>`
	out, changed, err := Sync(doubled, summaries(), CountDesc, DefaultMarkers(), r)
	assert.ErrorIs(t, err, ErrMarkerAmbiguous)
	assert.False(t, changed)
	assert.Equal(t, doubled, out)

	custom := Markers{Start: "<!-- tags -->", End: "<!-- /tags -->"}
	out, changed, err = Sync("a<!-- tags -->b<!-- /tags -->c", []Summary{{"x", 1}}, NameAsc, custom, Renderer{Indent: ""})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "a<!-- tags -->\n<li class=\"tags\"><a href=\"/x\">#x</a></li>\n<!-- /tags -->c", out)
}

func TestFragment_Escapes(t *testing.T) {
	f := Renderer{LinkPrefix: "/tag", Extension: ".html"}.Fragment([]Summary{{"a&b", 1}})
	assert.Contains(t, f, `#a&amp;b`)
	assert.Contains(t, f, `href="/tag/a&amp;b.html"`)
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, CountDesc, o)
	o, err = ParseOrder("NAME_ASC")
	require.NoError(t, err)
	assert.Equal(t, NameAsc, o)
	_, err = ParseOrder("size")
	assert.Error(t, err)
}
