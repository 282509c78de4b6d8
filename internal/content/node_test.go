package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, markup string) *Entry {
	t.Helper()
	e, err := ParseEntry(strings.NewReader(`<article id="250102"><div class="article-body">` + markup + `</div></article>`))
	require.NoError(t, err)
	require.NotNil(t, e.Body)
	return e
}

func kinds(leaves []*Leaf) []Kind {
	out := make([]Kind, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, l.Kind)
	}
	return out
}

func TestFlatten_DeepNestingKeepsOrder(t *testing.T) {
	e := parseBody(t, `
		<h2>one</h2>
		<section><div><section><article><p>two</p></article></section></div><hr></section>
		<p>three<br>inline</p>
		<div><div><div><div><ul><li>four</li></ul></div></div></div></div>
		<span>dropped</span>loose text
		<img src="x.png">`)

	leaves := e.Leaves()
	assert.Equal(t, []Kind{KindHeading2, KindParagraph, KindDivider, KindParagraph, KindUnorderedList, KindImage}, kinds(leaves))
	assert.Equal(t, "two", leaves[1].Text())
	assert.Equal(t, "threeinline", leaves[3].Text())
}

func TestFlatten_NoContainersInOutput(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("<section><p>x</p>")
	}
	for i := 0; i < 40; i++ {
		b.WriteString("</section>")
	}
	leaves := parseBody(t, b.String()).Leaves()
	require.Len(t, leaves, 40)
	for _, l := range leaves {
		assert.Equal(t, KindParagraph, l.Kind)
	}
}

func TestClassify(t *testing.T) {
	leaves := parseBody(t, `<h1>a</h1><h6>b</h6><ol><li>c</li></ol><blockquote>d</blockquote><iframe src="v"></iframe><table><tr><td><p>no</p></td></tr></table>`).Leaves()
	assert.Equal(t, []Kind{KindHeading1, KindHeading6, KindOrderedList, KindBlockquote, KindFrame}, kinds(leaves))
	assert.True(t, KindHeading6.IsHeading())
	assert.False(t, KindParagraph.IsHeading())
	assert.True(t, KindOrderedList.IsList())
	assert.Equal(t, "embedded-frame", KindFrame.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestLeaf_LenCountsCharacters(t *testing.T) {
	leaves := parseBody(t, `<p>日本語テキスト</p>`).Leaves()
	require.Len(t, leaves, 1)
	assert.Equal(t, 7, leaves[0].Len())
	assert.Equal(t, "<p>日本語テキスト</p>", leaves[0].Markup())
}

func TestFlatten_Nil(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}
