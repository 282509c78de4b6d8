package preview

import (
	"log/slog"
	"path"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/journalbuilder/internal/content"
)

// ReadMore builds links from a preview back to the full entry.
type ReadMore struct {
	// Prefix is the site path of the corpus root, e.g. "/txt/zakki".
	Prefix     string
	EntriesDir string
	Extension  string
	Label      string
}

// Href returns <prefix>/<yyyy>/<mm>/<entries>/<yyyy-mm-dd><ext>.
func (r ReadMore) Href(code content.DateCode) string {
	entries := r.EntriesDir
	if entries == "" {
		entries = "days"
	}
	ext := r.Extension
	if ext == "" {
		ext = ".html"
	}
	date := code.Date()
	return path.Join("/", r.Prefix, date[0:4], date[5:7], entries, date+ext)
}

func (r ReadMore) node(code content.DateCode) *html.Node {
	label := r.Label
	if label == "" {
		label = "Read more"
	}
	p := element(atom.P, html.Attribute{Key: "class", Val: "article-ellipsis"})
	a := element(atom.A,
		html.Attribute{Key: "href", Val: r.Href(code)},
		html.Attribute{Key: "class", Val: "read-more-link"})
	a.AppendChild(textNode(label))
	p.AppendChild(a)
	return p
}

// Preview is an entry article with its body replaced by the selected elements.
type Preview struct {
	ID      string
	Name    string
	Article *html.Node
	Result  Result
	// Passthrough is set when the entry had no body and was copied unchanged.
	Passthrough bool
}

// Markup renders the preview article.
func (p *Preview) Markup() string { return content.Render(p.Article) }

// Apply builds the preview of e from its flattened body. The entry itself is left untouched.
func Apply(e *content.Entry, cfg Config, rm ReadMore, logger *slog.Logger) *Preview {
	article, body := cloneWith(e.Article, e.Body)
	p := &Preview{ID: e.ID, Name: e.Name, Article: article}
	if body == nil || body.Parent == nil {
		p.Passthrough = true
		return p
	}

	p.Result = Truncate(e.Leaves(), cfg, logger)
	div := element(atom.Div, html.Attribute{Key: "class", Val: "article-preview"})
	for _, el := range p.Result.Elements {
		div.AppendChild(el.Node)
	}
	if code, ok := content.ParseDateCode(e.ID); ok {
		div.AppendChild(rm.node(code))
	}
	body.Parent.InsertBefore(div, body)
	body.Parent.RemoveChild(body)
	return p
}

// cloneWith deep-copies n and returns the copy of target found inside it, or nil.
func cloneWith(n, target *html.Node) (*html.Node, *html.Node) {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	var found *html.Node
	if n == target {
		found = c
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		cc, f := cloneWith(child, target)
		c.AppendChild(cc)
		if f != nil {
			found = f
		}
	}
	return c, found
}
