package preview

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/journalbuilder/internal/content"
)

// Element is a transformed leaf ready to be placed in a preview.
type Element struct {
	Kind      content.Kind
	Node      *html.Node
	Cost      int
	Truncated bool
}

// Markup renders the element.
func (e Element) Markup() string { return content.Render(e.Node) }

// Transform copies leaf, shortening it by kind, and estimates its cost in characters.
// The input leaf is never modified.
func Transform(leaf *content.Leaf, cfg Config) Element {
	out := Element{Kind: leaf.Kind, Node: clone(leaf.Elem)}
	switch {
	case leaf.Kind == content.KindParagraph:
		text := leaf.Text()
		if n := utf8.RuneCountInString(text); n > cfg.TextTruncateLength {
			clearChildren(out.Node)
			out.Node.AppendChild(textNode(prefix(text, cfg.TextTruncateLength)))
			out.Node.AppendChild(ellipsis())
			out.Cost, out.Truncated = cfg.TextTruncateLength, true
		} else {
			out.Cost = n
		}
	case leaf.Kind == content.KindBlockquote:
		text := leaf.Text()
		if n := utf8.RuneCountInString(text); n > cfg.TextTruncateLength {
			clearChildren(out.Node)
			p := element(atom.P)
			p.AppendChild(textNode(prefix(text, cfg.TextTruncateLength)))
			p.AppendChild(ellipsis())
			out.Node.AppendChild(p)
			out.Cost, out.Truncated = cfg.TextTruncateLength, true
		} else {
			out.Cost = n
		}
	case leaf.Kind.IsList():
		items := listItems(out.Node)
		if len(items) > cfg.MaxListItems {
			for _, li := range items[cfg.MaxListItems:] {
				out.Node.RemoveChild(li)
			}
			out.Node.AppendChild(moreItems(len(items) - cfg.MaxListItems))
			out.Cost, out.Truncated = cfg.MaxListItems*cfg.ListItemEstimate, true
		} else {
			out.Cost = len(items) * cfg.ListItemEstimate
		}
	case leaf.Kind.IsHeading():
		out.Cost = leaf.Len()
	case leaf.Kind == content.KindDivider, leaf.Kind == content.KindLineBreak,
		leaf.Kind == content.KindFrame, leaf.Kind == content.KindImage:
		out.Cost = 0
	default:
		out.Cost = leaf.Len()
	}
	return out
}

// listItems returns the direct li children of a list.
func listItems(list *html.Node) []*html.Node {
	var items []*html.Node
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			items = append(items, c)
		}
	}
	return items
}

func moreItems(n int) *html.Node {
	li := element(atom.Li, html.Attribute{Key: "class", Val: "list-ellipsis"})
	em := element(atom.Em)
	em.AppendChild(textNode(fmt.Sprintf("... (%d more items)", n)))
	li.AppendChild(em)
	return li
}

func ellipsis() *html.Node {
	span := element(atom.Span, html.Attribute{Key: "class", Val: "ellipsis"})
	span.AppendChild(textNode("..."))
	return span
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// clone deep-copies n without its parent or siblings.
func clone(n *html.Node) *html.Node {
	c, _ := cloneWith(n, nil)
	return c
}
