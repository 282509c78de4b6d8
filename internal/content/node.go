// Package content turns journal entry markup into the closed set of node kinds
// the preview logic understands.
package content

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind is the closed set of leaf content kinds.
type Kind int

const (
	KindHeading1 Kind = iota + 1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindParagraph
	KindUnorderedList
	KindOrderedList
	KindBlockquote
	KindDivider
	KindLineBreak
	KindFrame
	KindImage
)

var kindNames = map[Kind]string{
	KindHeading1:      "heading1",
	KindHeading2:      "heading2",
	KindHeading3:      "heading3",
	KindHeading4:      "heading4",
	KindHeading5:      "heading5",
	KindHeading6:      "heading6",
	KindParagraph:     "paragraph",
	KindUnorderedList: "unordered-list",
	KindOrderedList:   "ordered-list",
	KindBlockquote:    "blockquote",
	KindDivider:       "divider",
	KindLineBreak:     "line-break",
	KindFrame:         "embedded-frame",
	KindImage:         "image",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsHeading reports whether k is one of the six heading levels.
func (k Kind) IsHeading() bool { return k >= KindHeading1 && k <= KindHeading6 }

// IsList reports whether k is an ordered or unordered list.
func (k Kind) IsList() bool { return k == KindUnorderedList || k == KindOrderedList }

var leafAtoms = map[atom.Atom]Kind{
	atom.H1:         KindHeading1,
	atom.H2:         KindHeading2,
	atom.H3:         KindHeading3,
	atom.H4:         KindHeading4,
	atom.H5:         KindHeading5,
	atom.H6:         KindHeading6,
	atom.P:          KindParagraph,
	atom.Ul:         KindUnorderedList,
	atom.Ol:         KindOrderedList,
	atom.Blockquote: KindBlockquote,
	atom.Hr:         KindDivider,
	atom.Br:         KindLineBreak,
	atom.Iframe:     KindFrame,
	atom.Img:        KindImage,
}

var containerAtoms = map[atom.Atom]bool{
	atom.Section: true,
	atom.Div:     true,
	atom.Article: true,
}

// Node is either a *Leaf or a *Container.
type Node interface {
	isNode()
}

// Leaf is a content element kept whole or truncated by the preview.
type Leaf struct {
	Kind Kind
	Elem *html.Node
}

// Container is a structural wrapper. It never appears in a flattened sequence.
type Container struct {
	Elem     *html.Node
	Children []Node
}

func (*Leaf) isNode()      {}
func (*Container) isNode() {}

// Text returns the concatenated text of the leaf, whitespace included.
func (l *Leaf) Text() string { return Text(l.Elem) }

// Len is the text length in characters.
func (l *Leaf) Len() int { return utf8.RuneCountInString(l.Text()) }

// Markup renders the leaf element.
func (l *Leaf) Markup() string { return Render(l.Elem) }

// Classify maps an element to a node. Text, comments and unknown elements yield nil.
func Classify(n *html.Node) Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if k, ok := leafAtoms[n.DataAtom]; ok {
		return &Leaf{Kind: k, Elem: n}
	}
	if containerAtoms[n.DataAtom] {
		return Build(n)
	}
	return nil
}

// Build wraps n as a container and classifies its children recursively.
func Build(n *html.Node) *Container {
	c := &Container{Elem: n}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if node := Classify(child); node != nil {
			c.Children = append(c.Children, node)
		}
	}
	return c
}

// Flatten returns the leaves under root in document order, dissolving nested containers.
func Flatten(root *Container) []*Leaf {
	var out []*Leaf
	var walk func(*Container)
	walk = func(c *Container) {
		for _, child := range c.Children {
			switch n := child.(type) {
			case *Leaf:
				out = append(out, n)
			case *Container:
				walk(n)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Text concatenates every text node under n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(Text(c))
	}
	return b.String()
}

// Render serializes n. Render errors only come from the writer, and a Builder never fails.
func Render(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// Attr retrieves an attribute value from an element.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether the class attribute of n contains name.
func HasClass(n *html.Node, name string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == name {
			return true
		}
	}
	return false
}
