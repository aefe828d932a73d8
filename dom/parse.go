package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Parse reads HTML from r and builds the corresponding document tree.
// Doctype nodes are dropped; everything else maps one to one.
func Parse(r io.Reader) (*Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "dom: parse markup")
	}
	doc := NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		convert(doc, c)
	}
	return doc, nil
}

// ParseFragment parses a markup snippet. The snippet is completed to a
// full document, so elements land under html > body as a browser
// would place them.
func ParseFragment(markup string) (*Node, error) {
	return Parse(strings.NewReader(markup))
}

func convert(parent *Node, hn *html.Node) {
	var n *Node
	switch hn.Type {
	case html.ElementNode:
		n = NewElement(hn.Data)
		for _, a := range hn.Attr {
			n.SetAttribute(a.Key, a.Val)
		}
	case html.TextNode:
		n = NewText(hn.Data)
	case html.CommentNode:
		n = NewComment(hn.Data)
	default:
		return
	}
	parent.AppendChild(n)
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		convert(n, c)
	}
}
