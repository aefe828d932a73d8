// Package dom is a small mutable document tree with synchronous,
// bubbling event dispatch. It carries just enough of the DOM living
// standard for attribute-driven event delegation: elements with
// attributes, parent/child links, containment checks, and an
// EventTarget-style listener surface on every node.
package dom

import (
	"sort"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
)

type NodeList []*Node

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType NodeType
	NodeName string // lowercase tag name for elements, "#document" etc. otherwise
	Data     string // character data for text and comment nodes

	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	attrs     map[string]string
	listeners map[string][]*Listener
}

func NewDocument() *Node {
	return &Node{NodeType: DocumentNode, NodeName: "#document"}
}

func NewElement(name string) *Node {
	return &Node{
		NodeType: ElementNode,
		NodeName: name,
		attrs:    map[string]string{},
	}
}

func NewText(data string) *Node {
	return &Node{NodeType: TextNode, NodeName: "#text", Data: data}
}

func NewComment(data string) *Node {
	return &Node{NodeType: CommentNode, NodeName: "#comment", Data: data}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.NextSibling = nil
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	for i := range n.ChildNodes {
		if n.ChildNodes[i] != child {
			continue
		}
		n.ChildNodes = append(n.ChildNodes[:i+1], n.ChildNodes[i:]...)
		n.ChildNodes[i] = on
		on.ParentNode = n
		on.NextSibling = child
		on.PreviousSibling = child.PreviousSibling
		if on.PreviousSibling != nil {
			on.PreviousSibling.NextSibling = on
		}
		child.PreviousSibling = on
		if i == 0 {
			n.FirstChild = on
		}
		return on
	}
	return nil
}

func (n *Node) RemoveChild(child *Node) *Node {
	for i := range n.ChildNodes {
		if n.ChildNodes[i] != child {
			continue
		}
		n.ChildNodes = append(n.ChildNodes[:i], n.ChildNodes[i+1:]...)
		if child.PreviousSibling != nil {
			child.PreviousSibling.NextSibling = child.NextSibling
		} else {
			n.FirstChild = child.NextSibling
		}
		if child.NextSibling != nil {
			child.NextSibling.PreviousSibling = child.PreviousSibling
		} else {
			n.LastChild = child.PreviousSibling
		}
		child.ParentNode = nil
		child.PreviousSibling = nil
		child.NextSibling = nil
		return child
	}
	return nil
}

// Contains reports whether on is an inclusive descendant of n.
// https://dom.spec.whatwg.org/#concept-tree-inclusive-descendant
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

func (n *Node) Root() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// GetElementByID returns the first element under n (inclusive) whose
// id attribute equals id, or nil.
func (n *Node) GetElementByID(id string) *Node {
	if n.NodeType == ElementNode && n.attrs["id"] == id {
		return n
	}
	for _, child := range n.ChildNodes {
		if found := child.GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName + ">"
		keys := make([]string, 0, len(node.attrs))
		for name := range node.attrs {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		for _, name := range keys {
			e += " " + name + "=\"" + node.attrs[name] + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Data + "\""
	case CommentNode:
		return "<!-- " + node.Data + " -->"
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (n *Node) serialize(ident int) string {
	ser := serializeNodeType(n) + "\n"
	if n.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range n.ChildNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}
