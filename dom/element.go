package dom

import "sort"

// Attribute accessors. Only element nodes carry attributes; calls on
// any other node type are no-ops that read as absent.
// https://dom.spec.whatwg.org/#interface-element

func (n *Node) HasAttributes() bool {
	return len(n.attrs) > 0
}

func (n *Node) GetAttribute(qualifiedName string) string {
	return n.attrs[qualifiedName]
}

func (n *Node) SetAttribute(qualifiedName, value string) {
	if n.NodeType != ElementNode {
		return
	}
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	n.attrs[qualifiedName] = value
}

func (n *Node) RemoveAttribute(qualifiedName string) {
	delete(n.attrs, qualifiedName)
}

func (n *Node) HasAttribute(qualifiedName string) bool {
	_, ok := n.attrs[qualifiedName]
	return ok
}

// GetAttributeNames returns the attribute names in sorted order.
func (n *Node) GetAttributeNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
