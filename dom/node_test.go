package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("span"))
	b := parent.AppendChild(NewText("hello"))

	require.True(t, parent.HasChildNodes())
	assert.Equal(t, a, parent.FirstChild)
	assert.Equal(t, b, parent.LastChild)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PreviousSibling)
	assert.Equal(t, parent, a.ParentNode)
	assert.Equal(t, parent, b.ParentNode)
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("ul")
	last := parent.AppendChild(NewElement("li"))
	first := parent.InsertBefore(NewElement("li"), last)

	require.NotNil(t, first)
	assert.Equal(t, first, parent.FirstChild)
	assert.Equal(t, last, first.NextSibling)
	assert.Equal(t, first, last.PreviousSibling)
	assert.Nil(t, parent.InsertBefore(NewElement("li"), NewElement("li")))
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("a"))
	b := parent.AppendChild(NewElement("b"))
	c := parent.AppendChild(NewElement("i"))

	removed := parent.RemoveChild(b)
	require.Equal(t, b, removed)
	assert.Nil(t, b.ParentNode)
	assert.Equal(t, c, a.NextSibling)
	assert.Equal(t, a, c.PreviousSibling)
	assert.Len(t, parent.ChildNodes, 2)

	// removing a non-child is a no-op
	assert.Nil(t, parent.RemoveChild(NewElement("s")))

	parent.RemoveChild(a)
	parent.RemoveChild(c)
	assert.Nil(t, parent.FirstChild)
	assert.Nil(t, parent.LastChild)
}

func TestContains(t *testing.T) {
	root := NewElement("html")
	body := root.AppendChild(NewElement("body"))
	inner := body.AppendChild(NewElement("div"))
	outside := NewElement("div")

	assert.True(t, root.Contains(root), "containment is inclusive")
	assert.True(t, root.Contains(inner))
	assert.True(t, body.Contains(inner))
	assert.False(t, inner.Contains(body))
	assert.False(t, root.Contains(outside))
	assert.False(t, root.Contains(nil))
}

func TestRoot(t *testing.T) {
	doc := NewDocument()
	html := doc.AppendChild(NewElement("html"))
	deep := html.AppendChild(NewElement("body")).AppendChild(NewElement("p"))

	assert.Equal(t, doc, deep.Root())
	assert.Equal(t, doc, doc.Root())
}

func TestAttributes(t *testing.T) {
	el := NewElement("a")
	el.SetAttribute("href", "https://example.test")
	el.SetAttribute("on-click", "open")

	assert.True(t, el.HasAttributes())
	assert.True(t, el.HasAttribute("on-click"))
	assert.Equal(t, "open", el.GetAttribute("on-click"))
	assert.Equal(t, "", el.GetAttribute("missing"))
	assert.Equal(t, []string{"href", "on-click"}, el.GetAttributeNames())

	el.RemoveAttribute("href")
	assert.False(t, el.HasAttribute("href"))

	// attributes only exist on elements
	text := NewText("hi")
	text.SetAttribute("id", "x")
	assert.False(t, text.HasAttribute("id"))
}

func TestGetElementByID(t *testing.T) {
	doc := NewDocument()
	body := doc.AppendChild(NewElement("body"))
	div := body.AppendChild(NewElement("div"))
	div.SetAttribute("id", "target")

	assert.Equal(t, div, doc.GetElementByID("target"))
	assert.Nil(t, doc.GetElementByID("nope"))
}

func TestSerialize(t *testing.T) {
	doc := NewDocument()
	div := doc.AppendChild(NewElement("div"))
	div.SetAttribute("id", "x")
	div.AppendChild(NewText("hi"))

	assert.Equal(t, "#document\n| <div> id=\"x\"\n|   \"hi\"", doc.String())
}
