package main

import (
	"fmt"

	"github.com/lessmatter/onevents/delegate"
	"github.com/lessmatter/onevents/dom"
)

func main() {
	doc, _ := dom.ParseFragment(`<ul id="menu" on-click="open"><li>Home</li></ul>`)
	teardown, _ := delegate.Initialize(delegate.Options{
		Root: doc,
		Actions: delegate.Actions{
			"open": func(inv delegate.Invocation) {
				fmt.Printf("%s via <%s>\n", inv.Event.Type, inv.Element.NodeName)
			},
		},
	})
	defer teardown()
	doc.GetElementByID("menu").FirstChild.DispatchEvent(dom.NewEvent("click"))
}
