package delegate

import (
	"github.com/sirupsen/logrus"

	"github.com/lessmatter/onevents/dom"
)

// Invocation is the single argument every action receives: the runtime
// event, untouched, and the element whose attribute matched — the
// nearest annotated ancestor, not the raw target.
type Invocation struct {
	Event   *dom.Event
	Element *dom.Node
}

// Action is a named callback bound through an on-<event> attribute.
type Action func(Invocation)

// Actions maps action names to callbacks. The engine only reads it;
// the caller owns it and may add entries after initialization.
type Actions map[string]Action

// dispatchListener builds the one root-level listener for eventType.
// The listener is subscribed under EffectiveListenerType(eventType)
// but resolves attributes in the original vocabulary, so an
// on-mouseenter attribute is found from the substitute mouseover
// subscription.
func (e *engine) dispatchListener(eventType string) *dom.Listener {
	attr := attrPrefix + eventType
	return &dom.Listener{
		Passive: RequiresPassive(eventType),
		Handle: func(ev *dom.Event) {
			origin := ev.Target
			if path := ev.Path(); len(path) > 0 {
				origin = path[0]
			}
			if origin == nil {
				return
			}

			matched := closestWithAttribute(origin, attr)
			if matched == nil || !e.root.Contains(matched) {
				// Expected for events landing elsewhere in the
				// document; not an error.
				return
			}

			// Enter/leave fire only on a true boundary crossing. A
			// move between two inner nodes produces over/out pairs
			// whose related target stays inside the matched element.
			if eventType == "mouseenter" || eventType == "mouseleave" {
				if rt := ev.RelatedTarget; rt != nil && matched.Contains(rt) {
					return
				}
			}

			name := matched.GetAttribute(attr)
			action, ok := e.actions[name]
			if !ok || action == nil {
				e.log.WithFields(logrus.Fields{
					"action": name,
					"event":  eventType,
				}).Warn("no action registered for delegated event")
				return
			}
			action(Invocation{Event: ev, Element: matched})
		},
	}
}

// closestWithAttribute walks from n upward, n included, to the nearest
// element carrying attr.
func closestWithAttribute(n *dom.Node, attr string) *dom.Node {
	for cur := n; cur != nil; cur = cur.ParentNode {
		if cur.NodeType == dom.ElementNode && cur.HasAttribute(attr) {
			return cur
		}
	}
	return nil
}
