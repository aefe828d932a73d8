package delegate

import (
	"strings"

	"github.com/lessmatter/onevents/dom"
)

// attrPrefix is the attribute naming convention: on-click="openMenu".
const attrPrefix = "on-"

// UsedEvents is the set of event names the engine will subscribe to.
type UsedEvents map[string]struct{}

// Discover walks every element under root once and collects the event
// names referenced by on-<event> attributes, unioned with the
// validated preload entries. Names outside the supported catalog are
// dropped silently from both sources.
//
// The scan runs exactly once per engine; elements inserted afterwards
// are only reachable when their event type was already discovered or
// preloaded.
func Discover(root *dom.Node, preload []string) UsedEvents {
	used := make(UsedEvents)
	scan(root, used)
	for _, name := range preload {
		if IsSupported(name) {
			used[name] = struct{}{}
		}
	}
	return used
}

func scan(n *dom.Node, used UsedEvents) {
	if n.NodeType == dom.ElementNode {
		for _, attr := range n.GetAttributeNames() {
			if !strings.HasPrefix(attr, attrPrefix) {
				continue
			}
			name := strings.TrimPrefix(attr, attrPrefix)
			if IsSupported(name) {
				used[name] = struct{}{}
			}
		}
	}
	for _, child := range n.ChildNodes {
		scan(child, used)
	}
}
