// Package delegate dispatches DOM events to named actions declared
// through on-<event> attributes, using one root-level listener per
// event type instead of per-element registration.
package delegate

// supportedEvents is the closed set of event names the engine
// recognizes in on-<event> attributes and preload lists.
var supportedEvents = map[string]struct{}{
	"click":       {},
	"dblclick":    {},
	"mousedown":   {},
	"mouseup":     {},
	"mousemove":   {},
	"mouseover":   {},
	"mouseout":    {},
	"mouseenter":  {},
	"mouseleave":  {},
	"contextmenu": {},

	"keydown":  {},
	"keypress": {},
	"keyup":    {},

	"focus":    {},
	"blur":     {},
	"focusin":  {},
	"focusout": {},

	"input":   {},
	"change":  {},
	"submit":  {},
	"reset":   {},
	"select":  {},
	"invalid": {},

	"touchstart":  {},
	"touchmove":   {},
	"touchend":    {},
	"touchcancel": {},
	"wheel":       {},

	"drag":      {},
	"dragstart": {},
	"dragend":   {},
	"dragenter": {},
	"dragleave": {},
	"dragover":  {},
	"drop":      {},

	"copy":  {},
	"cut":   {},
	"paste": {},

	"scroll":           {},
	"resize":           {},
	"load":             {},
	"beforeunload":     {},
	"error":            {},
	"abort":            {},
	"DOMContentLoaded": {},
}

// nonDelegable lists event types a container listener cannot observe:
// they either do not bubble to an arbitrary ancestor or belong to the
// page/resource lifecycle rather than an element. The membership is a
// policy choice, not derived from a rule.
var nonDelegable = map[string]struct{}{
	"scroll":           {},
	"resize":           {},
	"load":             {},
	"beforeunload":     {},
	"error":            {},
	"abort":            {},
	"DOMContentLoaded": {},
}

// listenerTypeFor remaps non-bubbling types to bubbling counterparts
// the root can actually hear.
var listenerTypeFor = map[string]string{
	"focus":      "focusin",
	"blur":       "focusout",
	"mouseenter": "mouseover",
	"mouseleave": "mouseout",
}

// passiveEvents are subscribed with a passive listener so handlers
// cannot block scrolling or gesture recognition.
var passiveEvents = map[string]struct{}{
	"touchstart":  {},
	"touchmove":   {},
	"touchend":    {},
	"touchcancel": {},
	"wheel":       {},
}

func IsSupported(name string) bool {
	_, ok := supportedEvents[name]
	return ok
}

func IsDelegable(name string) bool {
	_, ok := nonDelegable[name]
	return !ok
}

// EffectiveListenerType returns the DOM event type actually subscribed
// for name: identity for most names, the bubbling substitute for
// focus, blur, mouseenter and mouseleave.
func EffectiveListenerType(name string) string {
	if mapped, ok := listenerTypeFor[name]; ok {
		return mapped
	}
	return name
}

func RequiresPassive(name string) bool {
	_, ok := passiveEvents[name]
	return ok
}
