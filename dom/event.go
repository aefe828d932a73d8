package dom

import "github.com/sirupsen/logrus"

type eventPhase uint

const (
	noneEventPhase eventPhase = iota
	atTargetPhase
	bubblingPhase
)

// Event types that do not bubble out of the node they fire on.
var nonBubbling = map[string]struct{}{
	"focus":      {},
	"blur":       {},
	"mouseenter": {},
	"mouseleave": {},
	"load":       {},
	"unload":     {},
	"error":      {},
	"abort":      {},
	"scroll":     {},
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	RelatedTarget *Node
	Bubbles       bool
	Cancelable    bool

	eventPhase       eventPhase
	path             []*Node
	cancelBubble     bool
	cancelImmediate  bool
	defaultPrevented bool
	inPassive        bool
}

// NewEvent builds an event of the given type with Bubbles set per the
// type's native propagation behavior.
func NewEvent(eventType string) *Event {
	_, quiet := nonBubbling[eventType]
	return &Event{Type: eventType, Bubbles: !quiet, Cancelable: true}
}

// NewMouseEvent is NewEvent plus the related target carried by
// mouseover/mouseout/mouseenter/mouseleave occurrences.
func NewMouseEvent(eventType string, related *Node) *Event {
	ev := NewEvent(eventType)
	ev.RelatedTarget = related
	return ev
}

// Path returns the propagation path, deepest node first. Empty until
// the event has been dispatched.
func (e *Event) Path() []*Node { return e.path }

func (e *Event) StopPropagation() { e.cancelBubble = true }

func (e *Event) StopImmediatePropagation() {
	e.cancelBubble = true
	e.cancelImmediate = true
}

func (e *Event) PreventDefault() {
	if e.inPassive {
		logrus.WithField("event", e.Type).Debug("preventDefault ignored inside passive listener")
		return
	}
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener is a registered event callback. Listeners are matched for
// removal by pointer identity, so the same *Listener passed to
// AddEventListener must be passed to RemoveEventListener.
type Listener struct {
	Handle  func(*Event)
	Passive bool
}

func (n *Node) AddEventListener(eventType string, l *Listener) {
	if l == nil || l.Handle == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = map[string][]*Listener{}
	}
	n.listeners[eventType] = append(n.listeners[eventType], l)
}

// RemoveEventListener detaches l from eventType. Removing a pair that
// was never added, or was already removed, is a no-op.
func (n *Node) RemoveEventListener(eventType string, l *Listener) {
	ls := n.listeners[eventType]
	for i := range ls {
		if ls[i] == l {
			n.listeners[eventType] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// DispatchEvent fires ev at n, then bubbles it through n's ancestors
// while ev.Bubbles holds and propagation has not been stopped. It runs
// every listener synchronously before returning and reports whether
// the default action is still allowed.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func (n *Node) DispatchEvent(ev *Event) bool {
	ev.Target = n
	ev.path = ev.path[:0]
	for i := n; i != nil; i = i.ParentNode {
		ev.path = append(ev.path, i)
	}

	ev.eventPhase = atTargetPhase
	for _, node := range ev.path {
		if ev.cancelBubble && node != n {
			break
		}
		ev.CurrentTarget = node
		node.emit(ev)
		if !ev.Bubbles {
			break
		}
		ev.eventPhase = bubblingPhase
	}

	ev.eventPhase = noneEventPhase
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

func (n *Node) emit(ev *Event) {
	ls := append([]*Listener(nil), n.listeners[ev.Type]...)
	for _, l := range ls {
		if ev.cancelImmediate {
			return
		}
		ev.inPassive = l.Passive
		l.Handle(ev)
		ev.inPassive = false
	}
}
