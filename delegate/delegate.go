package delegate

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lessmatter/onevents/dom"
)

// Options configures one engine instance.
type Options struct {
	// Actions is the registry consulted at dispatch time. Required.
	Actions Actions

	// Root is the node delegation is scoped to: attributes are
	// discovered under it, listeners attach to it, and matches
	// outside it are ignored. Required.
	Root *dom.Node

	// PreloadEvents are event names to subscribe to eagerly, covering
	// elements that will only be inserted after initialization.
	// Invalid names are ignored.
	PreloadEvents []string

	// Logger receives the diagnostics side channel. Defaults to the
	// logrus standard logger.
	Logger *logrus.Logger
}

// Teardown detaches every listener the engine attached. The first
// call does the work; later calls are no-ops.
type Teardown func()

// listenerRecord remembers one subscription so teardown can mirror it.
type listenerRecord struct {
	eventType string // effective DOM type actually subscribed
	listener  *dom.Listener
}

type engine struct {
	actions Actions
	root    *dom.Node
	log     *logrus.Logger
	records []listenerRecord
}

// Initialize scans opts.Root for on-<event> attributes, attaches one
// listener per delegable event type in use, and returns the teardown
// handle. It fails only on a misconfigured Options; every runtime
// condition after this point is reported through the logger instead.
func Initialize(opts Options) (Teardown, error) {
	if opts.Actions == nil {
		return nil, errors.New("delegate: actions registry is required")
	}
	if opts.Root == nil {
		return nil, errors.New("delegate: root node is required")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	e := &engine{actions: opts.Actions, root: opts.Root, log: log}
	for _, eventType := range sortedNames(Discover(opts.Root, opts.PreloadEvents)) {
		if !IsDelegable(eventType) {
			log.WithField("event", eventType).Warn("event type cannot be delegated, skipping")
			continue
		}
		l := e.dispatchListener(eventType)
		effective := EffectiveListenerType(eventType)
		e.root.AddEventListener(effective, l)
		e.records = append(e.records, listenerRecord{eventType: effective, listener: l})
	}
	return e.teardown, nil
}

func (e *engine) teardown() {
	for _, rec := range e.records {
		e.root.RemoveEventListener(rec.eventType, rec.listener)
	}
	e.records = nil
}

// sortedNames fixes the subscription order so listener registration is
// deterministic.
func sortedNames(used UsedEvents) []string {
	names := make([]string, 0, len(used))
	for name := range used {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
