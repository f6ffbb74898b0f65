package dom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EventListener is called with the event being dispatched; the concrete
// type (*MouseEvent, *KeyboardEvent, ...) is available by type switch.
type EventListener func(evt AnyEvent)

// ListenerID identifies a registered listener, since Go funcs can't be compared.
type ListenerID uint64

// https://dom.spec.whatwg.org/#dictdef-addeventlisteneroptions
type ListenerOptions struct {
	Capture bool
	Once    bool
}

type listenerEntry struct {
	id       ListenerID
	callback EventListener
	options  ListenerOptions
	removed  bool
}

// EventTarget holds the listeners of a node. The zero value is ready to use.
// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget struct {
	listeners map[string][]*listenerEntry
	nextID    ListenerID
}

func (t *EventTarget) AddEventListener(eventType string, callback EventListener, options ListenerOptions) ListenerID {
	if callback == nil {
		return 0
	}
	if t.listeners == nil {
		t.listeners = make(map[string][]*listenerEntry)
	}
	t.nextID++
	t.listeners[eventType] = append(t.listeners[eventType], &listenerEntry{
		id:       t.nextID,
		callback: callback,
		options:  options,
	})
	return t.nextID
}

// RemoveEventListener reports whether a listener with id was registered
// for eventType.
func (t *EventTarget) RemoveEventListener(eventType string, id ListenerID) bool {
	entries := t.listeners[eventType]
	for i, entry := range entries {
		if entry.id == id {
			entry.removed = true
			t.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (t *EventTarget) HasEventListeners(eventType string) bool {
	return len(t.listeners[eventType]) > 0
}

// DispatchEvent is https://dom.spec.whatwg.org/#dom-eventtarget-dispatchevent
// for a light tree: capture from the root down, the target itself, then
// bubble back up when the event bubbles. It returns false if a listener
// canceled the event.
func (n *Node) DispatchEvent(evt AnyEvent) (bool, error) {
	e := evt.AsEvent()
	if e.dispatching {
		return false, errors.Wrapf(ErrInvalidState, "event %q is already being dispatched", e.eventType)
	}

	e.dispatching = true
	e.isTrusted = false
	e.target = n
	e.path = e.path[:0]
	for i := n; i != nil; i = i.ParentNode {
		e.path = append(e.path, i)
	}

	logrus.WithFields(logrus.Fields{
		"type":   e.eventType,
		"target": n.String(),
		"depth":  len(e.path),
	}).Trace("dispatching event")

	for i := len(e.path) - 1; i > 0 && !e.stopPropagation; i-- {
		e.path[i].invoke(evt, CapturingPhase)
	}
	if !e.stopPropagation {
		n.invoke(evt, AtTargetPhase)
	}
	if e.bubbles {
		for i := 1; i < len(e.path) && !e.stopPropagation; i++ {
			e.path[i].invoke(evt, BubblingPhase)
		}
	}

	e.eventPhase = NoneEventPhase
	e.currentTarget = nil
	e.path = nil
	e.dispatching = false
	e.stopPropagation = false
	e.stopImmediate = false
	return !e.defaultPrevented, nil
}

// invoke runs the listeners of n for the phase. At the target, capture
// listeners run before non-capture ones.
func (n *Node) invoke(evt AnyEvent, phase EventPhase) {
	e := evt.AsEvent()
	e.eventPhase = phase
	e.currentTarget = n

	switch phase {
	case CapturingPhase:
		n.inner(evt, true)
	case BubblingPhase:
		n.inner(evt, false)
	case AtTargetPhase:
		n.inner(evt, true)
		if !e.stopPropagation {
			n.inner(evt, false)
		}
	}
}

// https://dom.spec.whatwg.org/#concept-event-listener-inner-invoke
func (n *Node) inner(evt AnyEvent, capture bool) {
	e := evt.AsEvent()
	entries := n.listeners[e.eventType]
	if len(entries) == 0 {
		return
	}
	// Listeners added during dispatch don't run; removed ones are skipped.
	snapshot := make([]*listenerEntry, len(entries))
	copy(snapshot, entries)

	for _, entry := range snapshot {
		if entry.removed || entry.options.Capture != capture {
			continue
		}
		if entry.options.Once {
			n.RemoveEventListener(e.eventType, entry.id)
		}
		entry.callback(evt)
		if e.stopImmediate {
			return
		}
	}
}
