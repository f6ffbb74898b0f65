package dom

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidState is https://webidl.spec.whatwg.org/#invalidstateerror
	ErrInvalidState = errors.New("invalid state")
	// ErrTypeError mirrors the TypeError a host throws for bad dictionary members.
	ErrTypeError = errors.New("type error")
)

type EventPhase uint16

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case CapturingPhase:
		return "capture"
	case AtTargetPhase:
		return "target"
	case BubblingPhase:
		return "bubble"
	default:
		return "none"
	}
}

// AnyEvent is implemented by every event type through its embedded Event.
type AnyEvent interface {
	AsEvent() *Event
}

// https://dom.spec.whatwg.org/#dictdef-eventinit
type EventInit struct {
	Bubbles, Cancelable, Composed bool
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	eventType        string
	target           *Node
	currentTarget    *Node
	eventPhase       EventPhase
	path             []*Node
	bubbles          bool
	cancelable       bool
	composed         bool
	defaultPrevented bool
	stopPropagation  bool
	stopImmediate    bool
	dispatching      bool
	isTrusted        bool
}

// NewEvent is https://dom.spec.whatwg.org/#dom-event-event
func NewEvent(eventType string, init EventInit) *Event {
	e := &Event{}
	e.initEvent(eventType, init)
	return e
}

func (e *Event) initEvent(eventType string, init EventInit) {
	e.eventType = eventType
	e.bubbles = init.Bubbles
	e.cancelable = init.Cancelable
	e.composed = init.Composed
}

func (e *Event) AsEvent() *Event        { return e }
func (e *Event) Type() string           { return e.eventType }
func (e *Event) Target() *Node          { return e.target }
func (e *Event) CurrentTarget() *Node   { return e.currentTarget }
func (e *Event) EventPhase() EventPhase { return e.eventPhase }
func (e *Event) Bubbles() bool          { return e.bubbles }
func (e *Event) Cancelable() bool       { return e.cancelable }
func (e *Event) Composed() bool         { return e.composed }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
func (e *Event) IsTrusted() bool        { return e.isTrusted }
func (e *Event) ReturnValue() bool      { return !e.defaultPrevented }
func (e *Event) StopPropagation()       { e.stopPropagation = true }

func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediate = true
}

// PreventDefault only has an effect on cancelable events.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// ComposedPath returns the propagation path, target first. It is empty
// outside of dispatch.
func (e *Event) ComposedPath() []*Node {
	path := make([]*Node, len(e.path))
	copy(path, e.path)
	return path
}
