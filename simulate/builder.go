package simulate

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/heathj/uisim/dom"
)

// Build constructs the event for eventType without dispatching it. The
// returned value is one of *dom.KeyboardEvent, *dom.MouseEvent,
// *dom.PointerEvent, *dom.TouchEvent, *UntypedTouchEvent, *dom.WheelEvent,
// *dom.DragEvent or *dom.FocusEvent.
func (s *Simulator) Build(eventType string, opts Options) (dom.AnyEvent, error) {
	tables := TablesFor(s.platform)
	c, err := tables.Classify(eventType)
	if err != nil {
		return nil, err
	}
	o := FillDefaults(c, eventType, opts)

	s.log.WithFields(logrus.Fields{
		"type":     eventType,
		"category": c.String(),
	}).Debug("building synthetic event")

	switch c {
	case Key:
		return dom.NewKeyboardEvent(eventType, dom.KeyboardEventInit{
			EventModifierInit: dom.EventModifierInit{
				UIEventInit:   s.uiInit(o, true),
				ModifierState: modifiers(o),
			},
			Key:         o.StringOr("key", ""),
			Code:        o.StringOr("code", ""),
			Location:    dom.KeyLocation(o.IntOr("location", 0)),
			Repeat:      o.BoolOr("repeat", false),
			IsComposing: o.BoolOr("isComposing", false),
		}), nil
	case Mouse:
		return dom.NewMouseEvent(eventType, s.mouseInit(o, true)), nil
	case Pointer:
		return dom.NewPointerEvent(eventType, dom.PointerEventInit{
			MouseEventInit:     s.mouseInit(o, true),
			PointerID:          o.IntOr("pointerId", 0),
			Width:              o.FloatOr("width", 1),
			Height:             o.FloatOr("height", 1),
			Pressure:           o.FloatOr("pressure", 0),
			TangentialPressure: o.FloatOr("tangentialPressure", 0),
			TiltX:              o.IntOr("tiltX", 0),
			TiltY:              o.IntOr("tiltY", 0),
			Twist:              o.IntOr("twist", 0),
			PointerType:        o.StringOr("pointerType", ""),
			IsPrimary:          o.BoolOr("isPrimary", false),
		}), nil
	case Touch:
		return s.buildTouch(eventType, o)
	case Wheel:
		return dom.NewWheelEvent(eventType, dom.WheelEventInit{
			MouseEventInit: s.mouseInit(o, false),
			DeltaX:         o.FloatOr("deltaX", 0.0),
			DeltaY:         o.FloatOr("deltaY", 0.0),
			DeltaZ:         o.FloatOr("deltaZ", 0.0),
			DeltaMode:      deltaMode(o),
		}), nil
	case Drag:
		return dom.NewDragEvent(eventType, dom.DragEventInit{
			MouseEventInit: s.mouseInit(o, false),
			DataTransfer:   dataTransfer(o),
		}), nil
	case Focus:
		return dom.NewFocusEvent(eventType, dom.FocusEventInit{
			UIEventInit:   s.uiInit(o, false),
			RelatedTarget: o.Node("relatedTarget"),
		}), nil
	}
	return nil, errors.Wrapf(ErrUnknownEventType, "event type '%s' not available", eventType)
}

func (s *Simulator) defaultView() *dom.Window {
	if s.host == nil {
		return nil
	}
	return s.host.DefaultView()
}

// uiInit is the shared UI group. propagate is the last resort default for
// the three flags; key, mouse and pointer events use true, the rest false.
func (s *Simulator) uiInit(o Options, propagate bool) dom.UIEventInit {
	return dom.UIEventInit{
		EventInit: dom.EventInit{
			Bubbles:    o.BoolOr("bubbles", propagate),
			Cancelable: o.BoolOr("cancelable", propagate),
			Composed:   o.BoolOr("composed", propagate),
		},
		View:   o.ViewOr("view", s.defaultView()),
		Detail: o.IntOr("detail", 0),
	}
}

func modifiers(o Options) dom.ModifierState {
	return dom.ModifierState{
		CtrlKey:  o.BoolOr("ctrlKey", false),
		ShiftKey: o.BoolOr("shiftKey", false),
		AltKey:   o.BoolOr("altKey", false),
		MetaKey:  o.BoolOr("metaKey", false),
	}
}

// mouseInit is the mouse shape shared by mouse, pointer, wheel and drag events.
func (s *Simulator) mouseInit(o Options, propagate bool) dom.MouseEventInit {
	return dom.MouseEventInit{
		EventModifierInit: dom.EventModifierInit{
			UIEventInit:   s.uiInit(o, propagate),
			ModifierState: modifiers(o),
		},
		ScreenX:       o.FloatOr("screenX", 0),
		ScreenY:       o.FloatOr("screenY", 0),
		ClientX:       o.FloatOr("clientX", 0),
		ClientY:       o.FloatOr("clientY", 0),
		Button:        int16(o.IntOr("button", 0)),
		Buttons:       uint16(o.IntOr("buttons", 0)),
		RelatedTarget: o.Node("relatedTarget"),
	}
}

// deltaMode accepts a DeltaMode, a number or a unit name.
func deltaMode(o Options) dom.DeltaMode {
	if !o.Has("deltaMode") {
		return dom.DOMDeltaPixel
	}
	switch v := o["deltaMode"].(type) {
	case dom.DeltaMode:
		return v
	case string:
		if m, ok := DeltaUnit(v); ok {
			return m
		}
	}
	m, err := cast.ToUint32E(o["deltaMode"])
	if err != nil {
		return dom.DOMDeltaPixel
	}
	return dom.DeltaMode(m)
}

// dataTransfer reads the drag data handle. dragEventInit is accepted as an
// older name for the same member.
func dataTransfer(o Options) *dom.DataTransfer {
	for _, key := range []string{"dataTransfer", "dragEventInit"} {
		if dt, ok := o[key].(*dom.DataTransfer); ok && dt != nil {
			return dt
		}
	}
	return nil
}
