package dom

import "github.com/pkg/errors"

// https://w3c.github.io/touch-events/#dictdef-touchinit
type TouchInit struct {
	Identifier       int
	Target           *Node
	ClientX, ClientY float64
	ScreenX, ScreenY float64
	PageX, PageY     float64
	RadiusX, RadiusY float64
	RotationAngle    float64
	Force            float64
}

// Touch is a single contact point.
// https://w3c.github.io/touch-events/#touch-interface
type Touch struct {
	Identifier       int
	Target           *Node
	ClientX, ClientY float64
	ScreenX, ScreenY float64
	PageX, PageY     float64
	RadiusX, RadiusY float64
	RotationAngle    float64
	Force            float64
}

// NewTouch fails like the host constructor when the required target is missing.
func NewTouch(init TouchInit) (*Touch, error) {
	if init.Target == nil {
		return nil, errors.Wrap(ErrTypeError, "TouchInit.target is required")
	}
	t := Touch(init)
	return &t, nil
}

// https://w3c.github.io/touch-events/#touchlist-interface
type TouchList []*Touch

func (l TouchList) Length() int { return len(l) }

// IdentifiedTouch returns the touch with the identifier, or nil.
func (l TouchList) IdentifiedTouch(identifier int) *Touch {
	for _, t := range l {
		if t.Identifier == identifier {
			return t
		}
	}
	return nil
}

// https://w3c.github.io/touch-events/#dictdef-toucheventinit
type TouchEventInit struct {
	EventModifierInit
	Touches, TargetTouches, ChangedTouches TouchList
}

// https://w3c.github.io/touch-events/#touchevent-interface
type TouchEvent struct {
	UIEvent
	ModifierState
	Touches, TargetTouches, ChangedTouches TouchList
}

func NewTouchEvent(eventType string, init TouchEventInit) *TouchEvent {
	e := &TouchEvent{}
	e.initUIEvent(eventType, init.UIEventInit)
	e.ModifierState = init.ModifierState
	e.Touches = append(TouchList{}, init.Touches...)
	e.TargetTouches = append(TouchList{}, init.TargetTouches...)
	e.ChangedTouches = append(TouchList{}, init.ChangedTouches...)
	return e
}
