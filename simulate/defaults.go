package simulate

// Types whose browser events bubble, are cancelable and composed. Types of
// the same family outside these lists keep the generic false defaults here
// (the builder may still re-assert true for key, mouse and pointer).
var (
	standardMouseTypes   = []string{"click", "contextmenu", "dblclick", "mousedown", "mouseup", "mousemove", "mouseout", "mouseover"}
	standardPointerTypes = []string{"click", "contextmenu", "pointerdown", "pointerup", "pointermove", "pointerout", "pointerover"}
	cancelableTouchTypes = []string{"touchstart", "touchmove", "touchend"}
	cancelableDragTypes  = []string{"drag", "dragenter", "dragover", "dragstart"}
)

// FillDefaults returns a copy of opts with the browser defaults for the
// event type filled in where the caller left a member absent. opts itself
// is not modified.
//
// pointercancel, touchcancel and drop are not settled against real
// browsers; their flags here are the documented ones and have regression
// tests of their own.
func FillDefaults(c Category, eventType string, opts Options) Options {
	o := opts.Clone()
	propagate := func(bubbles, cancelable, composed bool) {
		if bubbles {
			o.setDefault("bubbles", true)
		}
		if cancelable {
			o.setDefault("cancelable", true)
		}
		if composed {
			o.setDefault("composed", true)
		}
	}

	switch c {
	case Key:
		propagate(true, true, true)
	case Focus:
		directional := eventType == "focusin" || eventType == "focusout"
		propagate(directional, false, true)
	case Mouse:
		if contains(standardMouseTypes, eventType) {
			propagate(true, true, true)
		}
		switch eventType {
		case "contextmenu":
			o.setDefault("detail", 1)
		case "dblclick":
			o.setDefault("detail", 2)
		}
	case Pointer:
		if contains(standardPointerTypes, eventType) {
			propagate(true, true, true)
		}
	case Touch:
		propagate(true, contains(cancelableTouchTypes, eventType), true)
	case Wheel:
		propagate(true, true, true)
	case Drag:
		propagate(true, contains(cancelableDragTypes, eventType), true)
	}
	return o
}
