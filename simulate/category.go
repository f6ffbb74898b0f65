package simulate

import (
	"strings"

	"github.com/pkg/errors"
)

// Category is an event family. Every family maps to one host constructor.
type Category int

const (
	Key Category = iota
	Mouse
	Pointer
	Touch
	Wheel
	Drag
	Focus
	numCategories
)

var categoryNames = [numCategories]string{"key", "mouse", "pointer", "touch", "wheel", "drag", "focus"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(c), true
		}
	}
	return 0, false
}

// eventTypes is the constant table. It is never handed out; callers get
// copies from Types and TablesFor.
var eventTypes = [numCategories][]string{
	Mouse:   {"click", "contextmenu", "dblclick", "mousedown", "mouseenter", "mouseleave", "mousemove", "mouseout", "mouseover", "mouseup"},
	Key:     {"keydown", "keyup", "keypress"},
	Touch:   {"touchstart", "touchmove", "touchend", "touchcancel"},
	Pointer: {"click", "contextmenu", "pointerover", "pointerenter", "pointerdown", "pointermove", "pointerup", "pointercancel", "pointerout", "pointerleave", "gotpointercapture", "lostpointercapture"},
	Wheel:   {"wheel"},
	Drag:    {"drag", "dragend", "dragenter", "dragleave", "dragover", "dragstart", "drop"},
	Focus:   {"focus", "blur", "focusin", "focusout"},
}

// Categories returns every category in classification order.
func Categories() []Category {
	cats := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		cats = append(cats, c)
	}
	return cats
}

// Types returns the type names a category recognizes before platform
// normalization.
func Types(c Category) []string {
	if c < 0 || c >= numCategories {
		return nil
	}
	return append([]string(nil), eventTypes[c]...)
}

// Tables is a per-call working copy of the category table. The zero value
// recognizes nothing.
type Tables [numCategories][]string

// TablesFor copies the constant table and moves click and contextmenu to
// the family the platform builds them with: pointer events when it does,
// mouse events otherwise.
func TablesFor(p Platform) Tables {
	var t Tables
	for c := range eventTypes {
		t[c] = append([]string(nil), eventTypes[c]...)
	}
	from := Pointer
	if p.PointerClicks() {
		from = Mouse
	}
	t[from] = without(t[from], "click", "contextmenu")
	return t
}

func without(names []string, drop ...string) []string {
	kept := names[:0]
	for _, name := range names {
		if !contains(drop, name) {
			kept = append(kept, name)
		}
	}
	return kept
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Types returns the names c recognizes in this table.
func (t Tables) Types(c Category) []string {
	if c < 0 || c >= numCategories {
		return nil
	}
	return append([]string(nil), t[c]...)
}

// Has reports whether c recognizes eventType.
func (t Tables) Has(c Category, eventType string) bool {
	return c >= 0 && c < numCategories && contains(t[c], eventType)
}

// Classify returns the category recognizing eventType.
func (t Tables) Classify(eventType string) (Category, error) {
	for c := range t {
		if contains(t[c], eventType) {
			return Category(c), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownEventType, "event type '%s' not available", eventType)
}
