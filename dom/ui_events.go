package dom

import "strings"

// https://w3c.github.io/uievents/#dictdef-uieventinit
type UIEventInit struct {
	EventInit
	View   *Window
	Detail int
}

// https://w3c.github.io/uievents/#interface-uievent
type UIEvent struct {
	Event
	View   *Window
	Detail int
}

func NewUIEvent(eventType string, init UIEventInit) *UIEvent {
	e := &UIEvent{}
	e.initUIEvent(eventType, init)
	return e
}

func (e *UIEvent) initUIEvent(eventType string, init UIEventInit) {
	e.initEvent(eventType, init.EventInit)
	e.View = init.View
	e.Detail = init.Detail
}

// ModifierState is the modifier key part of EventModifierInit and of the
// events built from it.
type ModifierState struct {
	CtrlKey, ShiftKey, AltKey, MetaKey bool
}

// GetModifierState is https://w3c.github.io/uievents/#dom-mouseevent-getmodifierstate
// limited to the four modifiers an init dictionary can carry.
func (m ModifierState) GetModifierState(key string) bool {
	switch strings.ToLower(key) {
	case "control":
		return m.CtrlKey
	case "shift":
		return m.ShiftKey
	case "alt":
		return m.AltKey
	case "meta":
		return m.MetaKey
	}
	return false
}

// https://w3c.github.io/uievents/#dictdef-eventmodifierinit
type EventModifierInit struct {
	UIEventInit
	ModifierState
}

// https://w3c.github.io/uievents/#dictdef-mouseeventinit
type MouseEventInit struct {
	EventModifierInit
	ScreenX, ScreenY, ClientX, ClientY float64
	Button                             int16
	Buttons                            uint16
	RelatedTarget                      *Node
}

// https://w3c.github.io/uievents/#interface-mouseevent
type MouseEvent struct {
	UIEvent
	ModifierState
	ScreenX, ScreenY, ClientX, ClientY float64
	Button                             int16
	Buttons                            uint16
	RelatedTarget                      *Node
}

func NewMouseEvent(eventType string, init MouseEventInit) *MouseEvent {
	e := &MouseEvent{}
	e.initMouseEvent(eventType, init)
	return e
}

func (e *MouseEvent) initMouseEvent(eventType string, init MouseEventInit) {
	e.initUIEvent(eventType, init.UIEventInit)
	e.ModifierState = init.ModifierState
	e.ScreenX, e.ScreenY = init.ScreenX, init.ScreenY
	e.ClientX, e.ClientY = init.ClientX, init.ClientY
	e.Button = init.Button
	e.Buttons = init.Buttons
	e.RelatedTarget = init.RelatedTarget
}

// Which is the legacy button number: https://w3c.github.io/uievents/#dom-uievent-which
func (e *MouseEvent) Which() int {
	return int(e.Button) + 1
}

// https://w3c.github.io/pointerevents/#dom-pointereventinit
type PointerEventInit struct {
	MouseEventInit
	PointerID                                   int
	Width, Height, Pressure, TangentialPressure float64
	TiltX, TiltY, Twist                         int
	PointerType                                 string
	IsPrimary                                   bool
}

// https://w3c.github.io/pointerevents/#pointerevent-interface
type PointerEvent struct {
	MouseEvent
	PointerID                                   int
	Width, Height, Pressure, TangentialPressure float64
	TiltX, TiltY, Twist                         int
	PointerType                                 string
	IsPrimary                                   bool
}

func NewPointerEvent(eventType string, init PointerEventInit) *PointerEvent {
	e := &PointerEvent{}
	e.initMouseEvent(eventType, init.MouseEventInit)
	e.PointerID = init.PointerID
	e.Width, e.Height = init.Width, init.Height
	e.Pressure, e.TangentialPressure = init.Pressure, init.TangentialPressure
	e.TiltX, e.TiltY, e.Twist = init.TiltX, init.TiltY, init.Twist
	e.PointerType = init.PointerType
	e.IsPrimary = init.IsPrimary
	return e
}

// DeltaMode is the unit of a wheel delta.
type DeltaMode uint32

// https://w3c.github.io/uievents/#idl-wheelevent
const (
	DOMDeltaPixel DeltaMode = 0x00
	DOMDeltaLine  DeltaMode = 0x01
	DOMDeltaPage  DeltaMode = 0x02
)

func (m DeltaMode) String() string {
	switch m {
	case DOMDeltaPixel:
		return "PIXEL"
	case DOMDeltaLine:
		return "LINE"
	case DOMDeltaPage:
		return "PAGE"
	}
	return "UNKNOWN"
}

// https://w3c.github.io/uievents/#dictdef-wheeleventinit
type WheelEventInit struct {
	MouseEventInit
	DeltaX, DeltaY, DeltaZ float64
	DeltaMode              DeltaMode
}

// https://w3c.github.io/uievents/#interface-wheelevent
type WheelEvent struct {
	MouseEvent
	DeltaX, DeltaY, DeltaZ float64
	DeltaMode              DeltaMode
}

func NewWheelEvent(eventType string, init WheelEventInit) *WheelEvent {
	e := &WheelEvent{}
	e.initMouseEvent(eventType, init.MouseEventInit)
	e.DeltaX, e.DeltaY, e.DeltaZ = init.DeltaX, init.DeltaY, init.DeltaZ
	e.DeltaMode = init.DeltaMode
	return e
}

// DataTransfer carries drag data keyed by format.
// https://html.spec.whatwg.org/#the-datatransfer-interface
type DataTransfer struct {
	DropEffect    string
	EffectAllowed string
	items         map[string]string
	types         []string
}

func NewDataTransfer() *DataTransfer {
	return &DataTransfer{DropEffect: "none", EffectAllowed: "none", items: map[string]string{}}
}

func (d *DataTransfer) SetData(format, data string) {
	format = strings.ToLower(format)
	if d.items == nil {
		d.items = map[string]string{}
	}
	if _, ok := d.items[format]; !ok {
		d.types = append(d.types, format)
	}
	d.items[format] = data
}

func (d *DataTransfer) GetData(format string) string {
	return d.items[strings.ToLower(format)]
}

func (d *DataTransfer) Types() []string {
	types := make([]string, len(d.types))
	copy(types, d.types)
	return types
}

// https://html.spec.whatwg.org/#dragevent
type DragEventInit struct {
	MouseEventInit
	DataTransfer *DataTransfer
}

type DragEvent struct {
	MouseEvent
	DataTransfer *DataTransfer
}

func NewDragEvent(eventType string, init DragEventInit) *DragEvent {
	e := &DragEvent{}
	e.initMouseEvent(eventType, init.MouseEventInit)
	e.DataTransfer = init.DataTransfer
	return e
}

// KeyLocation is https://w3c.github.io/uievents/#events-keyboard-key-location
type KeyLocation uint32

const (
	DOMKeyLocationStandard KeyLocation = 0x00
	DOMKeyLocationLeft     KeyLocation = 0x01
	DOMKeyLocationRight    KeyLocation = 0x02
	DOMKeyLocationNumpad   KeyLocation = 0x03
)

// https://w3c.github.io/uievents/#dictdef-keyboardeventinit
type KeyboardEventInit struct {
	EventModifierInit
	Key, Code           string
	Location            KeyLocation
	Repeat, IsComposing bool
}

// https://w3c.github.io/uievents/#interface-keyboardevent
type KeyboardEvent struct {
	UIEvent
	ModifierState
	Key, Code           string
	Location            KeyLocation
	Repeat, IsComposing bool
}

func NewKeyboardEvent(eventType string, init KeyboardEventInit) *KeyboardEvent {
	e := &KeyboardEvent{}
	e.initUIEvent(eventType, init.UIEventInit)
	e.ModifierState = init.ModifierState
	e.Key, e.Code = init.Key, init.Code
	e.Location = init.Location
	e.Repeat, e.IsComposing = init.Repeat, init.IsComposing
	return e
}

// https://w3c.github.io/uievents/#dictdef-focuseventinit
type FocusEventInit struct {
	UIEventInit
	RelatedTarget *Node
}

// https://w3c.github.io/uievents/#interface-focusevent
type FocusEvent struct {
	UIEvent
	RelatedTarget *Node
}

func NewFocusEvent(eventType string, init FocusEventInit) *FocusEvent {
	e := &FocusEvent{}
	e.initUIEvent(eventType, init.UIEventInit)
	e.RelatedTarget = init.RelatedTarget
	return e
}
