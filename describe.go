package main

import (
	"github.com/heathj/uisim/dom"
	"github.com/heathj/uisim/simulate"
)

// describe flattens an event into the members a page script would see.
func describe(evt dom.AnyEvent) map[string]any {
	e := evt.AsEvent()
	out := map[string]any{
		"type":             e.Type(),
		"bubbles":          e.Bubbles(),
		"cancelable":       e.Cancelable(),
		"composed":         e.Composed(),
		"isTrusted":        e.IsTrusted(),
		"defaultPrevented": e.DefaultPrevented(),
	}

	switch x := evt.(type) {
	case *dom.KeyboardEvent:
		out["interface"] = "KeyboardEvent"
		ui(out, &x.UIEvent)
		modifiers(out, x.ModifierState)
		out["key"] = x.Key
		out["code"] = x.Code
		out["location"] = int(x.Location)
		out["repeat"] = x.Repeat
		out["isComposing"] = x.IsComposing
	case *dom.PointerEvent:
		out["interface"] = "PointerEvent"
		mouse(out, &x.MouseEvent)
		out["pointerId"] = x.PointerID
		out["width"] = x.Width
		out["height"] = x.Height
		out["pressure"] = x.Pressure
		out["tangentialPressure"] = x.TangentialPressure
		out["tiltX"] = x.TiltX
		out["tiltY"] = x.TiltY
		out["twist"] = x.Twist
		out["pointerType"] = x.PointerType
		out["isPrimary"] = x.IsPrimary
	case *dom.WheelEvent:
		out["interface"] = "WheelEvent"
		mouse(out, &x.MouseEvent)
		out["deltaX"] = x.DeltaX
		out["deltaY"] = x.DeltaY
		out["deltaZ"] = x.DeltaZ
		out["deltaMode"] = x.DeltaMode.String()
	case *dom.DragEvent:
		out["interface"] = "DragEvent"
		mouse(out, &x.MouseEvent)
		if x.DataTransfer != nil {
			out["dataTransfer"] = x.DataTransfer.Types()
		} else {
			out["dataTransfer"] = nil
		}
	case *dom.MouseEvent:
		out["interface"] = "MouseEvent"
		mouse(out, x)
	case *dom.FocusEvent:
		out["interface"] = "FocusEvent"
		ui(out, &x.UIEvent)
		out["relatedTarget"] = node(x.RelatedTarget)
	case *dom.TouchEvent:
		out["interface"] = "TouchEvent"
		ui(out, &x.UIEvent)
		modifiers(out, x.ModifierState)
		out["touches"] = touches(x.Touches)
		out["targetTouches"] = touches(x.TargetTouches)
		out["changedTouches"] = touches(x.ChangedTouches)
	case *simulate.UntypedTouchEvent:
		out["interface"] = "UIEvent"
		ui(out, x.UIEvent)
		out["touches"] = records(x.Touches)
		out["targetTouches"] = records(x.TargetTouches)
		out["changedTouches"] = records(x.ChangedTouches)
	}
	return out
}

func ui(out map[string]any, e *dom.UIEvent) {
	out["view"] = e.View != nil
	out["detail"] = e.Detail
}

func modifiers(out map[string]any, m dom.ModifierState) {
	out["ctrlKey"] = m.CtrlKey
	out["shiftKey"] = m.ShiftKey
	out["altKey"] = m.AltKey
	out["metaKey"] = m.MetaKey
}

func mouse(out map[string]any, e *dom.MouseEvent) {
	ui(out, &e.UIEvent)
	modifiers(out, e.ModifierState)
	out["screenX"] = e.ScreenX
	out["screenY"] = e.ScreenY
	out["clientX"] = e.ClientX
	out["clientY"] = e.ClientY
	out["button"] = int(e.Button)
	out["buttons"] = int(e.Buttons)
	out["which"] = e.Which()
	out["relatedTarget"] = node(e.RelatedTarget)
}

func node(n *dom.Node) any {
	if n == nil {
		return nil
	}
	return n.String()
}

func touches(list dom.TouchList) []map[string]any {
	out := []map[string]any{}
	for _, t := range list {
		out = append(out, map[string]any{
			"identifier":    t.Identifier,
			"target":        node(t.Target),
			"clientX":       t.ClientX,
			"clientY":       t.ClientY,
			"screenX":       t.ScreenX,
			"screenY":       t.ScreenY,
			"pageX":         t.PageX,
			"pageY":         t.PageY,
			"radiusX":       t.RadiusX,
			"radiusY":       t.RadiusY,
			"rotationAngle": t.RotationAngle,
			"force":         t.Force,
		})
	}
	return out
}

// records renders raw touch records, with nodes as their one line form.
func records(list []simulate.Options) []map[string]any {
	out := []map[string]any{}
	for _, rec := range list {
		m := map[string]any{}
		for k, v := range rec {
			if n, ok := v.(*dom.Node); ok {
				m[k] = node(n)
				continue
			}
			m[k] = v
		}
		out = append(out, m)
	}
	return out
}
