package simulate

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/heathj/uisim/dom"
)

// UntypedTouchEvent is what a touch type builds into on a host without a
// TouchEvent constructor: a plain UI event that carries the caller's touch
// records as given, neither validated nor converted.
type UntypedTouchEvent struct {
	*dom.UIEvent
	ChangedTouches, TargetTouches, Touches []Options
}

func (s *Simulator) buildTouch(eventType string, o Options) (dom.AnyEvent, error) {
	ui := s.uiInit(o, false)

	if !s.platform.TouchEvents {
		return &UntypedTouchEvent{
			UIEvent:        dom.NewUIEvent(eventType, ui),
			ChangedTouches: touchRecords(o["changedTouches"]),
			TargetTouches:  touchRecords(o["targetTouches"]),
			Touches:        touchRecords(o["touches"]),
		}, nil
	}

	var lists [3]dom.TouchList
	for i, key := range []string{"changedTouches", "targetTouches", "touches"} {
		touches, err := s.ToTouchPoints(touchRecords(o[key]))
		if err != nil {
			return nil, errors.WithMessage(err, key)
		}
		lists[i] = touches
	}
	return dom.NewTouchEvent(eventType, dom.TouchEventInit{
		EventModifierInit: dom.EventModifierInit{
			UIEventInit:   ui,
			ModifierState: modifiers(o),
		},
		ChangedTouches: lists[0],
		TargetTouches:  lists[1],
		Touches:        lists[2],
	}), nil
}

// touchRecords normalizes a touch list option: []Options, []map[string]any,
// []*dom.Touch or []any of those. Elements of other types become empty
// records, which then fail for lack of a target.
func touchRecords(v any) []Options {
	records := []Options{}
	switch list := v.(type) {
	case nil:
	case []Options:
		for _, rec := range list {
			records = append(records, rec.Clone())
		}
	case []map[string]any:
		for _, rec := range list {
			records = append(records, Options(rec).Clone())
		}
	case dom.TouchList:
		for _, t := range list {
			records = append(records, touchOptions(t))
		}
	case []*dom.Touch:
		for _, t := range list {
			records = append(records, touchOptions(t))
		}
	case []any:
		for _, el := range list {
			records = append(records, touchRecord(el))
		}
	}
	return records
}

func touchRecord(el any) Options {
	switch rec := el.(type) {
	case Options:
		return rec.Clone()
	case map[string]any:
		return Options(rec).Clone()
	case *dom.Touch:
		return touchOptions(rec)
	}
	return Options{}
}

func touchOptions(t *dom.Touch) Options {
	if t == nil {
		return Options{}
	}
	return Options{
		"identifier":    t.Identifier,
		"target":        t.Target,
		"screenX":       t.ScreenX,
		"screenY":       t.ScreenY,
		"clientX":       t.ClientX,
		"clientY":       t.ClientY,
		"pageX":         t.PageX,
		"pageY":         t.PageY,
		"radiusX":       t.RadiusX,
		"radiusY":       t.RadiusY,
		"rotationAngle": t.RotationAngle,
		"force":         t.Force,
	}
}

// ToTouchPoints converts touch records into touches. Every record needs a
// target. Numeric members fall back to their default whenever they are
// falsy, so an explicit 0 counts as absent: identifier 0 gets a generated
// identifier like a missing one does.
func (s *Simulator) ToTouchPoints(records []Options) (dom.TouchList, error) {
	touches := dom.TouchList{}
	for _, rec := range records {
		target, _ := rec["target"].(*dom.Node)
		if !truthy(rec["target"]) || target == nil {
			return nil, errors.Wrapf(ErrMissingTouchTarget, "a 'target' for the touch record %v is required", map[string]any(rec))
		}

		identifier := s.randomIdentifier
		if truthy(rec["identifier"]) {
			if id, err := cast.ToIntE(rec["identifier"]); err == nil {
				identifier = func() int { return id }
			}
		}
		touch, err := dom.NewTouch(dom.TouchInit{
			Identifier:    identifier(),
			Target:        target,
			ScreenX:       orZero(rec["screenX"]),
			ScreenY:       orZero(rec["screenY"]),
			ClientX:       orZero(rec["clientX"]),
			ClientY:       orZero(rec["clientY"]),
			PageX:         orZero(rec["pageX"]),
			PageY:         orZero(rec["pageY"]),
			RadiusX:       orZero(rec["radiusX"]),
			RadiusY:       orZero(rec["radiusY"]),
			RotationAngle: orZero(rec["rotationAngle"]),
			Force:         orZero(rec["force"]),
		})
		if err != nil {
			return nil, err
		}
		touches = append(touches, touch)
	}
	return touches, nil
}

// orZero coerces v to a number; falsy values are 0.
func orZero(v any) float64 {
	if !truthy(v) {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}
