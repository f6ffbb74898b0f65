package simulate

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/heathj/uisim/dom"
)

// Options is the caller's partial field set for one event, keyed by the
// DOM dictionary member name ("clientX", "bubbles", ...). A missing key and
// a nil value both mean absent. Values are coerced the way a host coerces
// dictionary members, so 3, int64(3) and "3" all work for a number.
type Options map[string]any

// Clone returns a shallow copy; the receiver is never modified by this
// package.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Merge returns a copy of o with every key of over applied on top,
// including keys explicitly set to nil.
func (o Options) Merge(over Options) Options {
	c := o.Clone()
	for k, v := range over {
		c[k] = v
	}
	return c
}

// Has reports whether key is present with a non-nil value.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// setDefault assigns v to key unless the caller supplied a value.
func (o Options) setDefault(key string, v any) {
	if !o.Has(key) {
		o[key] = v
	}
}

func (o Options) BoolOr(key string, def bool) bool {
	if !o.Has(key) {
		return def
	}
	b, err := cast.ToBoolE(o[key])
	if err != nil {
		return def
	}
	return b
}

func (o Options) FloatOr(key string, def float64) float64 {
	if !o.Has(key) {
		return def
	}
	f, err := cast.ToFloat64E(o[key])
	if err != nil {
		return def
	}
	return f
}

func (o Options) IntOr(key string, def int) int {
	if !o.Has(key) {
		return def
	}
	i, err := cast.ToIntE(o[key])
	if err != nil {
		return def
	}
	return i
}

func (o Options) StringOr(key string, def string) string {
	if !o.Has(key) {
		return def
	}
	s, err := cast.ToStringE(o[key])
	if err != nil {
		return def
	}
	return s
}

// Node returns the *dom.Node stored under key, or nil.
func (o Options) Node(key string) *dom.Node {
	n, _ := o[key].(*dom.Node)
	return n
}

// ViewOr returns the *dom.Window stored under key, or def.
func (o Options) ViewOr(key string, def *dom.Window) *dom.Window {
	if !o.Has(key) {
		return def
	}
	if w, ok := o[key].(*dom.Window); ok {
		return w
	}
	return def
}

// truthy reports whether v counts as given in the touch converter. nil,
// false, zero, NaN and "" do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case *dom.Node:
		return x != nil
	}
	f, err := cast.ToFloat64E(v)
	if err == nil {
		return f != 0
	}
	return true
}

// DeltaUnit maps a delta-unit name (PIXEL, LINE, PAGE) to its value.
func DeltaUnit(name string) (dom.DeltaMode, bool) {
	switch strings.ToUpper(name) {
	case "PIXEL":
		return dom.DOMDeltaPixel, true
	case "LINE":
		return dom.DOMDeltaLine, true
	case "PAGE":
		return dom.DOMDeltaPage, true
	}
	return 0, false
}

// DeltaUnits returns the delta-unit name table.
func DeltaUnits() map[string]dom.DeltaMode {
	return map[string]dom.DeltaMode{
		"PIXEL": dom.DOMDeltaPixel,
		"LINE":  dom.DOMDeltaLine,
		"PAGE":  dom.DOMDeltaPage,
	}
}
