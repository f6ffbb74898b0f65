package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds
//
//	html > body > form#login > (input#user, button#ok)
//	            > div#overlay (hidden, covers the form)
func fixture(t *testing.T) (doc, form, user, ok, overlay *Node) {
	t.Helper()
	doc = NewHTMLDocument(800, 600)
	body := doc.Body()
	require.NotNil(t, body)

	form = doc.CreateElement("form")
	form.SetAttribute("id", "login")
	form.Rect = DOMRect{X: 100, Y: 100, Width: 300, Height: 200}
	body.AppendChild(form)

	user = doc.CreateElement("input")
	user.SetAttribute("id", "user")
	user.Rect = DOMRect{X: 120, Y: 120, Width: 200, Height: 30}
	form.AppendChild(user)

	ok = doc.CreateElement("button")
	ok.SetAttribute("id", "ok")
	ok.Rect = DOMRect{X: 120, Y: 200, Width: 80, Height: 30}
	form.AppendChild(ok)

	overlay = doc.CreateElement("div")
	overlay.SetAttribute("id", "overlay")
	overlay.Rect = DOMRect{X: 0, Y: 0, Width: 800, Height: 600}
	overlay.Hidden = true
	body.AppendChild(overlay)
	return doc, form, user, ok, overlay
}

func TestElementFromPoint(t *testing.T) {
	doc, form, user, ok, overlay := fixture(t)
	tests := []struct {
		name string
		x, y float64
		want *Node
	}{
		{"input inside form", 130, 130, user},
		{"button inside form", 121, 229, ok},
		{"form padding", 350, 290, form},
		{"body outside form", 10, 10, doc.Body()},
		{"right edge is outside", 400, 150, doc.Body()},
		{"outside viewport", 900, 10, nil},
		{"negative", -1, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := doc.ElementFromPoint(tt.x, tt.y)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, tt.want, got)
		})
	}

	overlay.Hidden = false
	assert.Same(t, overlay, doc.ElementFromPoint(130, 130), "later siblings paint on top")
}

func TestElementFromPointFallsBackToDocumentElement(t *testing.T) {
	doc := NewHTMLDocument(100, 100)
	doc.DocumentElement.RemoveChild(doc.Body())
	doc.DocumentElement.Rect = DOMRect{}
	assert.Same(t, doc.DocumentElement, doc.ElementFromPoint(50, 50))
}

func TestGetElementByID(t *testing.T) {
	doc, _, user, _, _ := fixture(t)
	assert.Same(t, user, doc.GetElementByID("user"))
	assert.Nil(t, doc.GetElementByID("missing"))

	dup := doc.CreateElement("span")
	dup.SetAttribute("ID", "user")
	doc.Body().AppendChild(dup)
	assert.Same(t, user, doc.GetElementByID("user"), "first in tree order wins")
}

func TestTreeMutation(t *testing.T) {
	doc := NewHTMLDocument(10, 10)
	body := doc.Body()
	a := body.AppendChild(doc.CreateElement("a"))
	c := body.AppendChild(doc.CreateElement("c"))
	b := body.InsertBefore(doc.CreateElement("b"), c)

	assert.Equal(t, NodeList{a, b, c}, body.ChildNodes)
	assert.Same(t, a, body.FirstChild)
	assert.Same(t, c, body.LastChild)
	assert.Same(t, b, a.NextSibling)
	assert.Same(t, b, c.PreviousSibling)
	assert.True(t, doc.Contains(b))

	body.RemoveChild(b)
	assert.Equal(t, NodeList{a, c}, body.ChildNodes)
	assert.Same(t, c, a.NextSibling)
	assert.Nil(t, b.ParentNode)
	assert.False(t, doc.Contains(b))

	body.AppendChild(doc.CreateTextNode("hi"))
	assert.Equal(t, "#document\n"+
		"| <html> [0,0 10x10]\n"+
		"|   <body> [0,0 10x10]\n"+
		"|     <a>\n"+
		"|     <c>\n"+
		"|     \"hi\"", doc.Tree())
}

type record struct {
	phase   EventPhase
	current string
}

func listen(trace *[]record, n *Node, eventType string, capture bool) {
	n.AddEventListener(eventType, func(evt AnyEvent) {
		e := evt.AsEvent()
		*trace = append(*trace, record{e.EventPhase(), e.CurrentTarget().ID()})
	}, ListenerOptions{Capture: capture})
}

func TestDispatchOrder(t *testing.T) {
	tests := []struct {
		name    string
		bubbles bool
		want    []record
	}{
		{"bubbling", true, []record{
			{CapturingPhase, "login"},
			{AtTargetPhase, "ok"},
			{AtTargetPhase, "ok"},
			{BubblingPhase, "login"},
		}},
		{"non bubbling", false, []record{
			{CapturingPhase, "login"},
			{AtTargetPhase, "ok"},
			{AtTargetPhase, "ok"},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, form, _, ok, _ := fixture(t)
			var trace []record
			listen(&trace, form, "click", false)
			listen(&trace, form, "click", true)
			listen(&trace, ok, "click", false)
			listen(&trace, ok, "click", true)

			evt := NewMouseEvent("click", MouseEventInit{EventModifierInit: EventModifierInit{
				UIEventInit: UIEventInit{EventInit: EventInit{Bubbles: tt.bubbles}},
			}})
			notCanceled, err := ok.DispatchEvent(evt)
			require.NoError(t, err)
			assert.True(t, notCanceled)
			assert.Equal(t, tt.want, trace)
			assert.Same(t, ok, evt.Target())
			assert.Nil(t, evt.CurrentTarget())
			assert.Equal(t, NoneEventPhase, evt.EventPhase())
			assert.False(t, evt.IsTrusted())
			assert.Empty(t, evt.ComposedPath())
		})
	}
}

func TestStopPropagation(t *testing.T) {
	_, form, _, ok, _ := fixture(t)
	var trace []record
	form.AddEventListener("keydown", func(evt AnyEvent) {
		evt.AsEvent().StopPropagation()
	}, ListenerOptions{Capture: true})
	listen(&trace, form, "keydown", true)
	listen(&trace, ok, "keydown", false)

	_, err := ok.DispatchEvent(NewKeyboardEvent("keydown", KeyboardEventInit{}))
	require.NoError(t, err)
	assert.Equal(t, []record{{CapturingPhase, "login"}}, trace, "same node listeners still run")
}

func TestStopImmediatePropagation(t *testing.T) {
	_, _, _, ok, _ := fixture(t)
	var trace []record
	ok.AddEventListener("focus", func(evt AnyEvent) {
		evt.AsEvent().StopImmediatePropagation()
	}, ListenerOptions{})
	listen(&trace, ok, "focus", false)

	_, err := ok.DispatchEvent(NewFocusEvent("focus", FocusEventInit{}))
	require.NoError(t, err)
	assert.Empty(t, trace)
}

func TestPreventDefault(t *testing.T) {
	tests := []struct {
		name        string
		cancelable  bool
		notCanceled bool
	}{
		{"cancelable", true, false},
		{"not cancelable", false, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, user, _, _ := fixture(t)
			user.AddEventListener("wheel", func(evt AnyEvent) {
				evt.AsEvent().PreventDefault()
			}, ListenerOptions{})
			evt := NewWheelEvent("wheel", WheelEventInit{MouseEventInit: MouseEventInit{EventModifierInit: EventModifierInit{
				UIEventInit: UIEventInit{EventInit: EventInit{Cancelable: tt.cancelable}},
			}}})
			notCanceled, err := user.DispatchEvent(evt)
			require.NoError(t, err)
			assert.Equal(t, tt.notCanceled, notCanceled)
			assert.Equal(t, !tt.notCanceled, evt.DefaultPrevented())
		})
	}
}

func TestOnceAndRemoveListener(t *testing.T) {
	_, _, user, _, _ := fixture(t)
	calls := 0
	user.AddEventListener("input", func(AnyEvent) { calls++ }, ListenerOptions{Once: true})
	id := user.AddEventListener("input", func(AnyEvent) { calls += 10 }, ListenerOptions{})

	for i := 0; i < 2; i++ {
		_, err := user.DispatchEvent(NewEvent("input", EventInit{}))
		require.NoError(t, err)
	}
	assert.Equal(t, 21, calls)

	assert.True(t, user.RemoveEventListener("input", id))
	assert.False(t, user.RemoveEventListener("input", id))
	assert.False(t, user.HasEventListeners("input"))
}

func TestRedispatchDuringDispatch(t *testing.T) {
	_, form, _, ok, _ := fixture(t)
	var inner error
	ok.AddEventListener("blur", func(evt AnyEvent) {
		_, inner = form.DispatchEvent(evt)
	}, ListenerOptions{})

	_, err := ok.DispatchEvent(NewFocusEvent("blur", FocusEventInit{}))
	require.NoError(t, err)
	assert.True(t, errors.Is(inner, ErrInvalidState))
}

func TestComposedPathDuringDispatch(t *testing.T) {
	doc, form, _, ok, _ := fixture(t)
	var path []*Node
	ok.AddEventListener("click", func(evt AnyEvent) {
		path = evt.AsEvent().ComposedPath()
	}, ListenerOptions{})

	_, err := ok.DispatchEvent(NewMouseEvent("click", MouseEventInit{}))
	require.NoError(t, err)
	assert.Equal(t, []*Node{ok, form, doc.Body(), doc.DocumentElement, doc}, path)
}

func TestNewTouch(t *testing.T) {
	_, err := NewTouch(TouchInit{Identifier: 1})
	assert.True(t, errors.Is(err, ErrTypeError))

	doc := NewHTMLDocument(10, 10)
	touch, err := NewTouch(TouchInit{Identifier: 7, Target: doc.Body(), ClientX: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, touch.Identifier)
	assert.Equal(t, 3.0, touch.ClientX)

	list := TouchList{touch}
	assert.Same(t, touch, list.IdentifiedTouch(7))
	assert.Nil(t, list.IdentifiedTouch(8))
}

func TestMouseEventWhichAndModifiers(t *testing.T) {
	evt := NewMouseEvent("mousedown", MouseEventInit{
		EventModifierInit: EventModifierInit{ModifierState: ModifierState{ShiftKey: true}},
		Button:            2,
	})
	assert.Equal(t, 3, evt.Which())
	assert.True(t, evt.GetModifierState("Shift"))
	assert.False(t, evt.GetModifierState("Control"))
}

func TestDataTransfer(t *testing.T) {
	dt := NewDataTransfer()
	dt.SetData("Text/Plain", "hello")
	dt.SetData("text/plain", "again")
	dt.SetData("text/uri-list", "https://example.com")
	assert.Equal(t, "again", dt.GetData("TEXT/PLAIN"))
	assert.Equal(t, []string{"text/plain", "text/uri-list"}, dt.Types())
}
