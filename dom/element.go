package dom

import "strings"

// Element is an individual HTML element that gets added to the tree.
// Rect is its layout box in client coordinates, used for hit-testing.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes map[string]string
	Rect       DOMRect
	Hidden     bool
}

func (e *Element) GetAttribute(qualifiedName string) string {
	return e.Attributes[strings.ToLower(qualifiedName)]
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	_, ok := e.Attributes[strings.ToLower(qualifiedName)]
	return ok
}

func (e *Element) SetAttribute(qualifiedName, value string) {
	if e.Attributes == nil {
		e.Attributes = map[string]string{}
	}
	e.Attributes[strings.ToLower(qualifiedName)] = value
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	delete(e.Attributes, strings.ToLower(qualifiedName))
}

func (e *Element) ID() string        { return e.GetAttribute("id") }
func (e *Element) ClassName() string { return e.GetAttribute("class") }

// https://dom.spec.whatwg.org/#text
type Text struct {
	Data string
}
