// Package scene loads laid-out element trees from YAML into a dom document,
// so events can be fired at something without a layout engine.
//
//	title: login
//	viewport: {width: 800, height: 600}
//	elements:
//	  - tag: form
//	    id: login
//	    rect: {x: 100, y: 100, width: 300, height: 200}
//	    children:
//	      - {tag: button, id: ok, rect: {x: 120, y: 200, width: 80, height: 30}}
//
// Rects are client coordinates; children are not clipped to their parent.
package scene

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/uisim/dom"
)

var ErrInvalidScene = errors.New("invalid scene")

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Element struct {
	Tag        string            `yaml:"tag"`
	ID         string            `yaml:"id,omitempty"`
	Class      string            `yaml:"class,omitempty"`
	Text       string            `yaml:"text,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Rect       Rect              `yaml:"rect"`
	Hidden     bool              `yaml:"hidden,omitempty"`
	Children   []Element         `yaml:"children,omitempty"`
}

type Scene struct {
	Title    string    `yaml:"title"`
	Viewport Viewport  `yaml:"viewport"`
	Elements []Element `yaml:"elements"`
}

// Parse decodes a scene. Unknown keys are rejected.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.WithMessage(ErrInvalidScene, "empty document")
		}
		return nil, errors.Wrap(err, "decode scene")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString is Parse for an in-memory scene.
func ParseString(src string) (*Scene, error) {
	return Parse(strings.NewReader(src))
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	logrus.WithFields(logrus.Fields{
		"path":     path,
		"title":    s.Title,
		"elements": s.count(),
	}).Debug("loaded scene")
	return s, nil
}

func (s *Scene) validate() error {
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return errors.WithMessagef(ErrInvalidScene, "negative viewport %gx%g", s.Viewport.Width, s.Viewport.Height)
	}
	var check func(path string, els []Element) error
	check = func(path string, els []Element) error {
		for i, el := range els {
			at := path + "/" + el.Tag
			if strings.TrimSpace(el.Tag) == "" {
				return errors.WithMessagef(ErrInvalidScene, "element %d under %q has no tag", i, path)
			}
			if el.Rect.Width < 0 || el.Rect.Height < 0 {
				return errors.WithMessagef(ErrInvalidScene, "%s has a negative size", at)
			}
			if err := check(at, el.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return check("", s.Elements)
}

func (s *Scene) count() int {
	var n func([]Element) int
	n = func(els []Element) int {
		c := len(els)
		for _, el := range els {
			c += n(el.Children)
		}
		return c
	}
	return n(s.Elements)
}

// Document builds a fresh document for the scene. The elements go into
// body in order; a zero viewport means DefaultWidth x DefaultHeight.
func (s *Scene) Document() *dom.Node {
	w, h := s.Viewport.Width, s.Viewport.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	doc := dom.NewHTMLDocument(w, h)
	doc.Title = s.Title
	for _, el := range s.Elements {
		doc.Body().AppendChild(build(doc, el))
	}
	return doc
}

func build(doc *dom.Node, el Element) *dom.Node {
	n := doc.CreateElement(strings.ToLower(el.Tag))
	for name, value := range el.Attributes {
		n.SetAttribute(name, value)
	}
	if el.ID != "" {
		n.SetAttribute("id", el.ID)
	}
	if el.Class != "" {
		n.SetAttribute("class", el.Class)
	}
	n.Rect = dom.DOMRect{X: el.Rect.X, Y: el.Rect.Y, Width: el.Rect.Width, Height: el.Rect.Height}
	n.Hidden = el.Hidden
	if el.Text != "" {
		n.AppendChild(doc.CreateTextNode(el.Text))
	}
	for _, child := range el.Children {
		n.AppendChild(build(doc, child))
	}
	return n
}

// Demo is the scene the CLI uses when none is configured.
const Demo = `title: demo
viewport: {width: 800, height: 600}
elements:
  - tag: form
    id: login
    rect: {x: 100, y: 100, width: 300, height: 200}
    children:
      - {tag: input, id: user, rect: {x: 120, y: 120, width: 200, height: 30}}
      - {tag: button, id: ok, text: Sign in, rect: {x: 120, y: 200, width: 80, height: 30}}
  - tag: div
    id: banner
    class: notice
    rect: {x: 0, y: 0, width: 800, height: 60}
`
