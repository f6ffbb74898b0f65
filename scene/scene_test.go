package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoDocument(t *testing.T) {
	s, err := ParseString(Demo)
	require.NoError(t, err)
	doc := s.Document()

	assert.Equal(t, "demo", doc.Title)
	assert.Equal(t, 800.0, doc.DefaultView.InnerWidth)
	assert.Equal(t, "#document\n"+
		"| <html> [0,0 800x600]\n"+
		"|   <body> [0,0 800x600]\n"+
		"|     <form id=\"login\"> [100,100 300x200]\n"+
		"|       <input id=\"user\"> [120,120 200x30]\n"+
		"|       <button id=\"ok\"> [120,200 80x30]\n"+
		"|         \"Sign in\"\n"+
		"|     <div class=\"notice\" id=\"banner\"> [0,0 800x60]", doc.Tree())

	ok := doc.GetElementByID("ok")
	require.NotNil(t, ok)
	assert.Same(t, ok, doc.ElementFromPoint(130, 210))
	assert.Equal(t, "banner", doc.ElementFromPoint(10, 10).ID())
}

func TestDocumentIsFresh(t *testing.T) {
	s, err := ParseString(Demo)
	require.NoError(t, err)
	a, b := s.Document(), s.Document()
	assert.NotSame(t, a.GetElementByID("ok"), b.GetElementByID("ok"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool
		errText string
	}{
		{"default viewport", "elements: [{tag: p}]", false, ""},
		{"empty", "", true, "empty document"},
		{"missing tag", "elements: [{id: x}]", true, "no tag"},
		{"nested missing tag", "elements: [{tag: div, children: [{tag: ' '}]}]", true, "/div"},
		{"negative size", "elements: [{tag: div, rect: {width: -1}}]", true, "negative size"},
		{"negative viewport", "viewport: {width: -5}", true, "negative viewport"},
		{"unknown key", "elements: [{tag: div, colour: red}]", false, "colour"},
		{"bad yaml", "elements: [", false, "decode scene"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseString(tt.src)
			if tt.errText == "" {
				require.NoError(t, err)
				doc := s.Document()
				assert.Equal(t, float64(DefaultWidth), doc.DefaultView.InnerWidth)
				assert.Equal(t, float64(DefaultHeight), doc.DefaultView.InnerHeight)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidScene))
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: t\nelements:\n  - {tag: DIV, hidden: true, attributes: {role: dialog}}\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	div := s.Document().Body().FirstChild
	require.NotNil(t, div)
	assert.Equal(t, "div", div.LocalName)
	assert.True(t, div.Hidden)
	assert.Equal(t, "dialog", div.GetAttribute("role"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("elements: [{}]"), 0o600))
	_, err = Load(path)
	assert.True(t, errors.Is(err, ErrInvalidScene))
	assert.Contains(t, err.Error(), path)
}
