package main

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/heathj/uisim/dom"
	"github.com/heathj/uisim/simulate"
)

// parseOptions turns key=value flags into an options bag. Each value is
// decoded as YAML, so "3" is a number, "true" a bool and
// "[{target: '#ok'}]" a touch list. Strings of the form #id anywhere in a
// value are replaced by the element with that id; inside YAML collections
// they need quoting.
func parseOptions(doc *dom.Node, flags []string) (simulate.Options, error) {
	o := simulate.Options{}
	for _, flag := range flags {
		key, raw, ok := strings.Cut(flag, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Wrapf(simulate.ErrInvalidArgument, "option %q is not key=value", flag)
		}

		// A bare #id would be a YAML comment.
		var value any
		if strings.HasPrefix(raw, "#") {
			value = strings.TrimSpace(raw)
		} else if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, errors.Wrapf(err, "option %s", key)
		}
		resolved, err := resolve(doc, value)
		if err != nil {
			return nil, errors.WithMessagef(err, "option %s", key)
		}
		o[key] = resolved
	}
	return o, nil
}

func resolve(doc *dom.Node, value any) (any, error) {
	switch v := value.(type) {
	case string:
		if !strings.HasPrefix(v, "#") || len(v) == 1 {
			return v, nil
		}
		n := doc.GetElementByID(v[1:])
		if n == nil {
			return nil, errors.Wrapf(simulate.ErrNoTarget, "no element with id %q", v[1:])
		}
		return n, nil
	case []any:
		out := make([]any, len(v))
		for i, el := range v {
			r, err := resolve(doc, el)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, el := range v {
			r, err := resolve(doc, el)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	}
	return value, nil
}
