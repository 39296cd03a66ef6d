// Package parse reads YAML descriptor documents into elem trees.
package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/YPYT1/awesome-react-sub004/elem"
)

// Parse reads one YAML document describing a descriptor tree. A node
// is a mapping with a "kind" and optional "key", "attrs" and
// "children"; a bare string is shorthand for a text node; null and
// booleans describe no node at all and parse to nil.
func Parse(d []byte) (*elem.Elem, error) {
	var doc any
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromAny(doc)
}

// ParseAll reads a stream of documents separated by "\n---\n" lines.
// Documents that describe no node are dropped.
func ParseAll(d []byte) ([]*elem.Elem, error) {
	docs := bytes.Split(d, []byte("\n---\n"))
	res := make([]*elem.Elem, 0, len(docs))
	for i, doc := range docs {
		e, err := Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if e == nil {
			continue
		}
		res = append(res, e)
	}
	return res, nil
}

func fromAny(v any) (*elem.Elem, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return nil, nil
	case string:
		return elem.Text(x), nil
	case map[string]any:
		return fromMap(x)
	default:
		return nil, fmt.Errorf("%w: node must be a mapping or string, got %T", ErrParse, v)
	}
}

func fromMap(m map[string]any) (*elem.Elem, error) {
	e := &elem.Elem{}
	for field, v := range m {
		switch field {
		case "kind":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: kind must be a string, got %T", ErrParse, v)
			}
			if err := e.Kind.UnmarshalText([]byte(s)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
		case "key":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key must be a string, got %T", ErrParse, v)
			}
			e.Key = s
		case "attrs":
			attrs, err := fromAttrs(v)
			if err != nil {
				return nil, err
			}
			e.Attrs = attrs
		case "children":
			children, err := fromChildren(v)
			if err != nil {
				return nil, err
			}
			e.Children = children
		default:
			return nil, fmt.Errorf("%w: unknown field %q", ErrParse, field)
		}
	}
	if _, ok := m["kind"]; !ok {
		return nil, fmt.Errorf("%w: node has no kind", ErrParse)
	}
	if e.Kind == elem.NullKind {
		return nil, nil
	}
	return e, nil
}

func fromAttrs(v any) (elem.Attrs, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: attrs must be a mapping, got %T", ErrParse, v)
	}
	attrs := make(elem.Attrs, len(m))
	for k, av := range m {
		switch x := av.(type) {
		case string, bool, int64, float64:
			attrs[k] = x
		case int:
			attrs[k] = int64(x)
		case uint64:
			attrs[k] = int64(x)
		default:
			return nil, fmt.Errorf("%w: attr %q must be scalar, got %T", ErrParse, k, av)
		}
	}
	return attrs, nil
}

func fromChildren(v any) ([]*elem.Elem, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: children must be a sequence, got %T", ErrParse, v)
	}
	res := make([]*elem.Elem, 0, len(list))
	for _, cv := range list {
		c, err := fromAny(cv)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return elem.Normalize(res), nil
}
