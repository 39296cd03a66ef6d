package encode

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
	"github.com/YPYT1/awesome-react-sub004/libpatch"
)

type EncState struct {
	indent int
	depth  int

	Color   func(elem.Kind, ColorAttr, string) string
	OpColor func(libpatch.OpType, string) string
}

// Encode writes a descriptor tree as a YAML document in the same shape
// package parse reads.
func Encode(e *elem.Elem, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	return es.node(w, e.Kind, e.Key, e.Attrs, childElems(e), es.depth, false)
}

// EncodeNode writes a materialized tree in the same document shape.
func EncodeNode(n *fiber.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if n.Kind == elem.RootKind {
		// render the root's forest without the synthetic root
		for i, c := range n.Children() {
			if i > 0 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			if err := es.fiberNode(w, c, es.depth, false); err != nil {
				return err
			}
		}
		return nil
	}
	return es.fiberNode(w, n, es.depth, false)
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ elem.Kind, _ ColorAttr, s string) string { return s }
	}
	if es.OpColor == nil {
		es.OpColor = func(_ libpatch.OpType, s string) string { return s }
	}
	return es
}

func childElems(e *elem.Elem) []childEntry {
	res := make([]childEntry, 0, len(e.Children))
	for _, c := range elem.Normalize(e.Children) {
		res = append(res, childEntry{el: c})
	}
	return res
}

type childEntry struct {
	el *elem.Elem
	fb *fiber.Node
}

func (es *EncState) fiberNode(w io.Writer, n *fiber.Node, depth int, inItem bool) error {
	children := make([]childEntry, 0)
	for c := n.Child; c != nil; c = c.Sibling {
		children = append(children, childEntry{fb: c})
	}
	return es.node(w, n.Kind, n.Key, n.Attrs, children, depth, inItem)
}

// node writes one node block. When inItem is set the first line has
// already been prefixed with the sequence dash by the caller.
func (es *EncState) node(w io.Writer, kind elem.Kind, key string, attrs elem.Attrs, children []childEntry, depth int, inItem bool) error {
	pad := strings.Repeat(" ", depth*es.indent)
	first := pad
	if inItem {
		first = ""
	}
	k := es.Color(kind, FieldColor, "kind")
	v := es.Color(kind, KindColor, kind.String())
	if _, err := fmt.Fprintf(w, "%s%s: %s\n", first, k, v); err != nil {
		return err
	}
	if key != "" {
		f := es.Color(kind, FieldColor, "key")
		kv := es.Color(kind, KeyColor, strconv.Quote(key))
		if _, err := fmt.Fprintf(w, "%s%s: %s\n", pad, f, kv); err != nil {
			return err
		}
	}
	if len(attrs) > 0 {
		f := es.Color(kind, FieldColor, "attrs")
		if _, err := fmt.Fprintf(w, "%s%s:\n", pad, f); err != nil {
			return err
		}
		inner := pad + strings.Repeat(" ", es.indent)
		for _, ak := range slices.Sorted(maps.Keys(attrs)) {
			af := es.Color(kind, FieldColor, ak)
			av := es.Color(kind, ValueColor, Scalar(attrs[ak]))
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", inner, af, av); err != nil {
				return err
			}
		}
	}
	if len(children) > 0 {
		f := es.Color(kind, FieldColor, "children")
		if _, err := fmt.Fprintf(w, "%s%s:\n", pad, f); err != nil {
			return err
		}
		inner := pad + strings.Repeat(" ", es.indent)
		for _, c := range children {
			if _, err := fmt.Fprintf(w, "%s- ", inner); err != nil {
				return err
			}
			// the item body indents past the dash
			var err error
			if c.el != nil {
				err = es.node(w, c.el.Kind, c.el.Key, c.el.Attrs, childElems(c.el), depth+2, true)
			} else {
				err = es.fiberNode(w, c.fb, depth+2, true)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Scalar renders one attribute value as a YAML scalar.
func Scalar(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
