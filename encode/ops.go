package encode

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/YPYT1/awesome-react-sub004/libpatch"
)

// EncodeOps writes one line per operation:
//
//	insert item "2" at [1] of #1 {done: false}
//	move input "a" [0] -> [1] of #1
//	update input "f" at [0] of #1: value: "x" -> "y"
//	delete box "b" at [2] of #1
//
// Changed multiline string attributes render as an inline diff instead
// of a value pair.
func EncodeOps(ops []libpatch.Op, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	for _, op := range ops {
		if err := es.op(w, op); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) op(w io.Writer, op libpatch.Op) error {
	verb := es.OpColor(op.Type, op.Type.String())
	name := op.Kind.String()
	if op.Key != "" {
		name += fmt.Sprintf(" %q", op.Key)
	}
	var head string
	switch op.Type {
	case libpatch.OpMove:
		head = fmt.Sprintf("%s %s [%d] -> [%d] of #%d", verb, name, op.From, op.Index, op.Parent)
	default:
		head = fmt.Sprintf("%s %s at [%d] of #%d", verb, name, op.Index, op.Parent)
	}
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if op.Type == libpatch.OpInsert && len(op.Attrs) > 0 {
		parts := make([]string, 0, len(op.Attrs))
		for _, k := range slices.Sorted(maps.Keys(op.Attrs)) {
			parts = append(parts, k+": "+Scalar(op.Attrs[k]))
		}
		if _, err := fmt.Fprintf(w, " {%s}", strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	if op.Delta != nil {
		if err := es.delta(w, op.Delta); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (es *EncState) delta(w io.Writer, d *libpatch.AttrDelta) error {
	if _, err := io.WriteString(w, ":"); err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(d.Set)) {
		nv := d.Set[k]
		ov, had := d.Old[k]
		os, oldStr := ov.(string)
		ns, newStr := nv.(string)
		if had && oldStr && newStr && strings.Contains(os+ns, "\n") {
			if _, err := fmt.Fprintf(w, " %s: %s", k, strDiff(os, ns)); err != nil {
				return err
			}
			continue
		}
		if had {
			if _, err := fmt.Fprintf(w, " %s: %s -> %s", k, Scalar(ov), Scalar(nv)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, " %s: %s", k, Scalar(nv)); err != nil {
			return err
		}
	}
	for _, k := range d.Unset {
		if _, err := fmt.Fprintf(w, " -%s", k); err != nil {
			return err
		}
	}
	return nil
}

// strDiff renders a changed multiline string as +/- chunks.
func strDiff(from, to string) string {
	var b strings.Builder
	for _, d := range libpatch.StrDiff(from, to) {
		text := strings.ReplaceAll(d.Text, "\n", "\\n")
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + text + "]")
		case diffpatch.DiffInsert:
			b.WriteString("[+" + text + "]")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}
