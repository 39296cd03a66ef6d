package libpatch

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"

	"github.com/YPYT1/awesome-react-sub004/elem"
)

// applyPatch reconciles new against a tree materialized from old,
// renders the pass as an RFC 6902 patch, applies it to the old JSON
// document, and requires the result to equal the new JSON document.
func applyPatch(t *testing.T, old, new []*elem.Elem) {
	t.Helper()
	tr, p, ops := renderOps(t, old, new)

	oldDoc, err := json.Marshal(JSONTree(tr.Root()))
	if err != nil {
		t.Fatal(err)
	}
	patchBytes, err := JSONPatch(tr.Root(), ops)
	if err != nil {
		t.Fatal(err)
	}
	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		t.Fatalf("decode patch %s: %v", patchBytes, err)
	}
	patched, err := patch.Apply(oldDoc)
	if err != nil {
		t.Fatalf("apply patch %s: %v", patchBytes, err)
	}
	if err := p.Commit(); err != nil {
		t.Fatal(err)
	}
	newDoc, err := json.Marshal(JSONTree(tr.Root()))
	if err != nil {
		t.Fatal(err)
	}

	var got, want any
	if err := json.Unmarshal(patched, &got); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(newDoc, &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patched document (-want +got):\n%s\npatch: %s", diff, patchBytes)
	}
}

type patchTest struct {
	name string
	old  []*elem.Elem
	new  []*elem.Elem
}

var patchTests = []patchTest{
	{
		name: "empty to populated",
		old:  nil,
		new:  items("x", "y"),
	},
	{
		name: "append",
		old:  items("1", "2"),
		new:  items("1", "2", "3"),
	},
	{
		name: "delete middle",
		old:  items("1", "2", "3"),
		new:  items("1", "3"),
	},
	{
		name: "swap",
		old:  items("1", "2", "3", "4"),
		new:  items("1", "3", "2", "4"),
	},
	{
		name: "rotate tail to head",
		old:  items("1", "2", "3", "4"),
		new:  items("4", "1", "2", "3"),
	},
	{
		name: "rotate head to tail",
		old:  items("1", "2", "3", "4"),
		new:  items("2", "3", "4", "1"),
	},
	{
		name: "replace all",
		old:  items("1", "2", "3"),
		new:  items("4", "5"),
	},
	{
		name: "shuffle with inserts and deletes",
		old:  items("a", "b", "c", "d", "e"),
		new:  items("d", "x", "a", "e", "y", "b"),
	},
	{
		name: "kind change at key",
		old:  []*elem.Elem{elem.Keyed(elem.BoxKind, "1", nil)},
		new:  []*elem.Elem{elem.Keyed(elem.ListKind, "1", nil)},
	},
	{
		name: "attr update",
		old:  []*elem.Elem{elem.Keyed(elem.InputKind, "f", elem.Attrs{"value": "x"})},
		new:  []*elem.Elem{elem.Keyed(elem.InputKind, "f", elem.Attrs{"value": "y", "rows": int64(2)})},
	},
	{
		name: "nested insert under new parent",
		old:  items("a"),
		new: []*elem.Elem{
			item("a"),
			elem.Keyed(elem.BoxKind, "b", nil,
				elem.Text("inner"),
				elem.New(elem.ListKind, nil, item("i1"), item("i2")),
			),
		},
	},
	{
		name: "nested reorder",
		old: []*elem.Elem{
			elem.Keyed(elem.ListKind, "l", nil, item("1"), item("2"), item("3")),
			elem.Keyed(elem.BoxKind, "b", nil, elem.Text("t")),
		},
		new: []*elem.Elem{
			elem.Keyed(elem.BoxKind, "b", nil, elem.Text("t2")),
			elem.Keyed(elem.ListKind, "l", nil, item("3"), item("1")),
		},
	},
	{
		name: "move with attr change",
		old: []*elem.Elem{
			elem.Keyed(elem.InputKind, "a", elem.Attrs{"value": "1"}),
			elem.Keyed(elem.InputKind, "b", elem.Attrs{"value": "2"}),
			elem.Keyed(elem.InputKind, "c", elem.Attrs{"value": "3"}),
		},
		new: []*elem.Elem{
			elem.Keyed(elem.InputKind, "b", elem.Attrs{"value": "2"}),
			elem.Keyed(elem.InputKind, "a", elem.Attrs{"value": "9"}),
			elem.Keyed(elem.InputKind, "c", elem.Attrs{"value": "3"}),
		},
	},
}

func TestJSONPatchRoundTrip(t *testing.T) {
	for _, tc := range patchTests {
		t.Run(tc.name, func(t *testing.T) {
			applyPatch(t, tc.old, tc.new)
		})
	}
}

func TestJSONPatchEmptyOnNoOp(t *testing.T) {
	children := items("a", "b")
	tr, p, ops := renderOps(t, children, children)
	defer p.Discard()
	if len(ops) != 0 {
		t.Fatalf("got ops %v, want none", ops)
	}
	patch, err := JSONPatch(tr.Root(), ops)
	if err != nil {
		t.Fatal(err)
	}
	if string(patch) != "[]" {
		t.Errorf("got %s, want []", patch)
	}
}

func TestEscapePointer(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"a/b", "a~1b"},
		{"a~b", "a~0b"},
		{"~/", "~0~1"},
	}
	for _, tc := range tests {
		if got := escapePointer(tc.in); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}
