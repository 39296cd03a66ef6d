package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YPYT1/awesome-react-sub004/elem"
)

type listTest struct {
	old  []string
	new  []string
	want []string
}

var listTests = []listTest{
	{
		old:  nil,
		new:  []string{"x", "y"},
		want: []string{"insert x", "insert y"},
	},
	{
		old:  []string{"1", "2"},
		new:  []string{"1", "2", "3"},
		want: []string{"insert 3"},
	},
	{
		old:  []string{"1", "2", "3"},
		new:  []string{"1", "3"},
		want: []string{"delete 2"},
	},
	{
		old:  []string{"1", "2", "3", "4"},
		new:  []string{"1", "3", "2", "4"},
		want: []string{"move 2"},
	},
	{
		old:  []string{"1", "2"},
		new:  []string{"2", "1"},
		want: []string{"move 1"},
	},
	{
		// The greedy placement heuristic moves everything in front of a
		// tail element pulled to the head; a minimal answer would move
		// only "4". Pinned on purpose.
		old:  []string{"1", "2", "3", "4"},
		new:  []string{"4", "1", "2", "3"},
		want: []string{"move 1", "move 2", "move 3"},
	},
	{
		old:  []string{"1", "2", "3"},
		new:  []string{},
		want: []string{"delete 1", "delete 2", "delete 3"},
	},
	{
		old:  []string{"1", "2", "3"},
		new:  []string{"4", "5"},
		want: []string{"delete 1", "delete 2", "delete 3", "insert 4", "insert 5"},
	},
	{
		old:  []string{"1", "2", "3", "4"},
		new:  []string{"1", "4", "9", "2"},
		want: []string{"delete 3", "insert 9", "move 2"},
	},
}

func TestReconcileList(t *testing.T) {
	for i, tc := range listTests {
		tr := NewTree()
		render(t, tr, items(tc.old...)...)
		got := render(t, tr, items(tc.new...)...)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("test %d: (-want +got):\n%s", i, diff)
		}
	}
}

func TestPositionalFallbackUnkeyed(t *testing.T) {
	tr := NewTree()
	render(t, tr, elem.Text("a"), elem.Text("b"), elem.Text("c"))
	got := render(t, tr, elem.Text("a"), elem.New(elem.BoxKind, nil), elem.Text("c"))
	want := []string{"delete b", "insert box"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnkeyedTailPositionalMatch(t *testing.T) {
	// After a keyed head forces phase 2, unkeyed tail items still match
	// their old positional slot.
	tr := NewTree()
	render(t, tr, item("k1"), elem.Text("a"), elem.Text("b"))
	got := render(t, tr, item("k2"), elem.Text("a"), elem.Text("b"))
	want := []string{"delete k1", "insert k2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDuplicateKeysNonFatal(t *testing.T) {
	tr := NewTree()
	render(t, tr, item("k"), item("k"), item("z"))
	got := render(t, tr, item("z"), item("k"))
	want := []string{"delete k", "move k"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := len(tr.Root().Children()); n != 2 {
		t.Errorf("got %d children, want 2", n)
	}
}

func TestKindClashInPhaseTwo(t *testing.T) {
	tr := NewTree()
	render(t, tr, item("a"), elem.Keyed(elem.BoxKind, "b", nil))
	// "a" needs no move: the insert of the new "b" does not advance the
	// placement cursor, and "a" was already at or past it.
	got := render(t, tr, elem.Keyed(elem.ListKind, "b", nil), item("a"))
	want := []string{"delete b", "insert b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
