package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/libpatch"
	"github.com/YPYT1/awesome-react-sub004/parse"
	"github.com/YPYT1/awesome-react-sub004/reconcile"
)

func TestEncode(t *testing.T) {
	e := elem.Keyed(elem.BoxKind, "b",
		elem.Attrs{"title": "T", "n": 3},
		elem.Text("hi"),
		elem.Keyed(elem.ItemKind, "i", nil),
	)
	var b strings.Builder
	if err := Encode(e, &b); err != nil {
		t.Fatal(err)
	}
	want := `kind: box
key: "b"
attrs:
  n: 3
  title: "T"
children:
  - kind: text
    attrs:
      text: "hi"
  - kind: item
    key: "i"
`
	if d := cmp.Diff(want, b.String()); d != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	e := elem.New(elem.ListKind, elem.Attrs{"dense": true},
		elem.Keyed(elem.ItemKind, "a", nil, elem.Text("one")),
		elem.Keyed(elem.ItemKind, "b", elem.Attrs{"done": false}, elem.Text("two")),
	)
	var b strings.Builder
	if err := Encode(e, &b); err != nil {
		t.Fatal(err)
	}
	got, err := parse.Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("parse: %v\ninput:\n%s", err, b.String())
	}
	if d := cmp.Diff(e, got); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeNode(t *testing.T) {
	tr := reconcile.NewTree()
	p, err := tr.Begin([]*elem.Elem{
		elem.Keyed(elem.BoxKind, "outer", nil, elem.Text("x")),
		elem.New(elem.InputKind, elem.Attrs{"value": "v"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Commit(); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := EncodeNode(tr.Root(), &b); err != nil {
		t.Fatal(err)
	}
	want := `kind: box
key: "outer"
children:
  - kind: text
    attrs:
      text: "x"
---
kind: input
attrs:
  value: "v"
`
	if d := cmp.Diff(want, b.String()); d != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeOps(t *testing.T) {
	tr := reconcile.NewTree()
	p, err := tr.Begin([]*elem.Elem{
		elem.Keyed(elem.ItemKind, "1", elem.Attrs{"done": false}),
	})
	if err != nil {
		t.Fatal(err)
	}
	ops := libpatch.FromEffects(p.Effects())
	if err := p.Commit(); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := EncodeOps(ops, &b); err != nil {
		t.Fatal(err)
	}
	want := "insert item \"1\" at [0] of #1 {done: false}\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestEncodeOpsDelta(t *testing.T) {
	tr := reconcile.NewTree()
	p, err := tr.Begin([]*elem.Elem{
		elem.Keyed(elem.InputKind, "f", elem.Attrs{"value": "x", "label": "L"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Commit(); err != nil {
		t.Fatal(err)
	}
	p, err = tr.Begin([]*elem.Elem{
		elem.Keyed(elem.InputKind, "f", elem.Attrs{"value": "y"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	ops := libpatch.FromEffects(p.Effects())
	if err := p.Commit(); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := EncodeOps(ops, &b); err != nil {
		t.Fatal(err)
	}
	want := "update input \"f\" at [0] of #1: value: \"x\" -> \"y\" -label\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestScalar(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{"s", `"s"`},
		{true, "true"},
		{int64(42), "42"},
		{float64(1.5), "1.5"},
	} {
		if got := Scalar(tc.in); got != tc.want {
			t.Errorf("Scalar(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
