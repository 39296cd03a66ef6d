package elem

// Elem describes a desired node for one reconciliation pass. An Elem is
// immutable once handed to the reconciler: the reconciler may copy its
// attributes into a work node but never retains the Elem itself.
type Elem struct {
	Kind     Kind
	Key      string
	Attrs    Attrs
	Children []*Elem
}

func New(kind Kind, attrs Attrs, children ...*Elem) *Elem {
	return &Elem{
		Kind:     kind,
		Attrs:    attrs.normalize(),
		Children: Normalize(children),
	}
}

func Keyed(kind Kind, key string, attrs Attrs, children ...*Elem) *Elem {
	e := New(kind, attrs, children...)
	e.Key = key
	return e
}

func Text(s string) *Elem {
	return &Elem{
		Kind:  TextKind,
		Attrs: Attrs{"text": s},
	}
}

func (e *Elem) WithKey(key string) *Elem {
	e.Key = key
	return e
}

// Normalize drops the "no node" descriptors (nil and NullKind) so the
// reconcilers only ever see real nodes. The input slice is not modified.
func Normalize(children []*Elem) []*Elem {
	n := 0
	for _, c := range children {
		if c == nil || c.Kind == NullKind {
			continue
		}
		n++
	}
	if n == len(children) {
		return children
	}
	res := make([]*Elem, 0, n)
	for _, c := range children {
		if c == nil || c.Kind == NullKind {
			continue
		}
		res = append(res, c)
	}
	return res
}

// Same reports whether a work node materialized from old could be reused
// for e: kind equality is the structural gate, key equality the identity
// gate. Callers check keys separately during matching; Same is the
// combined projection.
func (e *Elem) Same(kind Kind, key string) bool {
	return e.Kind == kind && e.Key == key
}
