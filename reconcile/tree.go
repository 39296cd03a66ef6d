package reconcile

import (
	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
)

// Tree owns the committed work-node tree and hands out passes against
// it, one at a time.
type Tree struct {
	root   *fiber.Node
	ids    uint64
	active bool
}

func NewTree() *Tree {
	t := &Tree{}
	t.root = &fiber.Node{Kind: elem.RootKind, ID: t.nextID()}
	return t
}

func (t *Tree) nextID() uint64 {
	t.ids++
	return t.ids
}

// Root returns the committed root. Its subtree must not be mutated by
// callers; all mutation goes through a Pass.
func (t *Tree) Root() *fiber.Node {
	return t.root
}

// Begin starts a pass reconciling children against the committed tree.
// The committed tree is left untouched until the pass commits, so a
// pass may be discarded wholesale. A second Begin before Commit or
// Discard fails with ErrPassActive.
func (t *Tree) Begin(children []*elem.Elem) (*Pass, error) {
	if t.active {
		return nil, ErrPassActive
	}
	t.active = true
	p := &Pass{
		tree:    t,
		effects: &fiber.EffectList{},
	}
	p.root = fiber.Reuse(t.root, &elem.Elem{Kind: elem.RootKind})
	p.ReconcileChildren(p.root, t.root.Child, children)
	return p, nil
}
