package reconcile

import (
	"github.com/YPYT1/awesome-react-sub004/debug"
	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
)

// Pass is one reconciliation pass: it carries all pass-scoped state
// (the tree under construction and the effect list) explicitly, so the
// engine holds no package-level mutable state.
type Pass struct {
	tree    *Tree
	root    *fiber.Node
	effects *fiber.EffectList
	done    bool
}

// Root returns the uncommitted root built by this pass.
func (p *Pass) Root() *fiber.Node {
	return p.root
}

// Effects returns the effect list accumulated by this pass. Entries
// appear per parent as deletions first, then placements and updates in
// child order, before any grandchild entries.
func (p *Pass) Effects() *fiber.EffectList {
	return p.effects
}

// pair keeps a produced child aligned with the descriptor that claimed
// it, for the recursion into grandchildren.
type pair struct {
	node *fiber.Node
	el   *elem.Elem
}

// ReconcileChildren reconciles one level: it diffs elems against the
// old sibling chain starting at prevFirstChild, attaches the resulting
// chain under parent, records effects and deletions, and recurses into
// each new child's own children. It returns the new first child.
func (p *Pass) ReconcileChildren(parent, prevFirstChild *fiber.Node, elems []*elem.Elem) *fiber.Node {
	elems = elem.Normalize(elems)

	var pairs []pair
	switch {
	case len(elems) == 0:
		for old := prevFirstChild; old != nil; old = old.Sibling {
			parent.Deleted(old)
		}
	case len(elems) == 1:
		pairs = []pair{p.reconcileSingle(parent, prevFirstChild, elems[0])}
	default:
		pairs = p.reconcileList(parent, prevFirstChild, elems)
	}

	var prev *fiber.Node
	for _, pr := range pairs {
		pr.node.Parent = parent
		if prev == nil {
			parent.Child = pr.node
		} else {
			prev.Sibling = pr.node
		}
		prev = pr.node
	}

	p.effects.AddDeletions(parent)
	for _, pr := range pairs {
		if pr.node.Flags != 0 {
			p.effects.Add(pr.node)
		}
	}
	if debug.Effects() {
		debug.Logf("effects at %s: %d deletions, %d children\n",
			parent.Path(), len(parent.Deletions), len(pairs))
	}

	for _, pr := range pairs {
		var oldFirst *fiber.Node
		if pr.node.Alternate != nil {
			oldFirst = pr.node.Alternate.Child
		}
		p.ReconcileChildren(pr.node, oldFirst, pr.el.Children)
	}
	return parent.Child
}

// Commit publishes the pass's tree as the committed tree, clears every
// flag, alternate link and deletion list, and drops the effect list.
func (p *Pass) Commit() error {
	if p.done {
		return ErrPassDone
	}
	p.root.Walk(func(n *fiber.Node) {
		n.Flags = 0
		n.Alternate = nil
		n.Deletions = nil
	})
	p.effects.Clear()
	p.tree.root = p.root
	p.tree.active = false
	p.done = true
	return nil
}

// Discard abandons the pass; the committed tree is unchanged.
func (p *Pass) Discard() error {
	if p.done {
		return ErrPassDone
	}
	p.effects.Clear()
	p.tree.active = false
	p.done = true
	return nil
}
