package reconcile

import (
	"github.com/YPYT1/awesome-react-sub004/debug"
	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
)

// reconcileSingle is the fast path for a parent whose new children
// collapse to exactly one descriptor. It walks the old sibling chain
// looking for a node with the descriptor's key; everything it walks
// past, and everything after a match, goes on the deletion list. A key
// match with a different kind is never reused: the old node is deleted
// and a fresh one created.
func (p *Pass) reconcileSingle(parent, oldFirst *fiber.Node, e *elem.Elem) pair {
	for old := oldFirst; old != nil; old = old.Sibling {
		if old.Key != e.Key {
			parent.Deleted(old)
			continue
		}
		if old.Kind == e.Kind {
			for s := old.Sibling; s != nil; s = s.Sibling {
				parent.Deleted(s)
			}
			if debug.Single() {
				debug.Logf("single: reuse %s for %s key %q\n", old, e.Kind, e.Key)
			}
			n := fiber.Reuse(old, e)
			n.Index = 0
			return pair{n, e}
		}
		for s := old; s != nil; s = s.Sibling {
			parent.Deleted(s)
		}
		break
	}
	if debug.Single() {
		debug.Logf("single: create %s key %q\n", e.Kind, e.Key)
	}
	n := fiber.New(p.tree.nextID(), e)
	n.Flags |= fiber.Placement
	n.Index = 0
	return pair{n, e}
}
