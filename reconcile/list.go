package reconcile

import (
	"slices"

	"github.com/YPYT1/awesome-react-sub004/debug"
	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
)

// reconcileList diffs an ordered descriptor list against the old
// sibling chain in two phases: a lockstep positional walk for the
// common no-structural-change prefix, then a key-indexed pass over
// whatever both sides have left.
func (p *Pass) reconcileList(parent, oldFirst *fiber.Node, elems []*elem.Elem) []pair {
	pairs := make([]pair, 0, len(elems))

	// lastPlaced spans both phases: it is the highest old index reused
	// without a move so far. A reused node whose old index sits below
	// it has to move forward; one at or above it stays put.
	lastPlaced := 0

	// Phase 1: lockstep positional match. Stops at the first key
	// mismatch, without skipping ahead.
	old := oldFirst
	i := 0
	for ; i < len(elems) && old != nil; i++ {
		e := elems[i]
		if old.Key != e.Key {
			break
		}
		var n *fiber.Node
		if old.Kind == e.Kind {
			n = fiber.Reuse(old, e)
		} else {
			parent.Deleted(old)
			n = fiber.New(p.tree.nextID(), e)
		}
		lastPlaced = p.place(n, i, lastPlaced)
		pairs = append(pairs, pair{n, e})
		old = old.Sibling
	}
	if debug.List() {
		debug.Logf("list at %s: phase 1 matched %d of %d\n", parent.Path(), i, len(elems))
	}

	// New list exhausted: everything left on the old chain is unclaimed.
	if i == len(elems) {
		for ; old != nil; old = old.Sibling {
			parent.Deleted(old)
		}
		return pairs
	}

	// Old chain exhausted: everything left in the new list is fresh.
	if old == nil {
		for ; i < len(elems); i++ {
			n := fiber.New(p.tree.nextID(), elems[i])
			lastPlaced = p.place(n, i, lastPlaced)
			pairs = append(pairs, pair{n, elems[i]})
		}
		return pairs
	}

	// Phase 2: index the remaining old siblings by key, else by their
	// old positional index, and claim them in new-list order.
	keyed, indexed := mapRemaining(old)

	for ; i < len(elems); i++ {
		e := elems[i]
		var cand *fiber.Node
		if e.Key != "" {
			cand = keyed[e.Key]
		} else {
			cand = indexed[i]
		}
		var n *fiber.Node
		if cand != nil && cand.Kind == e.Kind {
			if e.Key != "" {
				delete(keyed, e.Key)
			} else {
				delete(indexed, i)
			}
			n = fiber.Reuse(cand, e)
		} else {
			// No candidate, or a kind clash at the key: the old node, if
			// any, stays in the map and ends up deleted below.
			n = fiber.New(p.tree.nextID(), e)
		}
		lastPlaced = p.place(n, i, lastPlaced)
		pairs = append(pairs, pair{n, e})
	}

	leftovers := make([]*fiber.Node, 0, len(keyed)+len(indexed))
	for _, s := range keyed {
		leftovers = append(leftovers, s)
	}
	for _, s := range indexed {
		leftovers = append(leftovers, s)
	}
	slices.SortFunc(leftovers, func(a, b *fiber.Node) int {
		return a.Index - b.Index
	})
	for _, s := range leftovers {
		parent.Deleted(s)
	}
	return pairs
}

// mapRemaining builds the phase-2 lookup from the unmatched old
// siblings. The first sibling with a given key owns the keyed slot;
// later duplicates fall back to positional indexing.
func mapRemaining(first *fiber.Node) (map[string]*fiber.Node, map[int]*fiber.Node) {
	keyed := map[string]*fiber.Node{}
	indexed := map[int]*fiber.Node{}
	for s := first; s != nil; s = s.Sibling {
		if s.Key == "" {
			indexed[s.Index] = s
			continue
		}
		if _, dup := keyed[s.Key]; dup {
			if debug.Keys() {
				debug.Logf("duplicate key %q among children of %s\n", s.Key, s.Parent.Path())
			}
			indexed[s.Index] = s
			continue
		}
		keyed[s.Key] = s
	}
	return keyed, indexed
}

// place records n's new index and decides whether it needs placement.
// A fresh node is always an insert. A reused node moves only when its
// old index is behind lastPlaced; otherwise lastPlaced advances to it.
// This is a single-pass greedy heuristic: the result always matches
// the new order, but the move count is not guaranteed minimal.
func (p *Pass) place(n *fiber.Node, index, lastPlaced int) int {
	n.Index = index
	if n.Alternate == nil {
		n.Flags |= fiber.Placement
		return lastPlaced
	}
	oldIndex := n.Alternate.Index
	if oldIndex < lastPlaced {
		if debug.Place() {
			debug.Logf("place: move %s from %d to %d (last placed %d)\n",
				n, oldIndex, index, lastPlaced)
		}
		n.Flags |= fiber.Placement
		return lastPlaced
	}
	return oldIndex
}
