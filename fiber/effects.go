package fiber

// Item is one entry of an EffectList: either a node carrying non-zero
// flags, or an entry from some parent's deletion list.
type Item struct {
	Node    *Node
	Deleted bool
}

// EffectList accumulates, in traversal order, every node the pass
// flagged plus every deletion-list entry. It must be consumed before
// the pass commits: commit clears node flags and alternate links along
// with the list itself.
type EffectList struct {
	items []Item
}

func (l *EffectList) Add(n *Node) {
	l.items = append(l.items, Item{Node: n})
}

// AddDeletions appends parent's deletion-list entries.
func (l *EffectList) AddDeletions(parent *Node) {
	for _, d := range parent.Deletions {
		l.items = append(l.items, Item{Node: d, Deleted: true})
	}
}

func (l *EffectList) Items() []Item {
	return l.items
}

func (l *EffectList) Len() int {
	return len(l.items)
}

func (l *EffectList) Empty() bool {
	return len(l.items) == 0
}

func (l *EffectList) Clear() {
	l.items = nil
}
