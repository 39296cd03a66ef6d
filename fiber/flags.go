package fiber

import "strings"

// Flags records the pending mutations on a node for the pass that
// produced it. Deletion membership is not a flag: a deleted node is
// reachable only through its parent's deletion list.
type Flags uint8

const (
	// Placement marks a node that must be (re)attached at its index:
	// an insert when the node has no Alternate, a move when it does.
	Placement Flags = 1 << iota
	// Update marks a reused node whose attributes changed.
	Update
)

func (f Flags) Has(g Flags) bool {
	return f&g != 0
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(Placement) {
		parts = append(parts, "placement")
	}
	if f.Has(Update) {
		parts = append(parts, "update")
	}
	return strings.Join(parts, "|")
}
