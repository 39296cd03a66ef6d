package fiber

import (
	"strconv"

	"github.com/YPYT1/awesome-react-sub004/elem"
)

// Node is the mutable, cross-pass representation of a materialized
// tree node. A Node owns its children through Child/Sibling; Parent and
// Alternate are lookup back-references only.
type Node struct {
	Kind  elem.Kind
	Key   string
	Attrs elem.Attrs

	// ID is the node's stable identity. It is assigned once, on first
	// materialization, and carried to every later incarnation of the
	// node, so hosts can correlate effects across passes.
	ID uint64

	// Index is the node's position among its siblings.
	Index int

	Parent  *Node
	Child   *Node
	Sibling *Node

	// Alternate points at the previous-pass incarnation of this node.
	// It is set while a pass is in flight and nilled at commit; it must
	// not be followed afterwards.
	Alternate *Node

	Flags Flags

	// Deletions holds children of this node's previous incarnation that
	// no descriptor claimed this pass. They are detached from the live
	// chain and reachable only here until commit drops them.
	Deletions []*Node
}

// New materializes a node for a descriptor with no predecessor.
func New(id uint64, e *elem.Elem) *Node {
	return &Node{
		Kind:  e.Kind,
		Key:   e.Key,
		Attrs: e.Attrs.Clone(),
		ID:    id,
	}
}

// Reuse materializes the next incarnation of old for the descriptor e.
// The caller has already established kind and key equality.
func Reuse(old *Node, e *elem.Elem) *Node {
	n := &Node{
		Kind:      old.Kind,
		Key:       old.Key,
		Attrs:     e.Attrs.Clone(),
		ID:        old.ID,
		Alternate: old,
	}
	if !old.Attrs.Equal(e.Attrs) {
		n.Flags |= Update
	}
	return n
}

func (n *Node) Children() []*Node {
	var res []*Node
	for c := n.Child; c != nil; c = c.Sibling {
		res = append(res, c)
	}
	return res
}

func (n *Node) Deleted(old *Node) {
	n.Deletions = append(n.Deletions, old)
}

// Walk visits n and its subtree in depth-first pre-order.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for c := n.Child; c != nil; c = c.Sibling {
		c.Walk(f)
	}
}

func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	return n.Parent.Path() + "[" + strconv.Itoa(n.Index) + "]"
}

func (n *Node) String() string {
	s := n.Kind.String()
	if n.Key != "" {
		s += "(" + n.Key + ")"
	}
	return s + "#" + strconv.FormatUint(n.ID, 10)
}
