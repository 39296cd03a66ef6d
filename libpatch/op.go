package libpatch

import (
	"fmt"

	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/fiber"
)

type OpType int

const (
	OpInsert OpType = iota
	OpMove
	OpUpdate
	OpDelete
)

func (t OpType) String() string {
	s, ok := map[OpType]string{
		OpInsert: "insert",
		OpMove:   "move",
		OpUpdate: "update",
		OpDelete: "delete",
	}[t]
	if ok {
		return s
	}
	return "<unknown op>"
}

func (t OpType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Op is one host-consumable mutation. Index is the target position
// under Parent for inserts and moves, the current position for
// deletes. From is the source position for moves and -1 otherwise.
// Before is the ID of the stationary sibling the node lands in front
// of, or 0 to attach at the end: hosts that place children relative to
// an anchor (insertBefore) use it instead of Index. Attrs carries the
// full attribute set on inserts; Delta the attribute changes on
// updates and on moves that also update.
type Op struct {
	Type   OpType
	ID     uint64
	Parent uint64
	Kind   elem.Kind
	Key    string
	Index  int
	From   int
	Before uint64
	Attrs  elem.Attrs
	Delta  *AttrDelta
}

func (o Op) String() string {
	switch o.Type {
	case OpMove:
		return fmt.Sprintf("%s %s at %d from %d", o.Type, o.Kind, o.Index, o.From)
	default:
		return fmt.Sprintf("%s %s at %d", o.Type, o.Kind, o.Index)
	}
}

// FromEffects converts a pass's effect list into ops, in effect order.
// It must be called before the pass commits: it reads alternate links
// and flags, both of which commit clears.
func FromEffects(effects *fiber.EffectList) []Op {
	ops := make([]Op, 0, effects.Len())
	for _, it := range effects.Items() {
		n := it.Node
		op := Op{
			ID:    n.ID,
			Kind:  n.Kind,
			Key:   n.Key,
			Index: n.Index,
			From:  -1,
		}
		if n.Parent != nil {
			op.Parent = n.Parent.ID
		}
		switch {
		case it.Deleted:
			op.Type = OpDelete
		case n.Flags.Has(fiber.Placement) && n.Alternate == nil:
			op.Type = OpInsert
			op.Before = anchorOf(n)
			op.Attrs = n.Attrs.Clone()
		case n.Flags.Has(fiber.Placement):
			op.Type = OpMove
			op.From = n.Alternate.Index
			op.Before = anchorOf(n)
			op.Delta = DiffAttrs(n.Alternate.Attrs, n.Attrs)
		default:
			op.Type = OpUpdate
			op.Delta = DiffAttrs(n.Alternate.Attrs, n.Attrs)
		}
		ops = append(ops, op)
	}
	return ops
}

// anchorOf finds the next sibling that stays put this pass. Everything
// flagged for placement is itself in flight and cannot anchor.
func anchorOf(n *fiber.Node) uint64 {
	for s := n.Sibling; s != nil; s = s.Sibling {
		if !s.Flags.Has(fiber.Placement) {
			return s.ID
		}
	}
	return 0
}
