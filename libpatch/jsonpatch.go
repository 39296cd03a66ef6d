package libpatch

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/YPYT1/awesome-react-sub004/fiber"
)

// JSONTree renders a fiber tree in its JSON document form:
// {"kind":…,"key":…,"attrs":{…},"children":[…]}.
func JSONTree(n *fiber.Node) map[string]any {
	children := []any{}
	for c := n.Child; c != nil; c = c.Sibling {
		children = append(children, JSONTree(c))
	}
	return map[string]any{
		"kind":     n.Kind.String(),
		"key":      n.Key,
		"attrs":    attrsJSON(n.Attrs),
		"children": children,
	}
}

func attrsJSON(a map[string]any) map[string]any {
	res := map[string]any{}
	for k, v := range a {
		res[k] = v
	}
	return res
}

// simNode mirrors one node of the evolving document while the patch is
// being laid out, so each emitted operation can carry the JSON pointer
// valid at its point in the sequence.
type simNode struct {
	id       uint64
	parent   *simNode
	children []*simNode
}

func (s *simNode) path() string {
	if s.parent == nil {
		return ""
	}
	return s.parent.path() + "/children/" + strconv.Itoa(s.parent.childIndex(s))
}

func (s *simNode) childIndex(c *simNode) int {
	for i, x := range s.children {
		if x == c {
			return i
		}
	}
	return -1
}

func (s *simNode) detach(c *simNode) {
	i := s.childIndex(c)
	s.children = append(s.children[:i], s.children[i+1:]...)
	c.parent = nil
}

func (s *simNode) attach(c *simNode, at int) {
	c.parent = s
	s.children = append(s.children, nil)
	copy(s.children[at+1:], s.children[at:])
	s.children[at] = c
}

type sim struct {
	root  *simNode
	index map[uint64]*simNode
}

func newSim(root *fiber.Node) *sim {
	s := &sim{index: map[uint64]*simNode{}}
	s.root = s.build(root, nil)
	return s
}

func (s *sim) build(n *fiber.Node, parent *simNode) *simNode {
	sn := &simNode{id: n.ID, parent: parent}
	s.index[n.ID] = sn
	for c := n.Child; c != nil; c = c.Sibling {
		sn.children = append(sn.children, s.build(c, sn))
	}
	return sn
}

// target resolves where under parent a node lands: just before its
// stationary anchor, or at the end.
func (s *sim) target(parent *simNode, before uint64) (int, error) {
	if before == 0 {
		return len(parent.children), nil
	}
	anchor := s.index[before]
	if anchor == nil || anchor.parent != parent {
		return 0, fmt.Errorf("anchor %d not under parent %d", before, parent.id)
	}
	return parent.childIndex(anchor), nil
}

// JSONPatch lays out a pass's ops as an RFC 6902 patch against the
// JSON document form of the tree committed before the pass. Applying
// the patch to that document yields the document form of the pass's
// result.
func JSONPatch(oldRoot *fiber.Node, ops []Op) ([]byte, error) {
	s := newSim(oldRoot)
	patch := []map[string]any{}

	for _, op := range ops {
		switch op.Type {
		case OpDelete:
			sn := s.index[op.ID]
			if sn == nil || sn.parent == nil {
				return nil, fmt.Errorf("delete of unknown node %d", op.ID)
			}
			patch = append(patch, map[string]any{
				"op":   "remove",
				"path": sn.path(),
			})
			sn.parent.detach(sn)

		case OpInsert:
			parent := s.index[op.Parent]
			if parent == nil {
				return nil, fmt.Errorf("insert under unknown parent %d", op.Parent)
			}
			at, err := s.target(parent, op.Before)
			if err != nil {
				return nil, err
			}
			sn := &simNode{id: op.ID}
			parent.attach(sn, at)
			s.index[op.ID] = sn
			patch = append(patch, map[string]any{
				"op":   "add",
				"path": sn.path(),
				"value": map[string]any{
					"kind":     op.Kind.String(),
					"key":      op.Key,
					"attrs":    attrsJSON(op.Attrs),
					"children": []any{},
				},
			})

		case OpMove:
			sn := s.index[op.ID]
			if sn == nil || sn.parent == nil {
				return nil, fmt.Errorf("move of unknown node %d", op.ID)
			}
			parent := sn.parent
			from := sn.path()
			parent.detach(sn)
			at, err := s.target(parent, op.Before)
			if err != nil {
				return nil, err
			}
			parent.attach(sn, at)
			to := sn.path()
			if from != to {
				patch = append(patch, map[string]any{
					"op":   "move",
					"from": from,
					"path": to,
				})
			}
			patch = appendDelta(patch, sn, op.Delta)

		case OpUpdate:
			sn := s.index[op.ID]
			if sn == nil {
				return nil, fmt.Errorf("update of unknown node %d", op.ID)
			}
			patch = appendDelta(patch, sn, op.Delta)
		}
	}
	return json.Marshal(patch)
}

func appendDelta(patch []map[string]any, sn *simNode, d *AttrDelta) []map[string]any {
	if d == nil {
		return patch
	}
	for _, k := range slices.Sorted(maps.Keys(d.Set)) {
		patch = append(patch, map[string]any{
			"op":    "add",
			"path":  sn.path() + "/attrs/" + escapePointer(k),
			"value": d.Set[k],
		})
	}
	for _, k := range d.Unset {
		patch = append(patch, map[string]any{
			"op":   "remove",
			"path": sn.path() + "/attrs/" + escapePointer(k),
		})
	}
	return patch
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
