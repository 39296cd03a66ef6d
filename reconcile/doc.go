// Package reconcile diffs descriptor trees against the committed
// work-node tree and emits the mutations needed to transform one into
// the other.
//
// # Driving a pass
//
//	t := reconcile.NewTree()
//	pass, err := t.Begin(children)  // diff against the committed tree
//	...consume pass.Effects()...
//	pass.Commit()                   // or pass.Discard()
//
// Begin walks the descriptor tree level by level against the matching
// level of the committed tree. Each level goes through the single-child
// fast path when it collapses to one descriptor, otherwise through the
// two-phase list algorithm: a lockstep positional walk over the
// unchanged prefix, then a key-indexed reconciliation of the remainder.
// Node reuse requires kind and key equality; a kind clash at a matching
// key always deletes and recreates, never partially reuses.
//
// Moves are minimized with a single-pass greedy heuristic over old
// indices (the lastPlaced walk in list.go). It is linear and correct
// but intentionally not minimal in move count; a minimal answer would
// need a longest-increasing-subsequence computation over the reused
// indices, trading the linear-time guarantee for it.
//
// The whole walk is synchronous and single-threaded. Exactly one pass
// may be active per Tree; the committed tree is immutable to readers
// while a pass is in flight and only replaced at Commit.
package reconcile
