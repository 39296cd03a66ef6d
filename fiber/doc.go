// Package fiber holds the work-node store: the mutable tree that
// persists between reconciliation passes.
//
// Each pass builds a fresh chain of Nodes against the committed tree.
// A node matched to a predecessor keeps the predecessor's ID and points
// at it through Alternate; the committed tree itself is never touched
// until the pass commits, so an uncommitted pass can be discarded
// without trace. Unclaimed old nodes are detached onto their parent's
// deletion list, where they stay reachable until commit.
package fiber
