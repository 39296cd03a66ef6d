// Package elem defines the descriptor model for declarative trees.
//
// # Overview
//
// An Elem describes the node a caller wants to exist: a kind, an
// optional sibling key, scalar attributes, and child descriptors.
// Elems are produced fresh for every reconciliation pass and consumed
// within it; they carry no identity of their own. Identity lives in
// the work-node tree (package fiber) and is established by matching
// (kind, key) pairs during reconciliation (package reconcile).
//
// # Kinds
//
// Kind is a closed enum. Matching rules are structural: two nodes are
// compatible exactly when their kinds are equal, so the set of kinds is
// matched explicitly at comparison points rather than dispatched
// through an interface.
//
// NullKind is the "no node" value. Normalize strips NullKind and nil
// descriptors from child lists before they reach the reconcilers, so a
// conditional hole in a child list produces no node and no effect.
package elem
