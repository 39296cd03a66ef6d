package libpatch

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StrDiff computes a semantically cleaned character diff between two
// attribute strings, for hosts and renderers that want to show or
// apply minimal text edits instead of whole-value replacement.
func StrDiff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.DiffCleanupSemantic(diffs)
}

// StrDelta encodes the diff in the compact delta form understood by
// diffmatchpatch, suitable for the wire.
func StrDelta(from, to string) string {
	dmp := diffpatch.New()
	return dmp.DiffToDelta(StrDiff(from, to))
}
