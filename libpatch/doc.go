// Package libpatch turns reconciliation effect lists into
// host-consumable patches.
//
// # Usage
//
//	pass, _ := tree.Begin(children)
//	ops := libpatch.FromEffects(pass.Effects())
//	patch, _ := libpatch.JSONPatch(tree.Root(), ops)
//	pass.Commit()
//
// FromEffects must run before Commit: it reads the flags and alternate
// links that Commit clears. Ops carry both index and anchor (Before)
// placement so hosts can apply them either way; JSONPatch lays the
// same ops out as an RFC 6902 patch against the JSON document form of
// the previously committed tree.
package libpatch
