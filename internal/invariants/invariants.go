// Package invariants gates structural self-checks behind the "invariants"
// build tag. With the tag unset, Enabled is a compile-time false, so a
// guarded check and its argument evaluation fold away to nothing:
//
//	if invariants.Enabled && (n.left != nil || n.right != nil) {
//	    panic("skew: pushed node still has children")
//	}
//
// Violations signal a bug in the library's own bookkeeping, never a
// recoverable runtime condition, so the only response is a panic.
package invariants
