//go:build invariants

package invariants

// Enabled reports whether structural self-checks are compiled in.
const Enabled = true
