//go:build checkdebug

package check

import "cmp"

// Enabled reports whether debug-gated checks are compiled in.
// It is a build-tag constant, so `if check.Enabled { ... }`
// blocks are eliminated entirely in non-debug builds.
const Enabled = true

// DebugThat forwards to That. Built only under the checkdebug
// tag.
func DebugThat[T cmp.Ordered](
	lhs Operand[T],
	op string,
	rhs Operand[T],
	msgAndArgs ...any,
) {
	That(lhs, op, rhs, msgAndArgs...)
}

// DebugMatch forwards to Match. Built only under the checkdebug
// tag.
func DebugMatch[T any](
	pat Pattern[T],
	rhs Operand[T],
	msgAndArgs ...any,
) {
	Match(pat, rhs, msgAndArgs...)
}
