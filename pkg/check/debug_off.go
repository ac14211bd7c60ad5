//go:build !checkdebug

package check

import "cmp"

// Enabled reports whether debug-gated checks are compiled in.
// It is a build-tag constant, so `if check.Enabled { ... }`
// blocks are eliminated entirely in non-debug builds.
const Enabled = false

// DebugThat is a no-op without the checkdebug build tag: no
// comparison, no formatting, no termination.
func DebugThat[T cmp.Ordered](
	_ Operand[T],
	_ string,
	_ Operand[T],
	_ ...any,
) {
}

// DebugMatch is a no-op without the checkdebug build tag.
func DebugMatch[T any](
	_ Pattern[T],
	_ Operand[T],
	_ ...any,
) {
}
