// Package check is a diagnostic assertion utility: one uniform
// entry point, dispatched by the operator written between two
// captured operands, that either passes silently or terminates
// fatally with a report naming the operand source text and the
// actual run-time values. A parallel Match form tests a single
// value against a named shape predicate, and DebugThat /
// DebugMatch variants are compiled out unless the checkdebug
// build tag is set.
package check

import (
	"cmp"
	"fmt"
)

// That evaluates the assertion `lhs op rhs` and returns normally
// when the relation holds. When it does not, That renders a
// diagnostic naming both operands' source text and values and
// terminates fatally; it never returns a result the caller can
// inspect.
//
// op must be one of ==, !=, >, <, >= or <=. Anything else,
// including the pattern-match operator =, is a construction-time
// contract violation, rejected before any comparison.
//
// msgAndArgs optionally appends a custom message to the
// diagnostic: a single string, a format string followed by its
// arguments, or a func() string invoked only on failure. No
// formatting work happens on the success path.
func That[T cmp.Ordered](
	lhs Operand[T],
	op string,
	rhs Operand[T],
	msgAndArgs ...any,
) {
	kind, err := ParseOp(op)
	if err != nil {
		violation(err.Error())
	}
	if kind == KindMatch {
		violation(
			"operator = takes a pattern, not an operand; use Match",
		)
	}

	if relates(kind, lhs.Value, rhs.Value) {
		return
	}

	report(FailureContext{
		Kind:     kind,
		LHSLabel: lhs.Label,
		RHSLabel: rhs.Label,
		LHSDebug: debugString(lhs.Value),
		RHSDebug: debugString(rhs.Value),
		Message:  formatMessage(msgAndArgs),
	})
}

// Match evaluates the pattern-match assertion `pat = rhs` and
// returns normally when the value's shape satisfies the pattern.
// Otherwise it renders a diagnostic naming the pattern and the
// value and terminates fatally. msgAndArgs behaves as in That.
func Match[T any](
	pat Pattern[T],
	rhs Operand[T],
	msgAndArgs ...any,
) {
	if pat.Test == nil {
		violation("pattern predicate must not be nil")
	}

	if pat.Test(rhs.Value) {
		return
	}

	report(FailureContext{
		Kind:     KindMatch,
		LHSLabel: pat.Label,
		RHSLabel: rhs.Label,
		RHSDebug: debugString(rhs.Value),
		Message:  formatMessage(msgAndArgs),
	})
}

// relates applies the type's own ordering/equality for the
// dispatched kind. KindMatch never reaches here.
func relates[T cmp.Ordered](kind Kind, lhs, rhs T) bool {
	switch kind {
	case KindEq:
		return lhs == rhs
	case KindNe:
		return lhs != rhs
	case KindGt:
		return lhs > rhs
	case KindLt:
		return lhs < rhs
	case KindGte:
		return lhs >= rhs
	case KindLte:
		return lhs <= rhs
	}
	return false
}

// formatMessage builds the optional custom message. It runs only
// on the failure path, so format arguments are never rendered
// and func() string messages are never invoked for a passing
// check.
func formatMessage(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		switch m := msgAndArgs[0].(type) {
		case string:
			return m
		case func() string:
			return m()
		default:
			return fmt.Sprintf("%+v", m)
		}
	}

	format, ok := msgAndArgs[0].(string)
	if !ok {
		violation(
			"custom message with arguments must start with a format string",
		)
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

// violation rejects a malformed invocation at the earliest
// construction boundary, before any comparison runs. The panic
// value is a plain string so it can never be mistaken for a
// *Failure.
func violation(msg string) {
	panic("check: invalid assertion: " + msg)
}
