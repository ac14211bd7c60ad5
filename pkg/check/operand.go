package check

// Operand pairs the source text of an expression with its value,
// captured exactly once at the call boundary. Building the
// Operand is the single evaluation of the expression: comparison
// and failure rendering both reuse the captured value, so an
// expression with side effects runs precisely once per check.
type Operand[T any] struct {
	// Label is the literal source text of the expression as
	// written by the caller, e.g. "larger" or "next()".
	Label string

	// Value is the captured result of evaluating the
	// expression.
	Value T
}

// V captures an operand for That, Match and their debug-gated
// variants. The label must be the expression's source text and
// must not be empty.
func V[T any](label string, value T) Operand[T] {
	if label == "" {
		violation("operand label must not be empty")
	}
	return Operand[T]{Label: label, Value: value}
}

// Pattern describes a shape test for the pattern-match variant:
// a textual label naming the pattern and a predicate that
// reports whether a value satisfies it.
type Pattern[T any] struct {
	// Label is the literal pattern text shown in diagnostics,
	// e.g. "Some(_)" or "None".
	Label string

	// Test reports whether the value's shape satisfies the
	// pattern.
	Test func(T) bool
}

// P builds a Pattern for Match. The label must not be empty and
// the predicate must not be nil.
func P[T any](label string, test func(T) bool) Pattern[T] {
	if label == "" {
		violation("pattern label must not be empty")
	}
	if test == nil {
		violation("pattern predicate must not be nil")
	}
	return Pattern[T]{Label: label, Test: test}
}
