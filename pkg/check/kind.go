package check

import "fmt"

// Kind identifies the semantic comparison an assertion performs.
// It is fixed at dispatch time and maps 1:1 to the operator
// symbol written at the call site.
type Kind int

const (
	// KindEq is the equality comparison (==).
	KindEq Kind = iota
	// KindNe is the inequality comparison (!=).
	KindNe
	// KindGt is the strict greater-than comparison (>).
	KindGt
	// KindLt is the strict less-than comparison (<).
	KindLt
	// KindGte is the greater-or-equal comparison (>=).
	KindGte
	// KindLte is the less-or-equal comparison (<=).
	KindLte
	// KindMatch is the pattern-match test (=).
	KindMatch
)

// Symbol returns the operator symbol displayed in failure
// diagnostics for this kind.
func (k Kind) Symbol() string {
	switch k {
	case KindEq:
		return "=="
	case KindNe:
		return "!="
	case KindGt:
		return ">"
	case KindLt:
		return "<"
	case KindGte:
		return ">="
	case KindLte:
		return "<="
	case KindMatch:
		return "="
	}
	return "?"
}

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEq:
		return "eq"
	case KindNe:
		return "ne"
	case KindGt:
		return "gt"
	case KindLt:
		return "lt"
	case KindGte:
		return "gte"
	case KindLte:
		return "lte"
	case KindMatch:
		return "match"
	}
	return "unknown"
}

// ParseOp maps an operator token to its Kind. The token set is
// closed: ==, !=, >, <, >=, <= and = (pattern match). Any other
// token is an error.
func ParseOp(op string) (Kind, error) {
	switch op {
	case "==":
		return KindEq, nil
	case "!=":
		return KindNe, nil
	case ">":
		return KindGt, nil
	case "<":
		return KindLt, nil
	case ">=":
		return KindGte, nil
	case "<=":
		return KindLte, nil
	case "=":
		return KindMatch, nil
	}
	return 0, fmt.Errorf("unsupported operator %q", op)
}
