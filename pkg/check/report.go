package check

import (
	"fmt"
	"os"
	"strings"

	"digital.vasic.check/pkg/logging"
)

// FailureContext carries everything the reporter needs to render
// one failed assertion. It is assembled only on the failure path
// and consumed immediately; nothing retains it after the report.
type FailureContext struct {
	// Kind is the comparison that failed.
	Kind Kind

	// LHSLabel is the left operand's source text, or the
	// pattern text for KindMatch.
	LHSLabel string

	// RHSLabel is the right operand's source text.
	RHSLabel string

	// LHSDebug is the left operand's rendered value. Empty for
	// KindMatch, which has no left value line.
	LHSDebug string

	// RHSDebug is the right operand's rendered value.
	RHSDebug string

	// Message is the already-formatted custom message, empty
	// when none was supplied.
	Message string
}

// Render produces the canonical diagnostic text. The output is
// byte-identical for identical inputs:
//
//	assertion failed: `smaller > larger`
//	smaller: `2`,
//	larger: `3`
//
// The match form omits the first value line. A custom message is
// appended to the last value line after ": ".
func (f FailureContext) Render() string {
	var b strings.Builder

	fmt.Fprintf(
		&b, "assertion failed: `%s %s %s`\n",
		f.LHSLabel, f.Kind.Symbol(), f.RHSLabel,
	)

	if f.Kind != KindMatch {
		fmt.Fprintf(&b, "%s: `%s`,\n", f.LHSLabel, f.LHSDebug)
	}
	fmt.Fprintf(&b, "%s: `%s`", f.RHSLabel, f.RHSDebug)

	if f.Message != "" {
		b.WriteString(": ")
		b.WriteString(f.Message)
	}

	return b.String()
}

// Failure is the panic value raised for a failed assertion when
// termination mode is TerminatePanic. It implements error; its
// Error text is exactly the rendered diagnostic.
type Failure struct {
	// Context is the failure being reported.
	Context FailureContext
}

// Error returns the canonical diagnostic text.
func (f *Failure) Error() string {
	return f.Context.Render()
}

// osExit is swapped out by tests exercising TerminateExit.
var osExit = os.Exit

// report emits the diagnostic through the configured logger and
// terminates the calling execution context. It never returns.
func report(ctx FailureContext) {
	s := currentSettings()
	msg := ctx.Render()

	s.Logger.Error("assertion failed",
		logging.StringField("kind", ctx.Kind.String()),
		logging.StringField("diagnostic", msg),
	)

	if s.Termination == TerminateExit {
		fmt.Fprintln(s.Output, msg)
		osExit(1)
	}
	panic(&Failure{Context: ctx})
}
