package check

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.check/pkg/logging"
)

func TestFailureContextRender(t *testing.T) {
	tests := []struct {
		name string
		ctx  FailureContext
		want string
	}{
		{
			"comparison without message",
			FailureContext{
				Kind:     KindGt,
				LHSLabel: "smaller",
				RHSLabel: "larger",
				LHSDebug: "2",
				RHSDebug: "3",
			},
			"assertion failed: `smaller > larger`\n" +
				"smaller: `2`,\nlarger: `3`",
		},
		{
			"comparison with message",
			FailureContext{
				Kind:     KindGt,
				LHSLabel: "smaller",
				RHSLabel: "larger",
				LHSDebug: "2",
				RHSDebug: "3",
				Message:  "broken, because foo",
			},
			"assertion failed: `smaller > larger`\n" +
				"smaller: `2`,\nlarger: `3`: broken, because foo",
		},
		{
			"match omits the value line for the pattern",
			FailureContext{
				Kind:     KindMatch,
				LHSLabel: "None",
				RHSLabel: "val",
				RHSDebug: "Some(100)",
			},
			"assertion failed: `None = val`\n" +
				"val: `Some(100)`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ctx.Render()
			assert.Equal(t, tt.want, got)
			// Byte-identical on re-render.
			assert.Equal(t, got, tt.ctx.Render())
		})
	}
}

func TestFailureErrorIsRenderedDiagnostic(t *testing.T) {
	f := &Failure{Context: FailureContext{
		Kind:     KindEq,
		LHSLabel: "a",
		RHSLabel: "b",
		LHSDebug: "1",
		RHSDebug: "2",
	}}

	assert.Equal(t, f.Context.Render(), f.Error())
}

func TestExitTermination(t *testing.T) {
	var buf bytes.Buffer
	Configure(Settings{
		Termination: TerminateExit,
		Output:      &buf,
	})
	defer Configure(DefaultSettings())

	exitCode := -1
	oldExit := osExit
	osExit = func(code int) {
		exitCode = code
		// The real osExit never returns; the stub lets report
		// fall through to its panic so the test regains
		// control.
	}
	defer func() { osExit = oldExit }()

	assert.Panics(t, func() {
		That(V("smaller", 2), ">", V("larger", 3))
	})

	assert.Equal(t, 1, exitCode)
	assert.Equal(
		t,
		"assertion failed: `smaller > larger`\n"+
			"smaller: `2`,\nlarger: `3`\n",
		buf.String(),
	)
}

// recordingLogger captures Error calls for inspection.
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	fields  [][]logging.Field
}

func (r *recordingLogger) Debug(string, ...logging.Field) {}
func (r *recordingLogger) Info(string, ...logging.Field)  {}
func (r *recordingLogger) Warn(string, ...logging.Field)  {}

func (r *recordingLogger) Error(
	msg string, fields ...logging.Field,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, msg)
	r.fields = append(r.fields, fields)
}

func (r *recordingLogger) WithFields(
	...logging.Field,
) logging.Logger {
	return r
}

func TestFailureIsLoggedBeforeTermination(t *testing.T) {
	rec := &recordingLogger{}
	Configure(Settings{Logger: rec})
	defer Configure(DefaultSettings())

	assert.Panics(t, func() {
		That(V("foo", 42), "!=", V("bar", 42))
	})

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "assertion failed", rec.entries[0])

	byKey := map[string]any{}
	for _, f := range rec.fields[0] {
		byKey[f.Key] = f.Value
	}
	assert.Equal(t, "ne", byKey["kind"])
	assert.Equal(
		t,
		"assertion failed: `foo != bar`\n"+
			"foo: `42`,\nbar: `42`",
		byKey["diagnostic"],
	)
}

func TestNothingLoggedOnSuccess(t *testing.T) {
	rec := &recordingLogger{}
	Configure(Settings{Logger: rec})
	defer Configure(DefaultSettings())

	That(V("larger", 3), ">", V("smaller", 2))
	Match(P("Some(_)", isSome), V("val", some(1)))

	assert.Empty(t, rec.entries)
}
