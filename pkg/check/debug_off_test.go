//go:build !checkdebug

package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugGateDisabledByDefault(t *testing.T) {
	assert.False(t, Enabled)
}

func TestDebugThatIsNoOpWhenDisabled(t *testing.T) {
	// A relation that would fail hard through That must do
	// nothing through the gate.
	assert.NotPanics(t, func() {
		DebugThat(V("smaller", 2), ">", V("larger", 3))
	})
}

func TestDebugMatchIsNoOpWhenDisabled(t *testing.T) {
	assert.NotPanics(t, func() {
		DebugMatch(P("None", isNone), V("val", some(100)))
	})
}

func TestDebugThatSkipsMessageWhenDisabled(t *testing.T) {
	calls := 0
	expensive := func() string {
		calls++
		return "never"
	}

	DebugThat(V("smaller", 2), ">", V("larger", 3), expensive)
	assert.Equal(t, 0, calls)
}
