package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var l Logger = NullLogger{}

	assert.NotPanics(t, func() {
		l.Debug("a", StringField("k", "v"))
		l.Info("b")
		l.Warn("c")
		l.Error("d", ErrorField(nil))
	})
}

func TestNullLoggerWithFields(t *testing.T) {
	var l Logger = NullLogger{}
	assert.Equal(t, NullLogger{}, l.WithFields(IntField("n", 1)))
}
