package check

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.check/pkg/logging"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, TerminatePanic, s.Termination)
	assert.Equal(t, os.Stderr, s.Output)
	assert.Equal(t, logging.NullLogger{}, s.Logger)
}

func TestConfigureFillsZeroValues(t *testing.T) {
	Configure(Settings{Termination: TerminateExit})
	defer Configure(DefaultSettings())

	s := currentSettings()
	assert.Equal(t, TerminateExit, s.Termination)
	assert.Equal(t, os.Stderr, s.Output)
	assert.Equal(t, logging.NullLogger{}, s.Logger)
}

func TestConfigureConcurrentAccess(t *testing.T) {
	defer Configure(DefaultSettings())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Configure(DefaultSettings())
		}()
		go func() {
			defer wg.Done()
			_ = currentSettings()
		}()
	}
	wg.Wait()

	assert.Equal(
		t, TerminatePanic, currentSettings().Termination,
	)
}
