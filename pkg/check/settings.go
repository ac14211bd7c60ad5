package check

import (
	"io"
	"os"
	"sync"

	"digital.vasic.check/pkg/logging"
)

// Termination selects how the reporter ends the calling
// execution context after rendering a diagnostic. Either way the
// reporter never returns.
type Termination int

const (
	// TerminatePanic unwinds with an error-valued *Failure
	// panic. This is the default.
	TerminatePanic Termination = iota

	// TerminateExit prints the diagnostic to the output writer
	// and aborts the process with status 1.
	TerminateExit
)

// Settings controls how failures are reported. It never affects
// whether a check passes or fails.
type Settings struct {
	// Termination picks unwind (panic) or abort (exit).
	Termination Termination

	// Output receives the diagnostic text in TerminateExit
	// mode. Defaults to os.Stderr.
	Output io.Writer

	// Logger additionally receives every failure as a
	// structured record before termination. Defaults to the
	// null logger.
	Logger logging.Logger
}

// DefaultSettings returns the zero-configuration behavior:
// panic termination, stderr output, no logging.
func DefaultSettings() Settings {
	return Settings{
		Termination: TerminatePanic,
		Output:      os.Stderr,
		Logger:      logging.NullLogger{},
	}
}

var (
	settingsMu sync.RWMutex
	settings   = DefaultSettings()
)

// Configure installs process-wide reporter settings. Zero-value
// fields fall back to their defaults. Safe for concurrent use,
// though typical callers configure once at startup.
func Configure(s Settings) {
	if s.Output == nil {
		s.Output = os.Stderr
	}
	if s.Logger == nil {
		s.Logger = logging.NullLogger{}
	}

	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()
}

// currentSettings snapshots the installed settings.
func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}
