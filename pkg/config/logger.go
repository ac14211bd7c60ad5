package config

import "digital.vasic.check/pkg/logging"

// newFailureLogger builds the console logger attached when
// log_failures is enabled. Split out so tests can cover the
// shape without going through Apply.
func newFailureLogger(verbose bool) logging.Logger {
	l := logging.NewConsoleLogger(verbose)
	return l.WithFields(
		logging.StringField("component", "check"),
	)
}
