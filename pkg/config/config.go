// Package config materializes reporter settings for the check
// package from a YAML file and CHECK_* environment overrides.
// Configuration only changes how a failure is reported and
// terminated; it never changes whether a check passes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"digital.vasic.check/pkg/check"
	"digital.vasic.check/pkg/env"
)

// Environment variable names recognized by FromEnv.
const (
	// EnvTermination overrides the termination mode
	// ("panic" or "exit").
	EnvTermination = "CHECK_TERMINATION"

	// EnvLogFailures enables structured logging of failures.
	EnvLogFailures = "CHECK_LOG_FAILURES"

	// EnvVerbose enables debug-level logger output.
	EnvVerbose = "CHECK_VERBOSE"
)

// File is the YAML shape of a reporter settings file.
type File struct {
	// Termination is "panic" (unwind, the default) or "exit"
	// (print the diagnostic and abort the process).
	Termination string `yaml:"termination"`

	// LogFailures attaches a console logger so every failure
	// is also emitted as a structured record.
	LogFailures bool `yaml:"log_failures"`

	// Verbose enables debug-level output on the attached
	// logger.
	Verbose bool `yaml:"verbose"`
}

// LoadFile reads and parses a YAML settings file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf(
			"read settings file %s: %w", path, err,
		)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf(
			"parse settings file %s: %w", path, err,
		)
	}
	return f, nil
}

// FromEnv builds a File from CHECK_* environment variables,
// using f as the base for anything unset.
func FromEnv(loader env.Loader, f File) File {
	f.Termination = loader.GetWithDefault(
		EnvTermination, f.Termination,
	)
	f.LogFailures = loader.GetBool(
		EnvLogFailures, f.LogFailures,
	)
	f.Verbose = loader.GetBool(EnvVerbose, f.Verbose)
	return f
}

// Settings materializes check.Settings from the file values.
// An unknown termination mode is an error.
func (f File) Settings() (check.Settings, error) {
	s := check.DefaultSettings()

	switch f.Termination {
	case "", "panic":
		s.Termination = check.TerminatePanic
	case "exit":
		s.Termination = check.TerminateExit
	default:
		return check.Settings{}, fmt.Errorf(
			"unknown termination mode %q", f.Termination,
		)
	}

	if f.LogFailures {
		s.Logger = newFailureLogger(f.Verbose)
	}

	return s, nil
}

// Apply materializes and installs the settings process-wide.
func (f File) Apply() error {
	s, err := f.Settings()
	if err != nil {
		return err
	}
	check.Configure(s)
	return nil
}
