// Package env reads configuration from the process environment,
// with optional .env file support. The config package uses it to
// resolve CHECK_* reporter overrides.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable access.
type Loader interface {
	// Load reads variables from a .env-style file.
	Load(filepath string) error
	// Get retrieves a variable value, OS environment first.
	Get(key string) string
	// GetRequired retrieves a variable or returns an error if
	// it is unset.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves a variable with a fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool interprets a variable as a boolean; unset or
	// unparseable values return the fallback.
	GetBool(key string, defaultValue bool) bool
	// Set sets a variable.
	Set(key, value string) error
	// All returns all file-loaded variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support. OS
// environment variables take precedence over file values.
type DefaultLoader struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewLoader creates an empty DefaultLoader.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars: make(map[string]string),
	}
}

// Load reads KEY=VALUE lines from a .env-style file. Blank lines
// and lines starting with # are skipped; surrounding quotes on
// values are stripped.
func (l *DefaultLoader) Load(filepath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", filepath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	return scanner.Err()
}

// Get retrieves a variable value. The OS environment takes
// precedence over file-loaded values.
func (l *DefaultLoader) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

// GetRequired retrieves a variable or errors if it is unset.
func (l *DefaultLoader) GetRequired(key string) (string, error) {
	v := l.Get(key)
	if v == "" {
		return "", fmt.Errorf(
			"required environment variable %s is not set", key,
		)
	}
	return v, nil
}

// GetWithDefault retrieves a variable with a fallback.
func (l *DefaultLoader) GetWithDefault(
	key, defaultValue string,
) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

// GetBool interprets a variable as a boolean via
// strconv.ParseBool. Unset or unparseable values return the
// fallback.
func (l *DefaultLoader) GetBool(
	key string, defaultValue bool,
) bool {
	v := l.Get(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

// Set sets a variable in both the loader and the OS
// environment.
func (l *DefaultLoader) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
	return os.Setenv(key, value)
}

// All returns a copy of all file-loaded variables.
func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
