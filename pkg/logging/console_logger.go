package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// ConsoleLogger writes human-readable log lines to a single
// destination, stderr by default so records share the channel
// assertion diagnostics go to.
type ConsoleLogger struct {
	mu      sync.Mutex
	output  io.Writer
	verbose bool
	color   bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to stderr
// with color enabled. When verbose is true, debug messages are
// emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		output:  os.Stderr,
		verbose: verbose,
		color:   true,
		fields:  make(map[string]any),
	}
}

// SetOutput redirects log output to w.
func (c *ConsoleLogger) SetOutput(w io.Writer) {
	c.mu.Lock()
	c.output = w
	c.mu.Unlock()
}

// SetColor enables or disables ANSI color codes.
func (c *ConsoleLogger) SetColor(enabled bool) {
	c.mu.Lock()
	c.color = enabled
	c.mu.Unlock()
}

func (c *ConsoleLogger) log(
	level LogLevel, levelColor, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")

	merged := make([]Field, 0, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged = append(merged, Field{Key: k, Value: v})
	}
	merged = append(merged, fields...)

	var fieldStr string
	if len(merged) > 0 {
		parts := make([]string, 0, len(merged))
		for _, f := range merged {
			parts = append(
				parts,
				fmt.Sprintf("%s=%v", f.Key, f.Value),
			)
		}
		fieldStr = fmt.Sprintf(
			" {%s}", strings.Join(parts, ", "),
		)
		if c.color {
			fieldStr = " " + colorGray +
				strings.TrimPrefix(fieldStr, " ") + colorReset
		}
	}

	if c.color {
		fmt.Fprintf(
			c.output, "%s%s%s [%s%-5s%s] %s%s\n",
			colorGray, ts, colorReset,
			levelColor, level.String(), colorReset,
			msg, fieldStr,
		)
		return
	}

	fmt.Fprintf(
		c.output, "%s [%-5s] %s%s\n",
		ts, level.String(), msg, fieldStr,
	)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, colorGray, msg, fields...)
	}
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, colorBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, colorYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, colorRed, msg, fields...)
}

// WithFields returns a new Logger with additional default
// fields.
func (c *ConsoleLogger) WithFields(fields ...Field) Logger {
	c.mu.Lock()
	defer c.mu.Unlock()

	newFields := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		output:  c.output,
		verbose: c.verbose,
		color:   c.color,
		fields:  newFields,
	}
}
