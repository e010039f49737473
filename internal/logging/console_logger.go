package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// ConsoleLogger writes plain-text log lines, to stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to out.
func NewConsoleLoggerTo(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, out: out}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}

// Verify ConsoleLogger implements the interface at compile time
var _ wppkg.Logger = (*ConsoleLogger)(nil)
