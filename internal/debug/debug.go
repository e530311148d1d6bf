// Package debug writes diagnostic messages to a rotating log file.
// The TUI owns the terminal, so diagnostics never go to stderr while
// it runs. Logging is off until a path is set, either through
// CATWALK_DEBUG_LOG or the debug-log config key.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu  sync.Mutex
	out io.Writer
)

func init() {
	if path := os.Getenv("CATWALK_DEBUG_LOG"); path != "" {
		SetFile(path)
	}
}

// SetFile routes diagnostics to a rotating file at path.
func SetFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	out = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
}

// Enabled reports whether diagnostics have a destination.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Writer returns an io.Writer feeding the debug log. Writes are
// dropped until a log file is configured.
func Writer() io.Writer {
	return writer{}
}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	Logf("%s", p)
	return len(p), nil
}

// Logf writes one formatted diagnostic message. A no-op until a log
// file is configured.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	fmt.Fprintf(out, format, args...)
}
