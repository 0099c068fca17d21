// Package debug provides optional file-based debug logging.
//
// When the BLOCKS_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op so the
// library imposes no logging cost or dependency on its hosts.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	opened  bool
)

// Logf writes a timestamped message to the debug log, if enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		opened = true
		path := os.Getenv("BLOCKS_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		logFile = f
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	opened = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
