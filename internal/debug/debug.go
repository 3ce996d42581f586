// Package debug prints opt-in diagnostic output to stderr.
//
// repoinit traces every external invocation (git, gh, HTTP endpoints)
// through this package when --debug is set.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug output
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// SetNoColor disables colored debug output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// IsEnabled returns whether debug output is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Debug prints a timestamped debug message
func Debug(format string, args ...interface{}) {
	mu.RLock()
	on, useColor := enabled, !noColor
	mu.RUnlock()
	if !on {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if useColor {
		fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s\n", timestamp, msg)
	}
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	Debug("%s = %v", key, value)
}
