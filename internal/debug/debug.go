package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "PROFILE_DEBUG"

var (
	logFile  *os.File
	mu       sync.Mutex
	envOnce  sync.Once
	disabled bool
)

// Init opens path for appending and routes every later Log call there.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	disabled = false
	return nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	initFromEnv()
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	initFromEnv()

	mu.Lock()
	defer mu.Unlock()

	if logFile == nil || disabled {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}

// initFromEnv opens the PROFILE_DEBUG file the first time logging is used.
// A bad path disables logging rather than failing the caller.
func initFromEnv() {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if logFile != nil {
			return
		}
		if err := initLocked(path); err != nil {
			disabled = true
		}
	})
}
