package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

var (
	sessionOnce sync.Once
	sessionID   string
)

// SessionID returns an identifier for this process, attached to every log
// line so interleaved runs can be told apart in the log file.
func SessionID() string {
	sessionOnce.Do(func() {
		id, err := uuid.NewV7()
		if err != nil {
			sessionID = uuid.NewString()
			return
		}
		sessionID = id.String()
	})
	return sessionID
}

// LogPath returns the dashboard log file path.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "stardeck", "dashboard.log")
}

// OpenLogFile opens path for appending, creating parent directories.
// The dashboard logs here because the terminal is owned by the UI.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
