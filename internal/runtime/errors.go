package runtime

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	sderrors "github.com/manav03panchal/stardeck/internal/errors"
)

// ErrDiskFull reports that the database could not be written for lack of space.
var ErrDiskFull = errors.New("disk full: unable to write to database")

const diskFullSuggestion = "Free up disk space and try again. Nothing was saved."

// FormatError formats an error with its category prefix and suggestion.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if IsDiskFullError(err) {
		return err.Error() + "\n\n" + diskFullSuggestion
	}
	return sderrors.FormatByCategory(err)
}

// Suggestion returns the suggestion for err, if any.
func Suggestion(err error) string {
	if IsDiskFullError(err) {
		return diskFullSuggestion
	}
	return sderrors.GetSuggestion(err)
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	switch sderrors.Classify(err) {
	case sderrors.CategoryUser:
		return 2
	default:
		return 1
	}
}

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "write", "sync")
	Path    string // The path involved, if known
	wrapped error  // The underlying error
}

func (e *DiskFullError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Path, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

func (e *DiskFullError) Unwrap() error {
	return ErrDiskFull
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, path string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Path:    path,
		wrapped: err,
	}
}

var diskFullPatterns = []string{
	"no space left on device",
	"disk full",
	"enospc",
	"not enough space",
}

// IsDiskFullError checks if an error indicates a disk full condition.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	var diskFullErr *DiskFullError
	if errors.As(err, &diskFullErr) || errors.Is(err, ErrDiskFull) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	// Badger reports some write failures only as text.
	errStr := strings.ToLower(err.Error())
	for _, pattern := range diskFullPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// WrapDiskFullError wraps an error as a DiskFullError if it indicates disk full.
// If the error is not a disk full error, it returns the original error unchanged.
func WrapDiskFullError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		return NewDiskFullError(op, path, err)
	}
	return err
}
