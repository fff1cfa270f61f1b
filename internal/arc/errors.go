package arc

import (
	"errors"
	"fmt"
)

// Domain errors for loading and rendering tasks.
var (
	// ErrNoRecords indicates a dataset directory without any matching files.
	ErrNoRecords = errors.New("arc: no records found in dataset directory")

	// ErrNotMapping indicates a record whose top-level value is not a JSON object.
	ErrNotMapping = errors.New("arc: record is not a keyed mapping")

	// ErrColorOutOfRange indicates a cell value outside the palette.
	ErrColorOutOfRange = errors.New("arc: cell value outside palette range 0-9")

	// ErrInvalidEncoding indicates a task file that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("arc: task file is not valid utf-8")

	// ErrEmptyGrid indicates a grid without rows.
	ErrEmptyGrid = errors.New("arc: grid has no rows")
)

// Severity separates errors that end the program from ones the user may override.
type Severity int

const (
	Fatal Severity = iota
	Advisory
)

func (s Severity) String() string {
	switch s {
	case Advisory:
		return "advisory"
	default:
		return "fatal"
	}
}

// LoadError wraps a loader failure with the file or directory it concerns.
// Index is the record position for per-record errors and -1 otherwise.
type LoadError struct {
	Severity Severity
	Path     string
	Index    int
	Wrapped  error
}

func (e *LoadError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: record %d (%s): %v", e.Severity, e.Index, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s: %v", e.Severity, e.Path, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

// IsAdvisory reports whether err carries an advisory LoadError.
func IsAdvisory(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Severity == Advisory
	}
	return false
}
