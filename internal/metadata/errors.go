package metadata

import "fmt"

// HeaderError describes why a file's header was rejected.
// It includes the file name, the offending field and an actionable hint.
type HeaderError struct {
	File    string // File name the header was read from
	Field   string // Semantic key of the offending field, if any
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
	Err     error  // Sentinel the error wraps
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	location := e.File
	if location == "" {
		location = "<input>"
	}

	msg := fmt.Sprintf("header error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("header error in %s [field: %s]: %s", location, e.Field, e.Message)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap returns the sentinel error so errors.Is works on HeaderError.
func (e *HeaderError) Unwrap() error {
	return e.Err
}
