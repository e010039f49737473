package readme

import "fmt"

// Error reports why a document was not accepted as a readme.
type Error struct {
	Line    int    // 1-based line number, 0 if unknown
	Message string // Primary error message
	Err     error  // Sentinel the error wraps
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("readme error (line %d): %s", e.Line, e.Message)
	}
	return "readme error: " + e.Message
}

// Unwrap returns the sentinel error so errors.Is works on Error.
func (e *Error) Unwrap() error {
	return e.Err
}
