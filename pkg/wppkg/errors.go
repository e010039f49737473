package wppkg

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure kinds of an extraction.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	pkg, err := extract.FromFile("akismet.zip")
//	if errors.Is(err, wppkg.ErrUndeterminedType) {
//	    // not a WordPress package
//	}
var (
	// ErrInvalidPackageSource indicates the package path is missing,
	// unreadable, has the wrong extension, or does not open as an archive.
	ErrInvalidPackageSource = errors.New("invalid package source")

	// ErrNotStructuredDocument indicates a readme whose first line is not a
	// "=== Title ===" line.
	ErrNotStructuredDocument = errors.New("not a structured readme")

	// ErrInvalidTypeHeader indicates a candidate header file without a name.
	ErrInvalidTypeHeader = errors.New("invalid package header")

	// ErrUndeterminedType indicates no file in the package yields a valid
	// plugin or theme header.
	ErrUndeterminedType = errors.New("package type could not be determined")

	// ErrMissingHeaders indicates the type is known (usually forced) but no
	// file carries a valid header of that type.
	ErrMissingHeaders = errors.New("no valid package header found")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are prefixes of errors produced by cobra/pflag argument
// validation.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidPackageSource):
		return ExitInvalidSource
	case errors.Is(err, ErrUndeterminedType), errors.Is(err, ErrMissingHeaders):
		return ExitUndeterminedType
	case errors.Is(err, ErrNotStructuredDocument):
		return ExitNotReadme
	case errors.Is(err, ErrInvalidTypeHeader):
		return ExitInvalidHeader
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
