package wppkg

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Extraction completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or flags
	ExitInvalidSource    = 11 // Package path missing, unreadable or not a zip
	ExitUndeterminedType = 12 // No plugin or theme header found
	ExitNotReadme        = 13 // Standalone readme failed to parse
	ExitInvalidHeader    = 14 // Standalone header file has no name
)

// Well-known entry names inside a package.
const (
	// StyleSheetName is the theme's main stylesheet carrying the theme header.
	StyleSheetName = "style.css"

	// ReadmeName is the structured readme shipped alongside the package.
	ReadmeName = "readme.txt"

	// CodeExtension is the extension of files that may carry a plugin header.
	CodeExtension = "php"

	// ArchiveExtension is the only accepted package file extension.
	ArchiveExtension = ".zip"
)
