// Package metadata parses WordPress file headers: the "Label: value" block
// at the top of a plugin's main PHP file or a theme's style.css.
//
// # Header Format
//
// Headers live in a leading comment and may appear in any order:
//
//	<?php
//	/**
//	 * Plugin Name: Hello Dolly
//	 * Version:     1.7.2
//	 * Author:      Matt Mullenweg
//	 * Network:     true
//	 */
//
// Matching follows the rules WordPress itself applies: labels are matched
// case-insensitively at the start of a line, after an optional "<?php" and
// any run of spaces, tabs or comment characters (/ * # @). The value is
// everything after the colon, minus a trailing "*/" or "?>", trimmed.
//
// # Parsing
//
// ParseHeaders is the generic step: given content and a LabelMap it returns
// a Record with one field per label, in label order, "" when absent.
// ParsePlugin and ParseTheme apply the fixed label maps, convert typed
// fields and reject headers without a name:
//
//	headers, err := metadata.ParsePlugin(content, "hello.php")
//	if errors.Is(err, wppkg.ErrInvalidTypeHeader) {
//	    // not a plugin main file
//	}
//
// # Package Structure
//
//   - types.go: Label, LabelMap, Field and Record
//   - extractor.go: generic header scanning
//   - plugin.go, theme.go: label maps and per-type post-processing
//   - validator.go: the shared name rule
//   - errors.go: HeaderError with hints
package metadata
