package metadata

import "github.com/vvka-141/wppkg/pkg/wppkg"

// Validate applies the rule shared by every package type: a header without a
// name does not describe a package.
//
// Returns a *HeaderError wrapping wppkg.ErrInvalidTypeHeader when the name is
// empty, nil otherwise.
func Validate(record Record, fileName string) error {
	if record.Get(wppkg.KeyName) == "" {
		return &HeaderError{
			File:    fileName,
			Field:   wppkg.KeyName,
			Message: "header has no name",
			Hint:    "A plugin main file needs a \"Plugin Name:\" line and a theme style.css a \"Theme Name:\" line.",
			Err:     wppkg.ErrInvalidTypeHeader,
		}
	}
	return nil
}
