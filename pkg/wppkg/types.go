package wppkg

import (
	"errors"
	"fmt"
)

// PackageType identifies which header format a package uses.
// The zero value means the type has not been determined.
type PackageType string

const (
	// TypeUndetermined means no file has fixed the type yet.
	TypeUndetermined PackageType = ""

	// TypePlugin is a package whose main PHP file carries a plugin header.
	TypePlugin PackageType = "plugin"

	// TypeTheme is a package whose style.css carries a theme header.
	TypeTheme PackageType = "theme"
)

// ParsePackageType converts user input into a PackageType.
// An empty string or "auto" yields TypeUndetermined (auto-detect).
func ParsePackageType(s string) (PackageType, error) {
	switch s {
	case "", "auto":
		return TypeUndetermined, nil
	case string(TypePlugin):
		return TypePlugin, nil
	case string(TypeTheme):
		return TypeTheme, nil
	default:
		return TypeUndetermined, fmt.Errorf("unknown package type %q (expected plugin, theme or auto): %w", s, ErrInvalidConfig)
	}
}

// Options controls a single extraction pass.
type Options struct {
	// ParseReadme enables reading readme.txt. When false, scanning stops at the
	// first file that yields a valid header.
	ParseReadme bool

	// Type forces the package type and skips detection when set.
	Type PackageType
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{ParseReadme: true}
}

// Validate checks that the options hold known values.
func (o Options) Validate() error {
	var errs []error
	switch o.Type {
	case TypeUndetermined, TypePlugin, TypeTheme:
	default:
		errs = append(errs, fmt.Errorf("type %q is not a package type: %w", o.Type, ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// Package is the result of a successful extraction.
type Package struct {
	Type     PackageType `json:"type" yaml:"type"`
	Slug     string      `json:"slug" yaml:"slug"`
	Metadata Metadata    `json:"metadata" yaml:"metadata"`

	// Source is the path the package was opened from, if any.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Checksum is the SHA-256 of the source archive. Empty for directories
	// and in-memory archives.
	Checksum string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
}

// Name returns the package's display name.
func (p *Package) Name() string {
	return p.Metadata.String(KeyName)
}

// Version returns the package's version header.
func (p *Package) Version() string {
	return p.Metadata.String(KeyVersion)
}
