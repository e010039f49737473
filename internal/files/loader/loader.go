package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/wppkg/internal/checksum"
	"github.com/vvka-141/wppkg/internal/files/archive"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// Source is an opened package ready to be scanned.
type Source struct {
	Archive  wppkg.Archive
	Path     string
	Checksum string
}

// Close releases the underlying archive.
func (s *Source) Close() error {
	return s.Archive.Close()
}

// Loader opens package sources.
type Loader struct {
	checksum checksum.Calculator
}

// NewLoader creates a loader using the given checksum calculator.
func NewLoader(calc checksum.Calculator) *Loader {
	if calc == nil {
		panic("checksum calculator cannot be nil")
	}
	return &Loader{checksum: calc}
}

// Open validates path and opens it. Directories are opened as unpacked
// packages; regular files must carry the .zip extension.
func (l *Loader) Open(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("package path is empty: %w", wppkg.ErrInvalidPackageSource)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %v: %w", path, err, wppkg.ErrInvalidPackageSource)
	}

	if info.IsDir() {
		dir, err := archive.OpenDirectory(path)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, wppkg.ErrInvalidPackageSource)
		}
		return &Source{Archive: dir, Path: path}, nil
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file: %w", path, wppkg.ErrInvalidPackageSource)
	}
	if !strings.EqualFold(filepath.Ext(path), wppkg.ArchiveExtension) {
		return nil, fmt.Errorf("%s: expected a %s file: %w", path, wppkg.ArchiveExtension, wppkg.ErrInvalidPackageSource)
	}

	sum, err := l.checksum.CalculateFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s is not readable: %v: %w", path, err, wppkg.ErrInvalidPackageSource)
	}

	zr, err := archive.OpenZip(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, wppkg.ErrInvalidPackageSource)
	}

	return &Source{Archive: zr, Path: path, Checksum: sum}, nil
}
