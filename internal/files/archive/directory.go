package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// dirEntry implements wppkg.Entry for a file of an unpacked package
type dirEntry struct {
	absPath string
	name    string
}

func (e *dirEntry) Name() string { return e.name }

func (e *dirEntry) ReadContent() ([]byte, error) {
	return os.ReadFile(e.absPath)
}

// DirectoryArchive implements wppkg.Archive over an unpacked package
// directory. The directory itself plays the role of the top-level folder
// of a zip, so its base name becomes the slug.
type DirectoryArchive struct {
	root    string
	entries []*dirEntry
}

// OpenDirectory walks path and collects its regular files in lexical order.
func OpenDirectory(path string) (*DirectoryArchive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	parent := filepath.Dir(absPath)

	var entries []*dirEntry
	err = filepath.WalkDir(absPath, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(parent, p)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}
		entries = append(entries, &dirEntry{absPath: p, name: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	return &DirectoryArchive{root: absPath, entries: entries}, nil
}

// Root returns the absolute path of the package directory.
func (a *DirectoryArchive) Root() string { return a.root }

func (a *DirectoryArchive) Len() int { return len(a.entries) }

func (a *DirectoryArchive) Entry(i int) wppkg.Entry { return a.entries[i] }

// Close is a no-op; files are opened per read.
func (a *DirectoryArchive) Close() error { return nil }

var _ wppkg.Archive = (*DirectoryArchive)(nil)
