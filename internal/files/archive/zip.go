package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// zipEntry implements wppkg.Entry for a member of a zip file
type zipEntry struct {
	file *zip.File
}

func (e *zipEntry) Name() string { return e.file.Name }

func (e *zipEntry) ReadContent() ([]byte, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.file.Name, err)
	}
	return data, nil
}

// ZipArchive implements wppkg.Archive over a zip file on disk.
type ZipArchive struct {
	reader  *zip.ReadCloser
	entries []*zipEntry
}

// OpenZip opens the zip file at path. Entries keep the order of the zip's
// central directory.
func OpenZip(path string) (*ZipArchive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip %s: %w", path, err)
	}

	entries := make([]*zipEntry, len(r.File))
	for i, f := range r.File {
		entries[i] = &zipEntry{file: f}
	}
	return &ZipArchive{reader: r, entries: entries}, nil
}

func (a *ZipArchive) Len() int { return len(a.entries) }

func (a *ZipArchive) Entry(i int) wppkg.Entry { return a.entries[i] }

func (a *ZipArchive) Close() error {
	return a.reader.Close()
}

var _ wppkg.Archive = (*ZipArchive)(nil)
