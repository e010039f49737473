package archive

import (
	"path"
	"path/filepath"
	"sync"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// memoryEntry implements wppkg.Entry for in-memory content
type memoryEntry struct {
	name    string
	content []byte
	err     error
	owner   *MemoryArchive
}

func (e *memoryEntry) Name() string { return e.name }

func (e *memoryEntry) ReadContent() ([]byte, error) {
	e.owner.recordRead(e.name)
	if e.err != nil {
		return nil, e.err
	}
	return e.content, nil
}

// MemoryArchive implements wppkg.Archive for in-memory testing.
// Entries keep insertion order and every read is counted.
type MemoryArchive struct {
	entries []*memoryEntry
	reads   map[string]int
	closed  bool
	mu      sync.Mutex
}

// NewMemoryArchive creates an empty in-memory archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{reads: make(map[string]int)}
}

// Add appends an entry. The name is normalized to forward slashes.
func (a *MemoryArchive) Add(name, content string) *MemoryArchive {
	a.entries = append(a.entries, &memoryEntry{
		name:    normalizeName(name),
		content: []byte(content),
		owner:   a,
	})
	return a
}

// AddUnreadable appends an entry whose ReadContent fails with err.
func (a *MemoryArchive) AddUnreadable(name string, err error) *MemoryArchive {
	a.entries = append(a.entries, &memoryEntry{
		name:  normalizeName(name),
		err:   err,
		owner: a,
	})
	return a
}

// Reads returns how many times the named entry's content was read.
func (a *MemoryArchive) Reads(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reads[name]
}

// Closed reports whether Close has been called.
func (a *MemoryArchive) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func (a *MemoryArchive) Len() int { return len(a.entries) }

func (a *MemoryArchive) Entry(i int) wppkg.Entry { return a.entries[i] }

func (a *MemoryArchive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

func (a *MemoryArchive) recordRead(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reads[name]++
}

// normalizeName converts to forward slashes (virtual filesystem convention).
// Directory entries keep their trailing slash, as in a zip.
func normalizeName(name string) string {
	name = filepath.ToSlash(name)
	if name == "" {
		return name
	}
	if name[len(name)-1] == '/' {
		return path.Clean(name) + "/"
	}
	return path.Clean(name)
}

var _ wppkg.Archive = (*MemoryArchive)(nil)
