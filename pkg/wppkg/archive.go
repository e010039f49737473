package wppkg

// Entry is a single member of a package archive.
type Entry interface {
	// Name returns the slash-separated path of the entry inside the archive.
	Name() string

	// ReadContent returns the entry's uncompressed content.
	ReadContent() ([]byte, error)
}

// Archive gives indexed access to the entries of an opened package.
// Implementations are expected to have validated that the package opens.
type Archive interface {
	// Len returns the number of entries.
	Len() int

	// Entry returns the entry at index i, 0 <= i < Len().
	Entry(i int) Entry

	// Close releases any underlying resources.
	Close() error
}

// Renderer converts readme markdown into HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}
