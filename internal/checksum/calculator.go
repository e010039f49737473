package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateReader computes a checksum of everything read from r.
	CalculateReader(r io.Reader) (string, error)

	// CalculateFile computes a checksum of the file at path without
	// loading it into memory.
	CalculateFile(path string) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateReader computes SHA-256 of a stream.
func (c SHA256) CalculateReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CalculateFile computes SHA-256 of the file at path.
func (c SHA256) CalculateFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return c.CalculateReader(f)
}

var _ Calculator = SHA256{}
