// Package archive provides wppkg.Archive implementations.
//
// Implementations:
//   - ZipArchive: Production implementation reading a .zip package
//   - DirectoryArchive: An unpacked package directory on disk
//   - MemoryArchive: In-memory implementation for testing
//
// Entry names are always slash-separated and rooted at the package's
// top-level directory, e.g. "akismet/akismet.php", so that every
// implementation looks the same to the scanner.
package archive
