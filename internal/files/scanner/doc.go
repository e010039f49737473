// Package scanner walks a package archive and assembles its metadata.
//
// The scanner package is responsible for:
//   - Detecting whether a package is a plugin or a theme
//   - Parsing plugin/theme headers and the readme.txt of the package
//   - Merging readme fields with header fields (headers win)
//
// Each Scan call owns its parse caches; nothing is shared between passes.
// The scanner is archive-agnostic through the wppkg.Archive interface,
// enabling both production use with zip files and testing with in-memory
// archives.
package scanner
