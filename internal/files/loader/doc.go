// Package loader validates a package source path and opens it as a
// wppkg.Archive.
//
// The loader package is responsible for:
//   - Checking the path exists and is readable
//   - Accepting .zip files and unpacked package directories only
//   - Computing the SHA-256 of zip sources
//
// Every rejection wraps wppkg.ErrInvalidPackageSource.
package loader
