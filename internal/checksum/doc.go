// Package checksum provides package content hashing.
//
// The SHA-256 of a package archive is reported next to its metadata so that
// registries can pin exactly the bytes they inspected.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum, err := calculator.CalculateFile("akismet.zip")
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
