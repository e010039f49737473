// Package files groups package access and scanning into sub-packages.
//
//   - archive: wppkg.Archive implementations (zip, directory, in-memory)
//   - loader: package source validation and opening
//   - scanner: type detection, header/readme parsing and merging
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/wppkg/internal/files/loader"
//	    "github.com/vvka-141/wppkg/internal/files/scanner"
//	)
//
//	src, err := loader.NewLoader(checksum.New()).Open("akismet.zip")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	s := scanner.NewScanner(markdown.New(), logging.NewNullLogger())
//	pkg, err := s.Scan(src.Archive, wppkg.DefaultOptions())
package files
