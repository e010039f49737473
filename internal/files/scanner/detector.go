package scanner

import (
	"fmt"
	"path"

	"github.com/vvka-141/wppkg/internal/metadata"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// HeaderFunc parses the header of the given kind from a file's content.
type HeaderFunc func(kind wppkg.PackageType, fileName string, content []byte) (wppkg.Metadata, error)

// ParseHeader is the default HeaderFunc backed by the metadata package.
func ParseHeader(kind wppkg.PackageType, fileName string, content []byte) (wppkg.Metadata, error) {
	switch kind {
	case wppkg.TypePlugin:
		return metadata.ParsePlugin(string(content), fileName)
	case wppkg.TypeTheme:
		return metadata.ParseTheme(string(content), fileName)
	default:
		return nil, fmt.Errorf("no header format for package type %q", kind)
	}
}

// DetectType decides the package type from a single entry.
//
// A style.css with a valid theme header means theme; otherwise a .php file
// with a valid plugin header means plugin. Anything else is undetermined.
func DetectType(fileName string, content []byte, parse HeaderFunc) wppkg.PackageType {
	base := path.Base(fileName)

	if base == wppkg.StyleSheetName {
		if _, err := parse(wppkg.TypeTheme, fileName, content); err == nil {
			return wppkg.TypeTheme
		}
	}

	if isCodeFile(base) {
		if _, err := parse(wppkg.TypePlugin, fileName, content); err == nil {
			return wppkg.TypePlugin
		}
	}

	return wppkg.TypeUndetermined
}

func isCodeFile(base string) bool {
	return path.Ext(base) == "."+wppkg.CodeExtension
}
