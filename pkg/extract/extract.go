// Package extract is the one-call API for reading WordPress package metadata.
//
//	pkg, err := extract.FromFile("akismet.zip")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pkg.Type, pkg.Slug, pkg.Version())
package extract

import (
	"fmt"

	"github.com/vvka-141/wppkg/internal/checksum"
	"github.com/vvka-141/wppkg/internal/files/loader"
	"github.com/vvka-141/wppkg/internal/files/scanner"
	"github.com/vvka-141/wppkg/internal/logging"
	"github.com/vvka-141/wppkg/internal/markdown"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

type settings struct {
	opts     wppkg.Options
	logger   wppkg.Logger
	renderer wppkg.Renderer
}

// Option customises an extraction.
type Option func(*settings)

// WithType forces the package type instead of detecting it.
func WithType(t wppkg.PackageType) Option {
	return func(s *settings) { s.opts.Type = t }
}

// WithoutReadme skips readme.txt and stops at the first valid header.
func WithoutReadme() Option {
	return func(s *settings) { s.opts.ParseReadme = false }
}

// WithOptions replaces the scan options wholesale.
func WithOptions(opts wppkg.Options) Option {
	return func(s *settings) { s.opts = opts }
}

// WithLogger sets the logger. Defaults to a NullLogger.
func WithLogger(l wppkg.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRenderer sets the readme section renderer. Defaults to the
// sanitising markdown renderer.
func WithRenderer(r wppkg.Renderer) Option {
	return func(s *settings) {
		if r != nil {
			s.renderer = r
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{opts: wppkg.DefaultOptions()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNullLogger()
	}
	if s.renderer == nil {
		s.renderer = markdown.New()
	}
	return s
}

// FromFile opens a .zip package or an unpacked package directory and
// extracts its metadata. Source and Checksum are filled in on success.
func FromFile(path string, opts ...Option) (*wppkg.Package, error) {
	s := newSettings(opts)

	src, err := loader.NewLoader(checksum.New()).Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			s.logger.Error("Failed to close %s: %v", path, cerr)
		}
	}()

	pkg, err := scan(src.Archive, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pkg.Source = src.Path
	pkg.Checksum = src.Checksum
	return pkg, nil
}

// FromArchive extracts metadata from an already opened archive.
// The caller keeps ownership of a and must close it.
func FromArchive(a wppkg.Archive, opts ...Option) (*wppkg.Package, error) {
	return scan(a, newSettings(opts))
}

func scan(a wppkg.Archive, s *settings) (*wppkg.Package, error) {
	return scanner.NewScanner(s.renderer, s.logger).Scan(a, s.opts)
}
