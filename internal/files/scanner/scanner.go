package scanner

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/wppkg/internal/readme"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// Scanner extracts package metadata from archives.
// Scanner holds no per-scan state and is safe for concurrent use by
// multiple goroutines as long as the renderer and logger are.
type Scanner struct {
	readme  *readme.Parser
	headers HeaderFunc
	logger  wppkg.Logger
}

// NewScanner creates a scanner rendering readme sections with renderer.
// Panics if renderer or logger is nil.
func NewScanner(renderer wppkg.Renderer, logger wppkg.Logger) *Scanner {
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		readme:  readme.NewParser(renderer, logger),
		headers: ParseHeader,
		logger:  logger,
	}
}

// pass is the state of one Scan call.
type pass struct {
	id      string
	opts    wppkg.Options
	kind    wppkg.PackageType
	slug    string
	readme  wppkg.Metadata
	headers wppkg.Metadata
	found   bool

	headerCache *Cache[wppkg.Metadata]
	readmeCache *Cache[wppkg.Metadata]
}

// Scan walks the archive once and returns the package it describes.
//
// Returns an error wrapping wppkg.ErrUndeterminedType when no entry reveals
// the package type, and wppkg.ErrMissingHeaders when the type is known but
// no entry carries a valid header for it. Per-entry failures are logged and
// skipped.
func (s *Scanner) Scan(a wppkg.Archive, opts wppkg.Options) (*wppkg.Package, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &pass{
		id:          uuid.NewString(),
		opts:        opts,
		kind:        opts.Type,
		headers:     wppkg.Metadata{},
		headerCache: NewCache[wppkg.Metadata](),
		readmeCache: NewCache[wppkg.Metadata](),
	}
	s.logger.Verbose("scan %s: %d entries, parse_readme=%t, type=%q", p.id, a.Len(), opts.ParseReadme, opts.Type)

	for i := 0; i < a.Len(); i++ {
		if stop := s.visit(p, a.Entry(i)); stop {
			s.logger.Verbose("scan %s: header found and readme disabled, stopping at entry %d", p.id, i)
			break
		}
	}

	return s.assemble(p)
}

// visit processes one entry and reports whether scanning should stop.
func (s *Scanner) visit(p *pass, entry wppkg.Entry) bool {
	name := entry.Name()
	slug, file, ok := splitEntry(name)
	if !ok {
		return false
	}

	content, err := entry.ReadContent()
	if err != nil {
		s.logger.Verbose("scan %s: skipping %s: %v", p.id, name, err)
		return false
	}
	p.slug = slug

	if p.kind == wppkg.TypeUndetermined {
		p.kind = DetectType(name, content, p.cachedHeaders(s.headers))
		if p.kind != wppkg.TypeUndetermined {
			s.logger.Verbose("scan %s: %s identifies a %s", p.id, name, p.kind)
		}
	}

	switch {
	case p.opts.ParseReadme && strings.EqualFold(file, wppkg.ReadmeName):
		md, err := p.readmeCache.Load(name, func() (wppkg.Metadata, error) {
			return s.parseReadme(content)
		})
		if err != nil {
			s.logger.Verbose("scan %s: ignoring %s: %v", p.id, name, err)
			return false
		}
		p.readme = md

	case p.kind == wppkg.TypePlugin && isCodeFile(file):
		md, err := p.cachedHeaders(s.headers)(wppkg.TypePlugin, name, content)
		if err != nil {
			s.logger.Verbose("scan %s: %v", p.id, err)
			return false
		}
		md = md.Clone()
		md[wppkg.KeyPlugin] = slug + "/" + file
		return p.accept(md)

	case p.kind == wppkg.TypeTheme && file == wppkg.StyleSheetName:
		md, err := p.cachedHeaders(s.headers)(wppkg.TypeTheme, name, content)
		if err != nil {
			s.logger.Verbose("scan %s: %v", p.id, err)
			return false
		}
		return p.accept(md)
	}

	return false
}

func (s *Scanner) parseReadme(content []byte) (wppkg.Metadata, error) {
	r, err := s.readme.Parse(string(content))
	if err != nil {
		return nil, err
	}
	md := r.Metadata()
	delete(md, wppkg.KeyName)
	md[wppkg.KeyReadme] = true
	return md, nil
}

// cachedHeaders routes header parsing through the pass cache so detection
// and dispatch parse each file once.
func (p *pass) cachedHeaders(parse HeaderFunc) HeaderFunc {
	return func(kind wppkg.PackageType, fileName string, content []byte) (wppkg.Metadata, error) {
		return p.headerCache.Load(fileName, func() (wppkg.Metadata, error) {
			return parse(kind, fileName, content)
		})
	}
}

func (p *pass) accept(md wppkg.Metadata) bool {
	p.headers.Merge(md)
	p.found = true
	return !p.opts.ParseReadme
}

func (s *Scanner) assemble(p *pass) (*wppkg.Package, error) {
	if p.kind == wppkg.TypeUndetermined {
		return nil, fmt.Errorf("no plugin or theme header found: %w", wppkg.ErrUndeterminedType)
	}
	if !p.found {
		return nil, fmt.Errorf("no file carries a valid %s header: %w", p.kind, wppkg.ErrMissingHeaders)
	}

	merged := wppkg.Metadata{}
	if p.readme != nil {
		merged.Merge(p.readme)
	}
	merged.Merge(p.headers)
	merged[wppkg.KeySlug] = p.slug

	s.logger.Verbose("scan %s: %s %q (%d header parses, %d cache hits)",
		p.id, p.kind, p.slug, p.headerCache.Len(), p.headerCache.Hits())

	return &wppkg.Package{
		Type:     p.kind,
		Slug:     p.slug,
		Metadata: merged,
	}, nil
}

// splitEntry accepts only "<slug>/<file>" paths whose file has an extension.
func splitEntry(name string) (slug, file string, ok bool) {
	slug, file, found := strings.Cut(name, "/")
	if !found || slug == "" || slug == "." || slug == ".." {
		return "", "", false
	}
	if file == "" || strings.Contains(file, "/") {
		return "", "", false
	}
	if ext := path.Ext(file); len(ext) < 2 {
		return "", "", false
	}
	return slug, file, true
}
