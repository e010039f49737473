package readme

import (
	"regexp"
	"strings"

	"github.com/vvka-141/wppkg/internal/metadata"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

var (
	// titleRegex matches the first line, e.g. "=== My Plugin ===".
	titleRegex = regexp.MustCompile(`===\s*(.+?)\s*===`)

	// sectionRegex matches a section header, e.g. "== Installation ==".
	sectionRegex = regexp.MustCompile(`^\s*==\s+(.+?)\s+==\s*$`)
)

// metaFields maps meta-block field names to Readme setters.
var metaFields = map[string]func(r *Readme, value string){
	"Contributors":      func(r *Readme, v string) { r.Contributors = metadata.SplitList(v) },
	"Donate link":       func(r *Readme, v string) { r.Donate = v },
	"Tags":              func(r *Readme, v string) { r.Tags = metadata.SplitList(v) },
	"Requires at least": func(r *Readme, v string) { r.Requires = v },
	"Tested up to":      func(r *Readme, v string) { r.Tested = v },
	"Requires PHP":      func(r *Readme, v string) { r.RequiresPHP = v },
	"Stable tag":        func(r *Readme, v string) { r.Stable = v },
	"License":           func(r *Readme, v string) { r.License = v },
	"License URI":       func(r *Readme, v string) { r.LicenseURI = v },
}

type parseState int

const (
	stateTitle parseState = iota
	stateMetaHeaders
	stateShortDescription
	stateSections
)

// Parser turns readme.txt content into a Readme.
// A Parser holds no per-document state and is safe for concurrent use if its
// renderer and logger are.
type Parser struct {
	renderer wppkg.Renderer
	logger   wppkg.Logger
}

// NewParser creates a parser that renders section bodies with renderer.
// Panics if renderer or logger is nil.
func NewParser(renderer wppkg.Renderer, logger wppkg.Logger) *Parser {
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Parser{renderer: renderer, logger: logger}
}

// sectionBuffer collects the raw lines of the currently open section.
type sectionBuffer struct {
	title string
	lines []string
}

// Parse parses a readme document.
//
// The only failure is a first line that is not a "=== Title ===" line, which
// returns an *Error wrapping wppkg.ErrNotStructuredDocument. A missing meta
// block, short description or sections simply leave those fields empty.
func (p *Parser) Parse(content string) (*Readme, error) {
	lines := strings.Split(strings.TrimSpace(normalizeNewlines(content)), "\n")

	readme := newReadme()
	state := stateTitle
	var open *sectionBuffer

	for i, line := range lines {
		switch state {
		case stateTitle:
			m := titleRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, &Error{
					Line:    i + 1,
					Message: "first line is not a \"=== Name ===\" title",
					Err:     wppkg.ErrNotStructuredDocument,
				}
			}
			readme.Name = m[1]
			state = stateMetaHeaders

		case stateMetaHeaders:
			if strings.TrimSpace(line) == "" {
				state = stateShortDescription
				continue
			}
			field, value, _ := strings.Cut(line, ":")
			if set, ok := metaFields[strings.TrimSpace(field)]; ok {
				set(readme, strings.TrimSpace(value))
			}

		case stateShortDescription:
			readme.ShortDescription = line
			state = stateSections

		case stateSections:
			if m := sectionRegex.FindStringSubmatch(line); m != nil {
				p.flush(readme, open)
				open = &sectionBuffer{title: m[1]}
				continue
			}
			// Text before the first section header belongs nowhere.
			if open != nil {
				open.lines = append(open.lines, line)
			}
		}
	}
	p.flush(readme, open)

	return readme, nil
}

func (p *Parser) flush(readme *Readme, open *sectionBuffer) {
	if open == nil {
		return
	}
	readme.Sections.Set(open.title, p.normalizeSection(open.title, open.lines))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
