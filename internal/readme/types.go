package readme

import "github.com/vvka-141/wppkg/pkg/wppkg"

// Readme is the structured content of a readme.txt.
// List fields are never nil.
type Readme struct {
	Name             string
	Contributors     []string
	Donate           string
	Tags             []string
	Requires         string
	Tested           string
	RequiresPHP      string
	Stable           string
	License          string
	LicenseURI       string
	ShortDescription string
	Sections         *Sections
}

func newReadme() *Readme {
	return &Readme{
		Contributors: []string{},
		Tags:         []string{},
		Sections:     NewSections(),
	}
}

// Metadata converts the readme into metadata keys.
// The title is included under "name"; callers merging into package metadata
// drop it first.
func (r *Readme) Metadata() wppkg.Metadata {
	return wppkg.Metadata{
		wppkg.KeyName:       r.Name,
		"contributors":      r.Contributors,
		"donate":            r.Donate,
		wppkg.KeyTags:       r.Tags,
		"requires":          r.Requires,
		"tested":            r.Tested,
		"requires_php":      r.RequiresPHP,
		"stable":            r.Stable,
		"license":           r.License,
		"license_uri":       r.LicenseURI,
		"short_description": r.ShortDescription,
		wppkg.KeySections:   r.Sections.Map(),
	}
}

// Section is one titled block of rendered HTML.
type Section struct {
	Title string
	Body  string
}

// Sections maps section titles to bodies, remembering the order in which
// titles first appeared. Setting an existing title replaces its body.
type Sections struct {
	titles []string
	bodies map[string]string
}

// NewSections returns an empty Sections.
func NewSections() *Sections {
	return &Sections{bodies: make(map[string]string)}
}

// Set stores body under title, replacing any previous body.
func (s *Sections) Set(title, body string) {
	if _, exists := s.bodies[title]; !exists {
		s.titles = append(s.titles, title)
	}
	s.bodies[title] = body
}

// Get returns the body stored under title.
func (s *Sections) Get(title string) (string, bool) {
	body, ok := s.bodies[title]
	return body, ok
}

// Len returns the number of distinct titles.
func (s *Sections) Len() int {
	return len(s.titles)
}

// All returns the sections in order of first appearance.
func (s *Sections) All() []Section {
	out := make([]Section, len(s.titles))
	for i, title := range s.titles {
		out[i] = Section{Title: title, Body: s.bodies[title]}
	}
	return out
}

// Map returns a copy of the sections as a plain map.
func (s *Sections) Map() map[string]string {
	out := make(map[string]string, len(s.bodies))
	for k, v := range s.bodies {
		out[k] = v
	}
	return out
}
