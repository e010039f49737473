package wppkg

// Well-known metadata keys shared by several sources.
const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeySlug        = "slug"
	KeyPlugin      = "plugin"
	KeyReadme      = "readme"
	KeyTags        = "tags"
	KeyNetwork     = "network"
	KeySections    = "sections"
	KeyDescription = "description"
)

// Metadata is the flat key/value record describing a package.
//
// Values are string for scalar fields, []string for list fields,
// map[string]string for readme sections and bool for flags.
type Metadata map[string]any

// Merge copies every key of other into m, overwriting existing keys.
func (m Metadata) Merge(other Metadata) {
	for k, v := range other {
		m[k] = v
	}
}

// Clone returns a shallow copy of m.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	out.Merge(m)
	return out
}

// String returns the string value stored under key, or "" if absent or not a string.
func (m Metadata) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Strings returns the list stored under key. Never nil.
func (m Metadata) Strings(key string) []string {
	if s, ok := m[key].([]string); ok && s != nil {
		return s
	}
	return []string{}
}

// Bool returns the flag stored under key.
func (m Metadata) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Sections returns the readme sections, or nil if none were parsed.
func (m Metadata) Sections() map[string]string {
	s, _ := m[KeySections].(map[string]string)
	return s
}
