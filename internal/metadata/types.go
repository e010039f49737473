package metadata

import "github.com/vvka-141/wppkg/pkg/wppkg"

// Label maps a semantic key to the literal label text that precedes a colon
// in a header block.
//
// Example: Label{Key: "plugin_uri", Text: "Plugin URI"}
type Label struct {
	Key  string
	Text string
}

// LabelMap is the ordered set of labels recognised for one package type.
// Parsed records follow its declaration order.
type LabelMap []Label

// Keys returns the semantic keys in declaration order.
func (m LabelMap) Keys() []string {
	keys := make([]string, len(m))
	for i, l := range m {
		keys[i] = l.Key
	}
	return keys
}

// Field is one parsed header value.
type Field struct {
	Key   string
	Value string
}

// Record is the raw result of ParseHeaders: exactly one field per label of
// the LabelMap it was parsed with, in the same order.
type Record []Field

// Get returns the value for key, or "" if the record has no such field.
func (r Record) Get(key string) string {
	for _, f := range r {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Metadata converts the record into a wppkg.Metadata with string values.
func (r Record) Metadata() wppkg.Metadata {
	m := make(wppkg.Metadata, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}
