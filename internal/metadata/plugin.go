package metadata

import (
	"strings"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// PluginLabels is the header block of a plugin's main PHP file.
var PluginLabels = LabelMap{
	{Key: "name", Text: "Plugin Name"},
	{Key: "plugin_uri", Text: "Plugin URI"},
	{Key: "version", Text: "Version"},
	{Key: "description", Text: "Description"},
	{Key: "author", Text: "Author"},
	{Key: "author_uri", Text: "Author URI"},
	{Key: "text_domain", Text: "Text Domain"},
	{Key: "domain_path", Text: "Domain Path"},
	{Key: "network", Text: "Network"},
	{Key: "requires_at_least", Text: "Requires at least"},
	{Key: "requires_php", Text: "Requires PHP"},
	{Key: "update_uri", Text: "Update URI"},
	{Key: "license", Text: "License"},
	{Key: "license_uri", Text: "License URI"},
}

// ParsePlugin parses a plugin header from PHP file content.
//
// The "network" field becomes a bool: true iff the raw value equals "true"
// case-insensitively. A header without a name is rejected with a
// *HeaderError wrapping wppkg.ErrInvalidTypeHeader.
func ParsePlugin(content string, fileName string) (wppkg.Metadata, error) {
	record := ParseHeaders(content, PluginLabels)
	if err := Validate(record, fileName); err != nil {
		return nil, err
	}

	headers := record.Metadata()
	headers[wppkg.KeyNetwork] = parseFlag(record.Get(wppkg.KeyNetwork))
	return headers, nil
}

func parseFlag(value string) bool {
	return strings.EqualFold(value, "true")
}
