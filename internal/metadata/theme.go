package metadata

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// ThemeLabels is the header block of a theme's style.css.
var ThemeLabels = LabelMap{
	{Key: "name", Text: "Theme Name"},
	{Key: "theme_uri", Text: "Theme URI"},
	{Key: "author", Text: "Author"},
	{Key: "author_uri", Text: "Author URI"},
	{Key: "description", Text: "Description"},
	{Key: "version", Text: "Version"},
	{Key: "requires_at_least", Text: "Requires at least"},
	{Key: "tested", Text: "Tested up to"},
	{Key: "requires_php", Text: "Requires PHP"},
	{Key: "license", Text: "License"},
	{Key: "license_uri", Text: "License URI"},
	{Key: "text_domain", Text: "Text Domain"},
	{Key: "tags", Text: "Tags"},
	{Key: "domain_path", Text: "Domain Path"},
	{Key: "template", Text: "Template"},
}

// stripPolicy removes every tag. Safe for concurrent use once built.
var stripPolicy = bluemonday.StrictPolicy()

// ParseTheme parses a theme header from style.css content.
//
// The "tags" field becomes a list: markup stripped, split on commas, pieces
// trimmed, empty pieces dropped. A header without a name is rejected with a
// *HeaderError wrapping wppkg.ErrInvalidTypeHeader.
func ParseTheme(content string, fileName string) (wppkg.Metadata, error) {
	record := ParseHeaders(content, ThemeLabels)
	if err := Validate(record, fileName); err != nil {
		return nil, err
	}

	headers := record.Metadata()
	headers[wppkg.KeyTags] = SplitList(StripTags(record.Get(wppkg.KeyTags)))
	return headers, nil
}

// StripTags removes HTML markup from s, leaving its text.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	// bluemonday escapes what it keeps; undo that to get plain text back.
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// SplitList splits a comma-separated value into trimmed, non-empty items.
// The result is never nil.
func SplitList(s string) []string {
	items := []string{}
	for _, piece := range strings.Split(s, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			items = append(items, piece)
		}
	}
	return items
}
