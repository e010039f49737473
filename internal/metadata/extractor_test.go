package metadata

import (
	"reflect"
	"testing"
)

var testLabels = LabelMap{
	{Key: "name", Text: "Plugin Name"},
	{Key: "version", Text: "Version"},
	{Key: "author", Text: "Author"},
	{Key: "author_uri", Text: "Author URI"},
}

// TestParseHeaders_DocBlock tests the common PHP doc-block layout
func TestParseHeaders_DocBlock(t *testing.T) {
	content := `<?php
/**
 * Plugin Name: Hello Dolly
 * Version:     1.7.2
 * Author:      Matt Mullenweg
 * Author URI:  http://ma.tt/
 */
`

	record := ParseHeaders(content, testLabels)

	want := Record{
		{Key: "name", Value: "Hello Dolly"},
		{Key: "version", Value: "1.7.2"},
		{Key: "author", Value: "Matt Mullenweg"},
		{Key: "author_uri", Value: "http://ma.tt/"},
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("Expected %v, got %v", want, record)
	}
}

// TestParseHeaders_MissingLabels tests that absent labels yield empty values
func TestParseHeaders_MissingLabels(t *testing.T) {
	record := ParseHeaders("/* Plugin Name: Only Name */", testLabels)

	if len(record) != len(testLabels) {
		t.Fatalf("Expected %d fields, got %d", len(testLabels), len(record))
	}
	if got := record.Get("name"); got != "Only Name" {
		t.Errorf("Expected name 'Only Name', got '%s'", got)
	}
	for _, key := range []string{"version", "author", "author_uri"} {
		if got := record.Get(key); got != "" {
			t.Errorf("Expected empty %s, got '%s'", key, got)
		}
	}
}

// TestParseHeaders_EmptyContent tests that empty input never fails
func TestParseHeaders_EmptyContent(t *testing.T) {
	record := ParseHeaders("", testLabels)
	if len(record) != len(testLabels) {
		t.Fatalf("Expected %d fields, got %d", len(testLabels), len(record))
	}
	for _, f := range record {
		if f.Value != "" {
			t.Errorf("Expected empty value for %s, got '%s'", f.Key, f.Value)
		}
	}
}

// TestParseHeaders_DeclarationOrder tests that output follows the label map, not the file
func TestParseHeaders_DeclarationOrder(t *testing.T) {
	content := `/*
Author: Someone
Version: 2.0
Plugin Name: Reordered
*/`

	record := ParseHeaders(content, testLabels)

	keys := make([]string, len(record))
	for i, f := range record {
		keys[i] = f.Key
	}
	if !reflect.DeepEqual(keys, testLabels.Keys()) {
		t.Errorf("Expected key order %v, got %v", testLabels.Keys(), keys)
	}
}

// TestParseHeaders_ScansWholeText tests that headers far from the top are still found
func TestParseHeaders_ScansWholeText(t *testing.T) {
	padding := ""
	for i := 0; i < 2000; i++ {
		padding += "// filler line\n"
	}
	content := "<?php\n" + padding + "/*\n * Plugin Name: Deep Header\n */\n"

	if got := ParseHeaders(content, testLabels).Get("name"); got != "Deep Header" {
		t.Errorf("Expected 'Deep Header', got '%s'", got)
	}
}

// TestParseHeaders_FirstMatchWins tests that the first matching line is used
func TestParseHeaders_FirstMatchWins(t *testing.T) {
	content := "Version: 1.0\nVersion: 2.0\n"

	if got := ParseHeaders(content, testLabels).Get("version"); got != "1.0" {
		t.Errorf("Expected '1.0', got '%s'", got)
	}
}

// TestParseHeaders_CaseInsensitive tests that label matching ignores case
func TestParseHeaders_CaseInsensitive(t *testing.T) {
	content := " * plugin name: lower case\n"

	if got := ParseHeaders(content, testLabels).Get("name"); got != "lower case" {
		t.Errorf("Expected 'lower case', got '%s'", got)
	}
}

// TestParseHeaders_CommentCleanup tests removal of trailing comment closers
func TestParseHeaders_CommentCleanup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"block comment close", "/* Plugin Name: Inline */", "Inline"},
		{"php close tag", "<?php // Plugin Name: Tagged ?> <html>", "Tagged"},
		{"php opener on same line", "<?php /* Plugin Name: Opener */", "Opener"},
		{"hash comment", "# Plugin Name: Hashed", "Hashed"},
		{"at sign", " * @ Plugin Name: At", "At"},
		{"crlf line endings", "/*\r\n * Plugin Name: Windows\r\n */", "Windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHeaders(tt.content, testLabels).Get("name"); got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

// TestParseHeaders_LabelPrefixIsNotAMatch tests that "Author URI:" does not satisfy "Author:"
func TestParseHeaders_LabelPrefixIsNotAMatch(t *testing.T) {
	content := " * Author URI: https://example.com\n"

	record := ParseHeaders(content, testLabels)
	if got := record.Get("author"); got != "" {
		t.Errorf("Expected empty author, got '%s'", got)
	}
	if got := record.Get("author_uri"); got != "https://example.com" {
		t.Errorf("Expected author_uri, got '%s'", got)
	}
}

// TestParseHeaders_TextBeforeLabel tests that prose before a label is not a header
func TestParseHeaders_TextBeforeLabel(t *testing.T) {
	content := "echo 'Plugin Name: not a header';\n"

	if got := ParseHeaders(content, testLabels).Get("name"); got != "" {
		t.Errorf("Expected no match, got '%s'", got)
	}
}

// TestParseHeaders_Idempotent tests that identical input yields identical records
func TestParseHeaders_Idempotent(t *testing.T) {
	content := "/*\n * Plugin Name: Same\n * Version: 3\n */"

	first := ParseHeaders(content, PluginLabels)
	second := ParseHeaders(content, PluginLabels)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical records, got %v and %v", first, second)
	}
}

func TestRecord_Metadata(t *testing.T) {
	record := Record{{Key: "name", Value: "X"}, {Key: "version", Value: ""}}

	m := record.Metadata()
	if m.String("name") != "X" {
		t.Errorf("Expected name X, got %v", m["name"])
	}
	if v, ok := m["version"]; !ok || v != "" {
		t.Errorf("Expected empty version to be present, got %v (present=%v)", v, ok)
	}
}
