package metadata

import (
	"regexp"
	"strings"
	"sync"
)

// headerPrefix matches what may precede a label on its line: an optional
// PHP opener followed by whitespace and comment characters.
const headerPrefix = `(?mi)^(?:[ \t]*<\?php)?[ \t/*#@]*`

// commentCloseRegex strips a trailing comment close or PHP close tag, and
// everything after it, from a captured value.
var commentCloseRegex = regexp.MustCompile(`\s*(?:\*/|\?>).*`)

// labelPatterns caches compiled patterns per label text.
var labelPatterns sync.Map

func labelPattern(text string) *regexp.Regexp {
	if re, ok := labelPatterns.Load(text); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(headerPrefix + regexp.QuoteMeta(text) + `:(.*)$`)
	actual, _ := labelPatterns.LoadOrStore(text, re)
	return actual.(*regexp.Regexp)
}

// ParseHeaders extracts one value per label from content.
//
// The whole text is searched, not a fixed prefix, so header blocks may sit
// anywhere in the leading comment and in any order. For each label the first
// matching line wins. Missing labels yield "". The returned record follows
// the declaration order of labels and ParseHeaders never fails.
func ParseHeaders(content string, labels LabelMap) Record {
	content = normalizeNewlines(content)

	record := make(Record, 0, len(labels))
	for _, label := range labels {
		value := ""
		if match := labelPattern(label.Text).FindStringSubmatch(content); match != nil {
			value = cleanupValue(match[1])
		}
		record = append(record, Field{Key: label.Key, Value: value})
	}
	return record
}

// cleanupValue mirrors the header comment cleanup WordPress applies.
func cleanupValue(raw string) string {
	return strings.TrimSpace(commentCloseRegex.ReplaceAllString(raw, ""))
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
