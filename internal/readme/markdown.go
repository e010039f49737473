package readme

import (
	"regexp"
	"strings"
)

// subheadingRegex matches the readme's "= Heading =" markup.
var subheadingRegex = regexp.MustCompile(`^\s*=\s*(.+?)\s*=\s*$`)

// Preprocess rewrites "= Heading =" lines into explicit <h4> elements
// followed by a blank line, so the markdown renderer treats them as
// standalone HTML blocks.
func Preprocess(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if m := subheadingRegex.FindStringSubmatch(line); m != nil {
			lines[i] = "<h4>" + m[1] + "</h4>\n"
		}
	}
	return strings.Join(lines, "\n")
}

// normalizeSection produces the stored body of a section: the buffered lines
// joined and trimmed, preprocessed, then rendered.
func (p *Parser) normalizeSection(title string, lines []string) string {
	text := Preprocess(strings.TrimSpace(strings.Join(lines, "\n")))

	html, err := p.renderer.Render(text)
	if err != nil {
		p.logger.Error("Failed to render readme section %q: %v", title, err)
		return text
	}
	return html
}
