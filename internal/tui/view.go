package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// headline keys are shown in the title and summary, not in the field list.
var headline = map[string]bool{
	wppkg.KeyName:     true,
	wppkg.KeyVersion:  true,
	wppkg.KeySlug:     true,
	wppkg.KeySections: true,
}

// RenderPackage formats pkg for a human reader.
// Empty fields are omitted; readme sections are listed by title only.
func RenderPackage(pkg *wppkg.Package, mode Mode) string {
	th := NewTheme(mode)
	var b strings.Builder

	writeTitle(&b, th, pkg.Metadata)
	writeField(&b, th, "type", string(pkg.Type))
	writeField(&b, th, "slug", pkg.Slug)
	if pkg.Source != "" {
		writeField(&b, th, "source", pkg.Source)
	}
	if pkg.Checksum != "" {
		writeField(&b, th, "sha256", pkg.Checksum)
	}
	writeMetadata(&b, th, pkg.Metadata)

	return b.String()
}

// RenderMetadata formats a bare metadata record, such as a single header
// block or readme, the same way RenderPackage does.
func RenderMetadata(md wppkg.Metadata, mode Mode) string {
	th := NewTheme(mode)
	var b strings.Builder

	writeTitle(&b, th, md)
	writeMetadata(&b, th, md)

	return b.String()
}

func writeTitle(b *strings.Builder, th Theme, md wppkg.Metadata) {
	title := md.String(wppkg.KeyName)
	if v := md.String(wppkg.KeyVersion); v != "" {
		title += " " + v
	}
	b.WriteString(th.Title.Render(title))
	b.WriteString("\n")
}

func writeMetadata(b *strings.Builder, th Theme, md wppkg.Metadata) {
	keys := make([]string, 0, len(md))
	for k := range md {
		if !headline[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if v := formatValue(md[k]); v != "" {
			writeField(b, th, k, v)
		}
	}

	sections := md.Sections()
	if len(sections) == 0 {
		return
	}
	titles := make([]string, 0, len(sections))
	for t := range sections {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	b.WriteString(th.Label.Render("sections:"))
	b.WriteString("\n")
	for _, t := range titles {
		fmt.Fprintf(b, "  %s %s %s\n", SymbolBullet, th.Value.Render(t),
			th.Muted.Render(fmt.Sprintf("(%d bytes)", len(sections[t]))))
	}
}

// RenderDetected formats the result of type detection.
func RenderDetected(path string, t wppkg.PackageType, mode Mode) string {
	th := NewTheme(mode)
	return fmt.Sprintf("%s %s: %s\n", th.Success.Render(SymbolCheck), path, th.Value.Render(string(t)))
}

// RenderFailure formats an error line.
func RenderFailure(err error, mode Mode) string {
	th := NewTheme(mode)
	return fmt.Sprintf("%s %s\n", th.Error.Render(SymbolCross), err)
}

func writeField(b *strings.Builder, th Theme, label, value string) {
	fmt.Fprintf(b, "%s %s\n", th.Label.Render(label+":"), th.Value.Render(value))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
