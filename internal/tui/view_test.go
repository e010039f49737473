package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

func TestRenderPackage_Plain(t *testing.T) {
	pkg := &wppkg.Package{
		Type:     wppkg.TypePlugin,
		Slug:     "akismet",
		Checksum: "abc123",
		Metadata: wppkg.Metadata{
			"name":         "Akismet",
			"version":      "5.3",
			"slug":         "akismet",
			"author":       "Automattic",
			"contributors": []string{"matt", "ryan"},
			"network":      false,
			"donate":       "",
			"sections":     map[string]string{"Description": "<p>x</p>", "Changelog": "<p>1</p>"},
		},
	}

	out := RenderPackage(pkg, ModePlain)

	assert.True(t, strings.HasPrefix(out, "Akismet 5.3\n"))
	assert.Contains(t, out, "type: plugin\n")
	assert.Contains(t, out, "slug: akismet\n")
	assert.Contains(t, out, "sha256: abc123\n")
	assert.Contains(t, out, "author: Automattic\n")
	assert.Contains(t, out, "contributors: matt, ryan\n")
	assert.Contains(t, out, "network: false\n")
	assert.NotContains(t, out, "donate:")
	assert.NotContains(t, out, "source:")
	assert.Less(t, strings.Index(out, "Changelog"), strings.Index(out, "Description"))
	assert.Contains(t, out, "Description (8 bytes)")
}

func TestRenderPackage_NoVersion(t *testing.T) {
	pkg := &wppkg.Package{Type: wppkg.TypeTheme, Slug: "x", Metadata: wppkg.Metadata{"name": "X"}}
	out := RenderPackage(pkg, ModePlain)

	assert.True(t, strings.HasPrefix(out, "X\n"))
	assert.NotContains(t, out, "sections:")
}

func TestRenderDetectedAndFailure(t *testing.T) {
	assert.Equal(t, "✓ a.zip: theme\n", RenderDetected("a.zip", wppkg.TypeTheme, ModePlain))
	assert.Equal(t, "✗ boom\n", RenderFailure(errors.New("boom"), ModePlain))
}

func TestRenderMetadata(t *testing.T) {
	md := wppkg.Metadata{"name": "Hello Dolly", "version": "1.7.2", "author": "Matt", "network": true}
	out := RenderMetadata(md, ModePlain)

	assert.Equal(t, "Hello Dolly 1.7.2\nauthor: Matt\nnetwork: true\n", out)
}
