package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

const twentyTwenty = `/*
Theme Name: Twenty Twenty
Text Domain: twentytwenty
Version: 2.1
Tested up to: 6.1
Requires at least: 4.7
Requires PHP: 5.2.4
Description: Our default theme for 2020.
Tags: blog, one-column, custom-background, custom-colors
Author: the WordPress team
Author URI: https://wordpress.org/
Theme URI: https://wordpress.org/themes/twentytwenty/
License: GNU General Public License v2 or later
License URI: http://www.gnu.org/licenses/gpl-2.0.html
Template: parent-theme
*/

html { font-size: 62.5%; }
`

func TestParseTheme_TwentyTwenty(t *testing.T) {
	headers, err := ParseTheme(twentyTwenty, "style.css")
	require.NoError(t, err)

	assert.Equal(t, "Twenty Twenty", headers.String("name"))
	assert.Equal(t, "twentytwenty", headers.String("text_domain"))
	assert.Equal(t, "2.1", headers.String("version"))
	assert.Equal(t, "6.1", headers.String("tested"))
	assert.Equal(t, "parent-theme", headers.String("template"))
	assert.Equal(t, "https://wordpress.org/themes/twentytwenty/", headers.String("theme_uri"))
	assert.Equal(t, []string{"blog", "one-column", "custom-background", "custom-colors"}, headers.Strings("tags"))
	assert.Len(t, headers, len(ThemeLabels))
}

func TestParseTheme_TagsStripMarkup(t *testing.T) {
	content := "/*\nTheme Name: Marked\nTags: <b>bold</b>, <a href=\"x\">linked</a>, , plain \n*/"

	headers, err := ParseTheme(content, "style.css")
	require.NoError(t, err)
	assert.Equal(t, []string{"bold", "linked", "plain"}, headers.Strings("tags"))
}

func TestParseTheme_NoTags(t *testing.T) {
	headers, err := ParseTheme("/* Theme Name: Bare */", "style.css")
	require.NoError(t, err)

	tags, ok := headers["tags"].([]string)
	require.True(t, ok, "tags should be a []string")
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestParseTheme_NoName(t *testing.T) {
	_, err := ParseTheme("body { color: red; }", "style.css")
	assert.True(t, errors.Is(err, wppkg.ErrInvalidTypeHeader))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "plain", StripTags("plain"))
	assert.Equal(t, "a & b", StripTags("<i>a</i> & b"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b ,"))
}
