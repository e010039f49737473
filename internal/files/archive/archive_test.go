package archive_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wppkg/internal/files/archive"
	"github.com/vvka-141/wppkg/internal/testing/fixtures"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

func names(a wppkg.Archive) []string {
	out := make([]string, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.Entry(i).Name()
	}
	return out
}

func TestOpenZip(t *testing.T) {
	path := fixtures.NewPackageBuilder("akismet").
		AddFile("akismet.php", fixtures.PluginHeader).
		AddFile("readme.txt", fixtures.PluginReadme).
		WriteZip(t, t.TempDir())

	a, err := archive.OpenZip(path)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []string{"akismet/akismet.php", "akismet/readme.txt"}, names(a))

	content, err := a.Entry(1).ReadContent()
	require.NoError(t, err)
	assert.Equal(t, fixtures.PluginReadme, string(content))
}

func TestOpenZip_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := archive.OpenZip(path)
	assert.Error(t, err)
}

func TestOpenDirectory(t *testing.T) {
	root := fixtures.NewPackageBuilder("twentytwenty").
		AddFile("style.css", fixtures.ThemeStyle).
		AddFile("inc/template-tags.php", "<?php").
		AddFile("functions.php", "<?php").
		WriteDir(t, t.TempDir())

	a, err := archive.OpenDirectory(root)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []string{
		"twentytwenty/functions.php",
		"twentytwenty/inc/template-tags.php",
		"twentytwenty/style.css",
	}, names(a))

	content, err := a.Entry(2).ReadContent()
	require.NoError(t, err)
	assert.Equal(t, fixtures.ThemeStyle, string(content))
}

func TestOpenDirectory_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := archive.OpenDirectory(filepath.Join(dir, "missing"))
	assert.Error(t, err, "nonexistent path")

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = archive.OpenDirectory(file)
	assert.Error(t, err, "regular file is not a directory")
}

func TestMemoryArchive(t *testing.T) {
	boom := errors.New("boom")
	a := archive.NewMemoryArchive().
		Add("./hello/hello.php", "<?php").
		Add("hello/", "").
		AddUnreadable("hello/broken.php", boom)

	assert.Equal(t, []string{"hello/hello.php", "hello/", "hello/broken.php"}, names(a))

	_, err := a.Entry(0).ReadContent()
	require.NoError(t, err)
	_, err = a.Entry(0).ReadContent()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Reads("hello/hello.php"))

	_, err = a.Entry(2).ReadContent()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.Reads("hello/broken.php"))

	assert.False(t, a.Closed())
	require.NoError(t, a.Close())
	assert.True(t, a.Closed())
}
