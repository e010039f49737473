package extract_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wppkg/internal/checksum"
	"github.com/vvka-141/wppkg/internal/testing/fixtures"
	"github.com/vvka-141/wppkg/pkg/extract"
	"github.com/vvka-141/wppkg/pkg/wppkg"
)

func akismet() *fixtures.PackageBuilder {
	return fixtures.NewPackageBuilder("akismet").
		AddFile("akismet.php", fixtures.PluginHeader).
		AddFile("readme.txt", fixtures.PluginReadme)
}

func TestFromFile_Zip(t *testing.T) {
	path := akismet().WriteZip(t, t.TempDir())

	pkg, err := extract.FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, wppkg.TypePlugin, pkg.Type)
	assert.Equal(t, "akismet", pkg.Slug)
	assert.Equal(t, "Akismet Anti-spam", pkg.Name())
	assert.True(t, pkg.Metadata.Bool("readme"))
	assert.Contains(t, pkg.Metadata.Sections()["Description"], "<p>Akismet checks")
	assert.Equal(t, path, pkg.Source)

	sum, err := checksum.New().CalculateFile(path)
	require.NoError(t, err)
	assert.Equal(t, sum, pkg.Checksum)
}

func TestFromFile_Directory(t *testing.T) {
	root := fixtures.NewPackageBuilder("twentytwenty").
		AddFile("style.css", fixtures.ThemeStyle).
		WriteDir(t, t.TempDir())

	pkg, err := extract.FromFile(root)
	require.NoError(t, err)
	assert.Equal(t, wppkg.TypeTheme, pkg.Type)
	assert.Equal(t, "twentytwenty", pkg.Slug)
	assert.Empty(t, pkg.Checksum)
}

func TestFromFile_Options(t *testing.T) {
	path := akismet().WriteZip(t, t.TempDir())

	pkg, err := extract.FromFile(path, extract.WithoutReadme())
	require.NoError(t, err)
	assert.NotContains(t, pkg.Metadata, "readme")

	_, err = extract.FromFile(path, extract.WithType(wppkg.TypeTheme))
	assert.ErrorIs(t, err, wppkg.ErrMissingHeaders)
}

func TestFromFile_InvalidSource(t *testing.T) {
	_, err := extract.FromFile(filepath.Join(t.TempDir(), "missing.zip"))
	assert.ErrorIs(t, err, wppkg.ErrInvalidPackageSource)
}

type countingRenderer struct{ calls int }

func (r *countingRenderer) Render(s string) (string, error) {
	r.calls++
	return "rendered", nil
}

func TestFromArchive_CustomRendererAndCallerOwnsArchive(t *testing.T) {
	a := akismet().BuildMemory()
	r := &countingRenderer{}

	pkg, err := extract.FromArchive(a, extract.WithRenderer(r), extract.WithLogger(nil))
	require.NoError(t, err)

	assert.Equal(t, "rendered", pkg.Metadata.Sections()["Changelog"])
	assert.Equal(t, 2, r.calls)
	assert.False(t, a.Closed())
	assert.Empty(t, pkg.Source)
}

func TestFromArchive_WithOptions(t *testing.T) {
	a := akismet().BuildMemory()

	pkg, err := extract.FromArchive(a, extract.WithOptions(wppkg.Options{ParseReadme: false, Type: wppkg.TypePlugin}))
	require.NoError(t, err)
	assert.NotContains(t, pkg.Metadata, "readme")
	assert.Equal(t, 0, a.Reads("akismet/readme.txt"))
}
