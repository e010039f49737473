package fixtures

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/wppkg/internal/files/archive"
)

// Sample file contents shared by tests across packages.
const (
	PluginHeader = `<?php
/**
 * Plugin Name: Akismet Anti-spam
 * Plugin URI: https://akismet.com/
 * Description: Used by millions, Akismet is quite possibly the best way to protect your blog from spam.
 * Version: 5.3
 * Requires at least: 5.8
 * Requires PHP: 5.6.20
 * Author: Automattic
 * Author URI: https://automattic.com/wordpress-plugins/
 * License: GPLv2 or later
 * Text Domain: akismet
 */
`

	PluginReadme = `=== Akismet Anti-spam ===
Contributors: matt, ryan, automattic
Tags: comments, spam, antispam
Requires at least: 5.8
Tested up to: 6.4
Stable tag: 5.3
License: GPLv2 or later

The best anti-spam protection to block spam comments.

== Description ==

Akismet checks your comments against the global spam database.

== Changelog ==

= 5.3 =
Release Date - 14 September 2023

* Improved the layout.
`

	ThemeStyle = `/*
Theme Name: Twenty Twenty
Theme URI: https://wordpress.org/themes/twentytwenty/
Author: the WordPress team
Description: Our default theme for 2020.
Version: 2.1
Requires at least: 4.7
Tested up to: 6.0
Requires PHP: 5.2.4
License: GPLv2 or later
Text Domain: twentytwenty
Tags: blog, one-column, <em>custom-colors</em>
*/
`
)

type file struct {
	name    string
	content string
}

// PackageBuilder provides a fluent API for building package fixtures
// in memory, as a zip file or as an unpacked directory.
//
// Example usage:
//
//	path := NewPackageBuilder("akismet").
//	    AddFile("akismet.php", PluginHeader).
//	    AddFile("readme.txt", PluginReadme).
//	    WriteZip(t, t.TempDir())
type PackageBuilder struct {
	slug  string
	files []file
}

// NewPackageBuilder creates a builder whose files live under slug/.
func NewPackageBuilder(slug string) *PackageBuilder {
	return &PackageBuilder{slug: slug}
}

// AddFile adds a file under the package's top-level directory.
func (b *PackageBuilder) AddFile(name, content string) *PackageBuilder {
	b.files = append(b.files, file{name: b.slug + "/" + name, content: content})
	return b
}

// AddRaw adds a file at an exact archive path, outside the slug if desired.
func (b *PackageBuilder) AddRaw(name, content string) *PackageBuilder {
	b.files = append(b.files, file{name: name, content: content})
	return b
}

// BuildMemory returns the files as an in-memory archive, in insertion order.
func (b *PackageBuilder) BuildMemory() *archive.MemoryArchive {
	a := archive.NewMemoryArchive()
	for _, f := range b.files {
		a.Add(f.name, f.content)
	}
	return a
}

// WriteZip writes <slug>.zip into dir and returns its path.
func (b *PackageBuilder) WriteZip(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, b.slug+".zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, f := range b.files {
		w, err := zw.Create(f.name)
		if err != nil {
			t.Fatalf("add %s: %v", f.name, err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			t.Fatalf("write %s: %v", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

// WriteDir writes the files below dir and returns the path of dir/<slug>.
func (b *PackageBuilder) WriteDir(t testing.TB, dir string) string {
	t.Helper()

	for _, f := range b.files {
		path := filepath.Join(dir, filepath.FromSlash(f.name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", f.name, err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			t.Fatalf("write %s: %v", f.name, err)
		}
	}
	return filepath.Join(dir, b.slug)
}
