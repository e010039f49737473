// Package readme parses the readme.txt shipped with WordPress packages.
//
// # Document Layout
//
//	=== Plugin Name ===
//	Contributors: alice, bob
//	Tags: foo, bar
//	Requires at least: 6.0
//	Tested up to: 6.5
//	Stable tag: 1.2.3
//
//	Short description on a single line.
//
//	== Description ==
//	Markdown body. Lines like "= Heading =" become <h4> subheadings.
//
//	== Changelog ==
//	= 1.2.3 =
//	* Fixed things.
//
// # Parsing
//
// Parser.Parse walks the lines once through four states: the title line, the
// "Field: value" meta block (ended by a blank line), the one-line short
// description, and the "== Title ==" sections. Only a missing title line
// fails the parse (wppkg.ErrNotStructuredDocument); everything else degrades
// to empty values. Section bodies are rendered to HTML with the injected
// wppkg.Renderer after the subheading rewrite.
package readme
