// Package wppkg defines the public types, collaborator interfaces and
// sentinel errors for extracting metadata from WordPress plugin and theme
// packages.
//
// The extraction engine itself lives in internal packages; use
// github.com/vvka-141/wppkg/pkg/extract for the one-call API.
package wppkg
