// Package runner builds a complete site: it discovers content pages, renders
// them concurrently, and mirrors static assets into the output directory.
package runner

import "github.com/yaklabco/gomdsite/pkg/site"

// Options controls a site build.
type Options struct {
	// ContentDir is searched recursively for Markdown pages.
	ContentDir string

	// Template is the HTML page template path.
	Template string

	// StaticDir is copied into OutputDir. A missing directory is skipped.
	StaticDir string

	// OutputDir receives the generated site.
	OutputDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to DefaultExtensions().
	Extensions []string

	// Ignore holds glob patterns, relative to ContentDir, to skip.
	Ignore []string

	// Engine converts each page.
	Engine site.Engine

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Clean resets OutputDir before building.
	Clean bool

	// DryRun renders every page without touching the filesystem.
	DryRun bool
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}
