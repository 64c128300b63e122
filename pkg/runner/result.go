package runner

import (
	"time"

	"github.com/yaklabco/gomdsite/pkg/site"
)

// PageOutcome records what happened to one page.
type PageOutcome struct {
	PageSource

	// Title is the extracted page title.
	Title string

	// Bytes is the size of the rendered page.
	Bytes int

	// Written is false when the page was unchanged on disk or the run was a
	// dry run.
	Written bool

	// Stats describes the rendered content.
	Stats site.PageStats

	// Duration is the time spent on this page.
	Duration time.Duration

	// Error is set if the page could not be generated. A failed page never
	// prevents the others from being generated.
	Error error
}

// Stats captures aggregate information about a build.
type Stats struct {
	PagesDiscovered int
	PagesGenerated  int
	PagesWritten    int
	PagesUnchanged  int
	PagesFailed     int

	// BytesWritten counts rendered page bytes plus copied asset bytes.
	BytesWritten int64

	AssetsCopied int

	Elapsed time.Duration
}

// Result is the overall build result.
type Result struct {
	// Pages holds one outcome per discovered page, ordered by relative path.
	Pages []PageOutcome

	// Stats contains aggregate statistics for the build.
	Stats Stats

	// Engine names the converter used.
	Engine string

	// DryRun is true if nothing was written.
	DryRun bool
}

// HasFailures reports whether any page failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.PagesFailed > 0
}

// Failed returns the outcomes of failed pages.
func (r *Result) Failed() []PageOutcome {
	if r == nil {
		return nil
	}
	var failed []PageOutcome
	for _, page := range r.Pages {
		if page.Error != nil {
			failed = append(failed, page)
		}
	}
	return failed
}

func (r *Result) accumulate(outcome PageOutcome) {
	r.Pages = append(r.Pages, outcome)

	if outcome.Error != nil {
		r.Stats.PagesFailed++
		return
	}

	r.Stats.PagesGenerated++
	switch {
	case outcome.Written:
		r.Stats.PagesWritten++
		r.Stats.BytesWritten += int64(outcome.Bytes)
	case !r.DryRun:
		r.Stats.PagesUnchanged++
	}
}
