package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdsite/internal/ui/pretty"
	"github.com/yaklabco/gomdsite/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Pages) == 0 {
		fmt.Fprintln(r.bw, r.styles.Warning.Render("No pages found."))
		return 0, nil
	}

	for _, page := range result.Pages {
		switch {
		case page.Error != nil:
			fmt.Fprintf(r.bw, "%s %s: %s\n",
				r.styles.Failure.Render("✗"),
				r.styles.Path.Render(r.opts.relPath(page.Source)),
				page.Error)
		case r.opts.Verbose:
			r.writePage(page, result.DryRun)
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.DryRun))

	return result.Stats.PagesFailed, nil
}

func (r *TextReporter) writePage(page runner.PageOutcome, dryRun bool) {
	status := "written"
	switch {
	case dryRun:
		status = "rendered"
	case !page.Written:
		status = "unchanged"
	}

	fmt.Fprintf(r.bw, "%s %s %s %s %s\n",
		r.styles.Success.Render("✓"),
		r.styles.Path.Render(r.opts.relPath(page.Source)),
		r.styles.Arrow.Render("→"),
		r.opts.relPath(page.Output),
		r.styles.Detail.Render(fmt.Sprintf("(%q, %s)", page.Title, status)))
}
