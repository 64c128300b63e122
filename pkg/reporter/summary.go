package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/yaklabco/gomdsite/internal/ui/pretty"
	"github.com/yaklabco/gomdsite/pkg/runner"
)

// SummaryReporter prints failures grouped by category followed by a
// statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	groups := lo.GroupBy(result.Failed(), func(page runner.PageOutcome) string {
		return Category(page.Error)
	})

	categories := lo.Keys(groups)
	sort.Strings(categories)

	for _, category := range categories {
		pages := groups[category]
		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.Failure.Render(category),
			r.styles.Dim.Render(fmt.Sprintf("(%d)", len(pages))))
		for _, page := range pages {
			fmt.Fprintf(r.bw, "  %s\n", r.styles.Path.Render(r.opts.relPath(page.Source)))
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, result.DryRun, pretty.TerminalWidth(r.opts.Writer)))

	return result.Stats.PagesFailed, nil
}
