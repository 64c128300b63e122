package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/gomdsite/pkg/runner"
)

// maxDividerWidth caps the summary divider on wide terminals.
const maxDividerWidth = 60

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// FormatElapsed rounds d for display.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

// FormatSummaryOneLine formats build statistics as a single line.
// Example: "Built 12 pages, 1 failed, 3 assets copied, 48 kB written in 35ms".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	verb := "Built"
	if dryRun {
		verb = "Rendered"
	}

	parts := []string{
		fmt.Sprintf("%s %s %s", verb, humanize.Comma(int64(stats.PagesGenerated)),
			plural(stats.PagesGenerated, "page", "pages")),
	}

	if stats.PagesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.PagesFailed)))
	}

	if stats.AssetsCopied > 0 {
		parts = append(parts, fmt.Sprintf("%d %s copied", stats.AssetsCopied,
			plural(stats.AssetsCopied, "asset", "assets")))
	}

	if !dryRun {
		parts = append(parts, humanize.Bytes(uint64(max(stats.BytesWritten, 0)))+" written")
	}

	line := strings.Join(parts, ", ") + s.Dim.Render(" in "+FormatElapsed(stats.Elapsed))

	if stats.PagesFailed == 0 {
		line = s.Success.Render("✓") + " " + line
	} else {
		line = s.Failure.Render("✗") + " " + line
	}

	return line + "\n"
}

// FormatSummary formats build statistics as a summary block. The divider
// spans width columns, capped at maxDividerWidth.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool, width int) string {
	var builder strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&builder, "  %-18s%s\n", label+":", value)
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", min(max(width, 1), maxDividerWidth)))
	builder.WriteString("\n")

	row("Pages found", s.SummaryValue.Render(humanize.Comma(int64(stats.PagesDiscovered))))
	row("Pages generated", s.SummaryValue.Render(humanize.Comma(int64(stats.PagesGenerated))))
	if stats.PagesFailed > 0 {
		row("Pages failed", s.Failure.Render(humanize.Comma(int64(stats.PagesFailed))))
	}
	if !dryRun {
		row("Pages written", s.SummaryValue.Render(humanize.Comma(int64(stats.PagesWritten))))
		if stats.PagesUnchanged > 0 {
			row("Pages unchanged", s.Dim.Render(humanize.Comma(int64(stats.PagesUnchanged))))
		}
		row("Assets copied", s.SummaryValue.Render(humanize.Comma(int64(stats.AssetsCopied))))
		row("Bytes written", s.SummaryValue.Render(humanize.Bytes(uint64(max(stats.BytesWritten, 0)))))
	}
	row("Elapsed", s.SummaryValue.Render(FormatElapsed(stats.Elapsed)))

	builder.WriteString("\n")

	switch {
	case stats.PagesFailed > 0:
		builder.WriteString(s.Failure.Render("Build finished with failures"))
	case dryRun:
		builder.WriteString(s.Success.Render("Dry run complete, nothing written"))
	default:
		builder.WriteString(s.Success.Render("Build succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}
