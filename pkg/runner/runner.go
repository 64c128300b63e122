package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
	"github.com/yaklabco/gomdsite/pkg/site"
)

// ErrNoEngine is returned when Options.Engine is nil.
var ErrNoEngine = errors.New("no engine configured")

// Run builds the site described by opts.
//
// The output directory is reset (when Clean is set) and static assets are
// copied before any page is generated. Pages are rendered concurrently; a
// page failure is recorded on its PageOutcome and does not stop the build.
// Errors returned from Run are setup failures (missing template, unreadable
// content directory, failed static copy) or cancellation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Engine == nil {
		return nil, ErrNoEngine
	}

	start := time.Now()
	logger := logging.FromContext(ctx)
	result := &Result{Engine: opts.Engine.Name(), DryRun: opts.DryRun}

	tmpl, err := fsutil.ReadFile(ctx, opts.Template)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	pages, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.PagesDiscovered = len(pages)
	logger.Debug("discovered pages", logging.FieldContentDir, opts.ContentDir,
		logging.FieldPagesDiscovered, len(pages))

	if !opts.DryRun {
		if err := prepareOutput(ctx, opts, result); err != nil {
			return nil, err
		}
	}

	outcomes := renderAll(ctx, opts, string(tmpl), pages)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	result.Stats.Elapsed = time.Since(start)

	if ctx.Err() != nil {
		return result, fmt.Errorf("build cancelled: %w", ctx.Err())
	}

	return result, nil
}

// prepareOutput resets the output directory and mirrors static assets.
func prepareOutput(ctx context.Context, opts Options, result *Result) error {
	logger := logging.FromContext(ctx)

	if opts.Clean {
		logger.Debug("resetting output directory", logging.FieldOutput, opts.OutputDir)
		if err := fsutil.ResetDir(opts.OutputDir); err != nil {
			return fmt.Errorf("reset output: %w", err)
		}
	}

	if opts.StaticDir == "" {
		return nil
	}

	files, n, err := fsutil.CopyTree(ctx, opts.StaticDir, opts.OutputDir)
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		logger.Debug("no static directory", logging.FieldStaticDir, opts.StaticDir)
		return nil
	case err != nil:
		return fmt.Errorf("copy static: %w", err)
	}

	result.Stats.AssetsCopied = files
	result.Stats.BytesWritten += n
	logger.Debug("copied static assets", logging.FieldStaticDir, opts.StaticDir,
		logging.FieldAssetsCopied, files, logging.FieldBytes, n)
	return nil
}

// renderAll generates pages on a bounded worker pool and returns their
// outcomes in the order of pages.
func renderAll(ctx context.Context, opts Options, tmpl string, pages []PageSource) []PageOutcome {
	if len(pages) == 0 {
		return nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(pages))

	type work struct {
		index int
		page  PageSource
	}

	workCh := make(chan work)
	outcomes := make([]PageOutcome, len(pages))
	done := make([]bool, len(pages))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				// Each index is written by exactly one worker.
				outcomes[item.index] = renderOne(ctx, opts, tmpl, item.page)
				done[item.index] = true
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i, page := range pages {
			select {
			case <-ctx.Done():
				return
			case workCh <- work{index: i, page: page}:
			}
		}
	}()

	wg.Wait()

	// Pages skipped by cancellation carry the context error.
	for i := range outcomes {
		if !done[i] {
			outcomes[i] = PageOutcome{PageSource: pages[i], Error: ctx.Err()}
		}
	}

	return outcomes
}

// renderOne converts, analyzes, and (unless dry-running) writes one page.
func renderOne(ctx context.Context, opts Options, tmpl string, src PageSource) PageOutcome {
	start := time.Now()
	logger := logging.FromContext(ctx).With(logging.FieldPath, src.Rel)
	outcome := PageOutcome{PageSource: src}

	fail := func(err error) PageOutcome {
		logger.Debug("page failed", logging.FieldError, err)
		outcome.Error = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	doc, err := fsutil.ReadFile(ctx, src.Source)
	if err != nil {
		return fail(err)
	}

	page, err := site.RenderPage(string(doc), tmpl, opts.Engine)
	if err != nil {
		return fail(err)
	}

	outcome.Title = page.Title
	outcome.Bytes = len(page.HTML)

	if stats, err := site.Analyze(page.Content); err == nil {
		outcome.Stats = stats
	}

	if !opts.DryRun {
		written, err := fsutil.WriteAtomicIfChanged(ctx, src.Output, []byte(page.HTML), 0)
		if err != nil {
			return fail(err)
		}
		outcome.Written = written
	}

	logger.Debug("page generated", logging.FieldTitle, page.Title, logging.FieldOutput, src.Output)
	outcome.Duration = time.Since(start)
	return outcome
}
