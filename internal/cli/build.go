package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdsite/internal/configloader"
	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/reporter"
	"github.com/yaklabco/gomdsite/pkg/runner"
	"github.com/yaklabco/gomdsite/pkg/site"
)

type buildFlags struct {
	contentDir   string
	template     string
	staticDir    string
	outputDir    string
	engine       string
	flavor       string
	format       string
	ignore       []string
	jobs         int
	annotateCode bool
	dryRun       bool
	noClean      bool
	verbose      bool
	compact      bool
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the site",
		Long:  buildLongDescription,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	addBuildFlags(cmd, flags)

	return cmd
}

const buildLongDescription = `Generate HTML pages from every Markdown file in the content directory.

Each content/a/b.md becomes public/a/b.html. The static directory is copied
into the output directory first, and the output directory is cleared before
building unless --no-clean is given. A page that fails to convert is reported
and skipped; the remaining pages are still generated.

Examples:
  gomdsite build                         # Build with configured directories
  gomdsite build --output dist           # Write the site to dist/
  gomdsite build --engine goldmark --flavor gfm
  gomdsite build --dry-run --verbose     # Render everything, write nothing
  gomdsite build --format json           # Machine-readable report`

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, cmd, workDir, flags.overrides(cmd))
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldContentDir, cfg.ContentDir,
		logging.FieldTemplate, cfg.Template,
		logging.FieldStaticDir, cfg.StaticDir,
		logging.FieldOutput, cfg.OutputDir,
		logging.FieldEngine, cfg.Engine,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	engine, err := site.NewEngine(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	result, err := runner.Run(ctx, runner.Options{
		ContentDir: cfg.ContentDir,
		Template:   cfg.Template,
		StaticDir:  cfg.StaticDir,
		OutputDir:  cfg.OutputDir,
		Extensions: runner.DefaultExtensions(),
		Ignore:     cfg.Ignore,
		Engine:     engine,
		Jobs:       cfg.Jobs,
		Clean:      cfg.Clean,
		DryRun:     cfg.DryRun,
	})
	if err != nil {
		return errors.Join(errors.New("build failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     cfg.Format,
		Color:      colorMode(cmd),
		Verbose:    flags.verbose,
		Compact:    flags.compact,
		WorkingDir: workDir,
	})
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrPagesFailed
	}

	return nil
}

// overrides converts explicitly set flags into the highest-precedence
// configuration layer.
func (f *buildFlags) overrides(cmd *cobra.Command) *configloader.Overrides {
	overrides := &configloader.Overrides{
		ContentDir:   f.contentDir,
		Template:     f.template,
		StaticDir:    f.staticDir,
		OutputDir:    f.outputDir,
		Engine:       config.Engine(f.engine),
		Flavor:       config.Flavor(f.flavor),
		Format:       config.OutputFormat(f.format),
		AnnotateCode: boolFlag(cmd, "annotate-code", f.annotateCode),
		DryRun:       boolFlag(cmd, "dry-run", f.dryRun),
		Ignore:       f.ignore,
	}

	if cmd.Flags().Changed("no-clean") {
		clean := !f.noClean
		overrides.Clean = &clean
	}

	if cmd.Flags().Changed("jobs") {
		jobs := f.jobs
		overrides.Jobs = &jobs
	}

	return overrides
}

func addBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVar(&flags.contentDir, "content", "", "directory holding Markdown pages (default \"content\")")
	cmd.Flags().StringVar(&flags.template, "template", "", "HTML page template (default \"template.html\")")
	cmd.Flags().StringVar(&flags.staticDir, "static", "", "directory copied into the output (default \"static\")")
	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "output directory (default \"public\")")
	cmd.Flags().StringVar(&flags.engine, "engine", "", "converter: builtin, goldmark")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor for goldmark: commonmark, gfm")
	cmd.Flags().StringVar(&flags.format, "format", "", "report format: text, json, summary")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "content glob patterns to skip")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.annotateCode, "annotate-code", false, "add language classes to code blocks")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "render pages without writing anything")
	cmd.Flags().BoolVar(&flags.noClean, "no-clean", false, "keep existing files in the output directory")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list every generated page")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}
