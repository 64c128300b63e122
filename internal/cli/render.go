package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdsite/internal/configloader"
	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/internal/ui/pretty"
	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
	"github.com/yaklabco/gomdsite/pkg/langdetect"
	"github.com/yaklabco/gomdsite/pkg/markdown"
	"github.com/yaklabco/gomdsite/pkg/site"
)

// stdinPath selects standard input as the render source.
const stdinPath = "-"

type renderFlags struct {
	engine       string
	flavor       string
	annotateCode bool
	dump         bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the HTML for a single Markdown document",
		Long: `Convert one Markdown document and print the resulting HTML.

Reads standard input when no file or "-" is given. With --dump, prints the
node tree produced by the builtin engine instead of rendered HTML.

Examples:
  gomdsite render README.md
  echo "# Hi" | gomdsite render
  gomdsite render --dump notes.md
  gomdsite render --engine goldmark --flavor gfm table.md`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.engine, "engine", "", "converter: builtin, goldmark")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor for goldmark: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.annotateCode, "annotate-code", false, "add language classes to code blocks")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "print the node tree instead of HTML (builtin engine)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, cmd, workDir, &configloader.Overrides{
		Engine:       config.Engine(flags.engine),
		Flavor:       config.Flavor(flags.flavor),
		AnnotateCode: boolFlag(cmd, "annotate-code", flags.annotateCode),
	})
	if err != nil {
		return err
	}

	source := stdinPath
	if len(args) == 1 {
		source = args[0]
	}

	doc, err := readSource(ctx, cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	logger.Debug("rendering document",
		logging.FieldPath, source,
		logging.FieldEngine, cfg.Engine,
		logging.FieldBytes, len(doc),
	)

	out := cmd.OutOrStdout()

	if flags.dump {
		return dumpTree(out, doc, cfg, colorMode(cmd))
	}

	engine, err := site.NewEngine(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	html, err := engine.ToHTML(doc)
	if err != nil {
		return fmt.Errorf("render %s: %w", source, err)
	}

	_, err = fmt.Fprintln(out, html)
	return err
}

// readSource reads the document from a file or, for "-", from stdin.
func readSource(ctx context.Context, stdin io.Reader, source string) (string, error) {
	if source == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := fsutil.ReadFile(ctx, source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// dumpTree pretty-prints the node tree of doc.
func dumpTree(out io.Writer, doc string, cfg *config.Config, color string) error {
	if cfg.Engine != config.EngineBuiltin && cfg.Engine != "" {
		return fmt.Errorf("%w: --dump requires the %s engine", ErrInvalidUsage, config.EngineBuiltin)
	}

	var opts []markdown.Option
	if cfg.AnnotateCode {
		opts = append(opts, markdown.WithCodeLanguage(langdetect.Detect))
	}

	root, err := markdown.New(opts...).Parse(doc)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	pp.ColoringEnabled = pretty.IsColorEnabled(color, out)

	_, err = pp.Fprintln(out, root)
	return err
}
