package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
)

// defaultConfigFile is the file written by init when --output is not given.
const defaultConfigFile = ".gomdsite.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration and page template",
		Long: `Create a .gomdsite.yml configuration file and a template.html page
template in the current directory. The template is written next to the
configuration file. Existing files are left alone unless --force is given.

Examples:
  gomdsite init                       Create .gomdsite.yml and template.html
  gomdsite init --force               Overwrite existing files
  gomdsite init --output site/cfg.yml Write into site/`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Configuration file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewInteractive()

	configPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	templatePath := filepath.Join(filepath.Dir(configPath), config.DefaultTemplate)

	files := []struct {
		path    string
		content []byte
	}{
		{configPath, config.GenerateTemplate()},
		{templatePath, config.GeneratePageTemplate()},
	}

	// Check everything first so a refusal leaves nothing half-written.
	for _, file := range files {
		if _, err := os.Stat(file.path); err == nil && !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, file.path)
		}
	}

	for _, file := range files {
		if _, err := os.Stat(file.path); err == nil {
			logger.Warn("overwriting existing file", logging.FieldPath, file.path)
		}

		if err := fsutil.WriteAtomic(ctx, file.path, file.content, fsutil.DefaultFileMode); err != nil {
			return fmt.Errorf("write file: %w", err)
		}

		logger.Info("created", logging.FieldPath, file.path)
	}

	logger.Info("add Markdown pages under content/ and run 'gomdsite build'")

	return nil
}
