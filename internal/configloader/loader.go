// Package configloader resolves the site configuration from defaults, user
// and project files, an explicit file, the environment, and CLI flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLI contains overrides from command-line flags. These take highest precedence.
	CLI *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLI)
//  2. Environment variables (GOMDSITE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdsite.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdsite/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	files := []struct {
		path string
		skip bool
		kind string
	}{
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}

	for _, file := range files {
		if file.skip || file.path == "" {
			continue
		}

		layer, err := loadConfigFile(file.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", file.kind, err)
		}

		cfg = apply(cfg, layer)
		result.LoadedFrom = append(result.LoadedFrom, file.path)
		logger.Debug("loaded config", logging.FieldPath, file.path, "source", file.kind)
	}

	if !opts.IgnoreEnv {
		envLayer, err := LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		cfg = apply(cfg, envLayer)
	}

	cfg = apply(cfg, opts.CLI)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile decodes a YAML config file into a layer. Unknown keys are
// rejected so typos surface instead of being silently ignored.
func loadConfigFile(path string) (*Overrides, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	layer := &Overrides{}
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(layer); err != nil {
		if errors.Is(err, io.EOF) {
			return layer, nil
		}
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	return layer, nil
}
