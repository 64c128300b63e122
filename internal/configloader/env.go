package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdsite/pkg/config"
)

// envVarPrefix is the prefix for all gomdsite environment variables.
const envVarPrefix = "GOMDSITE_"

// envSetter parses one environment value into a layer.
type envSetter func(layer *Overrides, value string) error

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"CONTENT_DIR":   func(l *Overrides, v string) error { l.ContentDir = v; return nil },
	"TEMPLATE":      func(l *Overrides, v string) error { l.Template = v; return nil },
	"STATIC_DIR":    func(l *Overrides, v string) error { l.StaticDir = v; return nil },
	"OUTPUT_DIR":    func(l *Overrides, v string) error { l.OutputDir = v; return nil },
	"ENGINE":        func(l *Overrides, v string) error { l.Engine = config.Engine(v); return nil },
	"FLAVOR":        func(l *Overrides, v string) error { l.Flavor = config.Flavor(v); return nil },
	"FORMAT":        func(l *Overrides, v string) error { l.Format = config.OutputFormat(v); return nil },
	"IGNORE":        func(l *Overrides, v string) error { l.Ignore = parseSliceValue(v); return nil },
	"ANNOTATE_CODE": boolSetter(func(l *Overrides, b *bool) { l.AnnotateCode = b }),
	"CLEAN":         boolSetter(func(l *Overrides, b *bool) { l.Clean = b }),
	"DRY_RUN":       boolSetter(func(l *Overrides, b *bool) { l.DryRun = b }),
	"JOBS": func(l *Overrides, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		l.Jobs = &i
		return nil
	},
}

func boolSetter(set func(*Overrides, *bool)) envSetter {
	return func(l *Overrides, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		set(l, &b)
		return nil
	}
}

// LoadFromEnv reads GOMDSITE_* variables into a layer. Empty variables are
// treated as unset.
func LoadFromEnv() (*Overrides, error) {
	return loadFromLookup(os.Getenv)
}

func loadFromLookup(getenv func(string) string) (*Overrides, error) {
	layer := &Overrides{}

	for suffix, set := range envMappings {
		envVar := envVarPrefix + suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := set(layer, value); err != nil {
			return nil, fmt.Errorf("%s: %w", envVar, err)
		}
	}

	return layer, nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMDSITE_CONTENT_DIR":   "Directory holding Markdown sources",
		"GOMDSITE_TEMPLATE":      "HTML page template",
		"GOMDSITE_STATIC_DIR":    "Directory copied verbatim into the output",
		"GOMDSITE_OUTPUT_DIR":    "Output directory",
		"GOMDSITE_ENGINE":        "Converter: builtin or goldmark",
		"GOMDSITE_FLAVOR":        "Markdown flavor for goldmark: commonmark or gfm",
		"GOMDSITE_FORMAT":        "Report format: text, json, or summary",
		"GOMDSITE_IGNORE":        "Comma-separated list of content ignore patterns",
		"GOMDSITE_ANNOTATE_CODE": "Add language classes to code blocks: true or false",
		"GOMDSITE_CLEAN":         "Reset the output directory before building: true or false",
		"GOMDSITE_DRY_RUN":       "Render without writing: true or false",
		"GOMDSITE_JOBS":          "Number of parallel workers (0 = auto)",
	}
}
