package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdsite/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "engine").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Engine.IsValid() {
		result.fail("engine", cfg.Engine, "invalid engine %q; must be one of: builtin, goldmark", cfg.Engine)
	}

	if !cfg.Flavor.IsValid() {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	} else if cfg.Engine == config.EngineBuiltin && cfg.Flavor != config.FlavorCommonMark {
		result.warn("flavor", cfg.Flavor, "flavor %q only applies to the goldmark engine", cfg.Flavor)
	}

	if cfg.AnnotateCode && cfg.Engine == config.EngineGoldmark {
		result.warn("annotate_code", true, "annotate_code only applies to the builtin engine")
	}

	if !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, summary", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	required := []struct{ field, value string }{
		{"content_dir", cfg.ContentDir},
		{"template", cfg.Template},
		{"output_dir", cfg.OutputDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			result.fail(r.field, r.value, "must not be empty")
		}
	}

	if cfg.OutputDir != "" && filepath.Clean(cfg.OutputDir) == filepath.Clean(cfg.ContentDir) {
		result.fail("output_dir", cfg.OutputDir, "must differ from content_dir")
	}

	for i, pattern := range cfg.Ignore {
		// filepath.Match only reports errors for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}
