package configloader

import (
	"slices"

	"github.com/yaklabco/gomdsite/pkg/config"
)

// Overrides is one configuration layer. Unset fields (empty strings, nil
// pointers and slices) leave the value below them untouched, so a layer can
// turn a boolean off explicitly.
type Overrides struct {
	ContentDir   string        `yaml:"content_dir"`
	Template     string        `yaml:"template"`
	StaticDir    string        `yaml:"static_dir"`
	OutputDir    string        `yaml:"output_dir"`
	Engine       config.Engine `yaml:"engine"`
	Flavor       config.Flavor `yaml:"flavor"`
	AnnotateCode *bool         `yaml:"annotate_code"`
	Ignore       []string      `yaml:"ignore"`
	Clean        *bool         `yaml:"clean"`

	// CLI and environment only.
	Jobs   *int                `yaml:"-"`
	Format config.OutputFormat `yaml:"-"`
	DryRun *bool               `yaml:"-"`
}

// apply returns a copy of base with every set field of layer applied.
//   - Scalars and booleans: overwrite when set
//   - Slices: override replaces base entirely if non-nil
func apply(base *config.Config, layer *Overrides) *config.Config {
	result := base.Clone()
	if layer == nil {
		return result
	}

	setString(&result.ContentDir, layer.ContentDir)
	setString(&result.Template, layer.Template)
	setString(&result.StaticDir, layer.StaticDir)
	setString(&result.OutputDir, layer.OutputDir)
	setString(&result.Engine, layer.Engine)
	setString(&result.Flavor, layer.Flavor)
	setString(&result.Format, layer.Format)

	setPtr(&result.AnnotateCode, layer.AnnotateCode)
	setPtr(&result.Clean, layer.Clean)
	setPtr(&result.DryRun, layer.DryRun)
	setPtr(&result.Jobs, layer.Jobs)

	if layer.Ignore != nil {
		result.Ignore = slices.Clone(layer.Ignore)
	}

	return result
}

// MergeAll applies layers over base in order; later layers take precedence.
func MergeAll(base *config.Config, layers ...*Overrides) *config.Config {
	result := base
	for _, layer := range layers {
		result = apply(result, layer)
	}
	return result
}

func setString[T ~string](dst *T, value T) {
	if value != "" {
		*dst = value
	}
}

func setPtr[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
