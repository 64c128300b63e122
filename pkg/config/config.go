// Package config defines the site configuration types for gomdsite.
// These are plain data structures; loading and layering lives in
// internal/configloader.
package config

// Engine names the Markdown-to-HTML implementation used for pages.
type Engine string

const (
	// EngineBuiltin is the in-tree converter (pkg/markdown).
	EngineBuiltin Engine = "builtin"
	// EngineGoldmark is the goldmark-backed converter.
	EngineGoldmark Engine = "goldmark"
)

// IsValid reports whether e names a known engine.
func (e Engine) IsValid() bool {
	return e == EngineBuiltin || e == EngineGoldmark
}

// Flavor specifies the Markdown flavor for the goldmark engine.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid reports whether f names a known flavor.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// OutputFormat specifies how build results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid reports whether f names a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Default paths, relative to the working directory.
const (
	DefaultContentDir = "content"
	DefaultTemplate   = "template.html"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
)

// Config is the root configuration structure for a site build.
type Config struct {
	// ContentDir holds the Markdown sources.
	ContentDir string `yaml:"content_dir"`

	// Template is the HTML template containing {{ Title }} and {{ Content }}.
	Template string `yaml:"template"`

	// StaticDir is copied verbatim into OutputDir.
	StaticDir string `yaml:"static_dir"`

	// OutputDir receives the generated site.
	OutputDir string `yaml:"output_dir"`

	// Engine selects the converter.
	Engine Engine `yaml:"engine"`

	// Flavor applies to the goldmark engine only.
	Flavor Flavor `yaml:"flavor"`

	// AnnotateCode adds a language class to code blocks (builtin engine).
	AnnotateCode bool `yaml:"annotate_code"`

	// Ignore contains glob patterns, relative to ContentDir, to skip.
	Ignore []string `yaml:"ignore"`

	// Clean resets OutputDir before building.
	Clean bool `yaml:"clean"`

	// CLI-level options (not persisted to config files).

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// Format selects the report format.
	Format OutputFormat `yaml:"-"`

	// DryRun renders pages without writing anything.
	DryRun bool `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		Template:   DefaultTemplate,
		StaticDir:  DefaultStaticDir,
		OutputDir:  DefaultOutputDir,
		Engine:     EngineBuiltin,
		Flavor:     FlavorCommonMark,
		Clean:      true,
		Format:     FormatText,
	}
}
