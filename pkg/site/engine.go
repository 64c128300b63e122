package site

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/langdetect"
	"github.com/yaklabco/gomdsite/pkg/markdown"
	"github.com/yaklabco/gomdsite/pkg/parser/goldmark"
)

// ErrUnknownEngine is returned for an engine name outside the supported set.
var ErrUnknownEngine = errors.New("unknown engine")

// Engine converts a Markdown document to an HTML fragment. Implementations
// must be safe for concurrent use.
type Engine interface {
	Name() string
	ToHTML(doc string) (string, error)
}

// NewEngine builds the engine selected by cfg.
func NewEngine(cfg *config.Config) (Engine, error) {
	switch cfg.Engine {
	case config.EngineBuiltin, "":
		var opts []markdown.Option
		if cfg.AnnotateCode {
			opts = append(opts, markdown.WithCodeLanguage(langdetect.Detect))
		}
		return markdown.New(opts...), nil

	case config.EngineGoldmark:
		return goldmark.New(string(cfg.Flavor)), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
}
