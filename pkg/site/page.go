// Package site assembles complete HTML pages from Markdown documents and a
// page template.
package site

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gomdsite/internal/logging"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
)

// Template placeholders.
const (
	PlaceholderTitle   = "{{ Title }}"
	PlaceholderContent = "{{ Content }}"
)

// ErrNoTitle is returned when a document does not open with a level-1 heading.
var ErrNoTitle = errors.New("no h1 title on first line")

//nolint:gochecknoglobals // Compiled once, read-only.
var titlePattern = regexp.MustCompile(`^#[^#]`)

// Page is a rendered page.
type Page struct {
	Title   string
	Content string
	HTML    string
}

// ExtractTitle returns the text of the level-1 heading on the first line of
// doc, with surrounding whitespace and '#' characters removed.
func ExtractTitle(doc string) (string, error) {
	first, _, _ := strings.Cut(doc, "\n")
	first = strings.TrimSpace(first)

	if !titlePattern.MatchString(first) {
		return "", ErrNoTitle
	}

	return strings.Trim(first, " #\t\n"), nil
}

// ApplyTemplate substitutes content and then title into tmpl. Every
// occurrence of each placeholder is replaced.
func ApplyTemplate(tmpl, title, content string) string {
	out := strings.ReplaceAll(tmpl, PlaceholderContent, content)
	return strings.ReplaceAll(out, PlaceholderTitle, title)
}

// RenderPage converts doc with engine and places it in tmpl.
func RenderPage(doc, tmpl string, engine Engine) (*Page, error) {
	content, err := engine.ToHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("convert with %s: %w", engine.Name(), err)
	}

	title, err := ExtractTitle(doc)
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:   title,
		Content: content,
		HTML:    ApplyTemplate(tmpl, title, content),
	}, nil
}

// GeneratePage reads the Markdown at src and the template at tmplPath,
// renders the page, and writes it atomically to dest.
func GeneratePage(ctx context.Context, src, tmplPath, dest string, engine Engine) (*Page, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("generating page", logging.FieldPath, src, logging.FieldOutput, dest,
		logging.FieldTemplate, tmplPath, logging.FieldEngine, engine.Name())

	doc, err := fsutil.ReadFile(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	tmpl, err := fsutil.ReadFile(ctx, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	page, err := RenderPage(string(doc), string(tmpl), engine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	if err := fsutil.WriteAtomic(ctx, dest, []byte(page.HTML), 0); err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}

	return page, nil
}
