package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// PageSource locates one content page and its output file.
type PageSource struct {
	// Source is the Markdown file path.
	Source string

	// Rel is Source relative to the content directory, slash-separated.
	Rel string

	// Output is the HTML file path.
	Output string
}

// Discover finds Markdown pages under opts.ContentDir. Hidden files and
// directories are skipped, as is anything matching opts.Ignore. The result
// is sorted by relative path.
func Discover(ctx context.Context, opts Options) ([]PageSource, error) {
	root := filepath.Clean(opts.ContentDir)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", root)
	}

	extensions := opts.effectiveExtensions()
	var pages []PageSource

	err = filepath.WalkDir(root, func(file string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			return walkErr
		}

		if file == root {
			return nil
		}

		rel, err := filepath.Rel(root, file)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		hidden := strings.HasPrefix(entry.Name(), ".")
		ignored := matchesAny(rel, opts.Ignore)

		if entry.IsDir() {
			if hidden || ignored {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden || ignored || !entry.Type().IsRegular() || !hasExtension(file, extensions) {
			return nil
		}

		pages = append(pages, PageSource{
			Source: file,
			Rel:    rel,
			Output: OutputPath(opts.OutputDir, rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content dir %s: %w", root, err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Rel < pages[j].Rel })
	return pages, nil
}

// OutputPath maps a slash-separated content-relative path to its HTML file
// under outputDir: "blog/post.md" becomes outputDir/blog/post.html.
func OutputPath(outputDir, rel string) string {
	base := strings.TrimSuffix(rel, path.Ext(rel))
	return filepath.Join(outputDir, filepath.FromSlash(base+".html"))
}

func hasExtension(file string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return lo.ContainsBy(extensions, func(e string) bool { return strings.ToLower(e) == ext })
}

func matchesAny(rel string, patterns []string) bool {
	return lo.SomeBy(patterns, func(pattern string) bool { return matchGlob(rel, pattern) })
}

// matchGlob matches a slash-separated path against a glob pattern. Besides
// filepath.Match syntax it accepts "dir/**" (anything under dir) and
// "**/name" (name at any depth). Patterns without a slash also match the
// base name.
func matchGlob(rel, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
			return true
		}
	}

	if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
		parts := strings.Split(rel, "/")
		for i := range parts {
			if matchGlob(strings.Join(parts[i:], "/"), suffix) {
				return true
			}
		}
		return false
	}

	if matched, err := path.Match(pattern, rel); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		matched, err := path.Match(pattern, path.Base(rel))
		return err == nil && matched
	}

	return false
}
