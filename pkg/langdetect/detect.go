// Package langdetect guesses the language of fenced code block content so
// rendered pages can carry a language-X class for client-side highlighters.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined with confidence.
const Unknown = "text"

// rule recognizes a language from highly indicative content patterns.
type rule struct {
	lang  string
	match func(content []byte, trimmed []byte) bool
}

// rules run in order; the first match wins. Order matters: Go's "import ("
// must be claimed before the Python import check sees it.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rules = []rule{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(content, _ []byte) bool {
		s := string(content)
		switch {
		case strings.Contains(s, "def ") && strings.Contains(s, "):"):
			return true
		case strings.Contains(s, "__name__"), strings.Contains(s, "__main__"):
			return true
		case strings.Contains(s, "import ") && !strings.Contains(s, "import ("):
			return strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ")
		}
		return false
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(content, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
			(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
	}},
	{"sql", func(content, _ []byte) bool {
		upper := strings.TrimSpace(strings.ToUpper(string(content)))
		for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, keyword) {
				return true
			}
		}
		return false
	}},
	{"rust", func(content, _ []byte) bool {
		return containsAny(content, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(content, _ []byte) bool {
		return containsAny(content, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", func(content, _ []byte) bool {
		return yamlKeyCount(content) >= 2
	}},
}

// classifierCandidates limits the enry classifier to languages likely to
// appear in a static site.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns a lowercase language identifier for code, or Unknown.
//
// A shebang line is trusted first, then the pattern rules, then the enry
// classifier when it reports a confident result.
func Detect(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(code)
	for _, r := range rules {
		if r.match(code, trimmed) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

func containsAny(content []byte, needles ...string) bool {
	for _, needle := range needles {
		if bytes.Contains(content, []byte(needle)) {
			return true
		}
	}
	return false
}

// yamlKeyCount counts lines that look like "key: value" pairs or list items.
func yamlKeyCount(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

// normalize converts enry language names to class suffixes.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
