package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdsite/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}", "go"},
		{"python", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"python import", "import os\nprint(os.getcwd())", "python"},
		{"javascript", "const x = () => { return 42; };\nconsole.log(x());", "javascript"},
		{"json", `{"key": "value", "number": 123}`, "json"},
		{"yaml", "key: value\nother: 123\nlist:\n  - item1\n  - item2", "yaml"},
		{"rust", "fn main() {\n    println!(\"Hello, world!\");\n}", "rust"},
		{"sql", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"dockerfile", "FROM golang:1.25\nRUN go build ./...", "dockerfile"},
		{"html", "<!DOCTYPE html>\n<html>\n<head><title>Test</title></head>\n<body></body>\n</html>", "html"},
		{"empty", "", langdetect.Unknown},
		{"blank", "  \n\t", langdetect.Unknown},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, langdetect.Detect([]byte(testCase.code)))
		})
	}
}
