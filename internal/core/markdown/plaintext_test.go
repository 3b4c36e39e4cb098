package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text untouched", "just words", "just words"},
		{"headers", "# Title\n## Section\n###### Deep", "Title\nSection\nDeep"},
		{"bold and italic", "**bold** and *italic*", "bold and italic"},
		{"underscore emphasis", "__strong__ and _soft_", "strong and soft"},
		{"strikethrough", "~~gone~~ kept", "gone kept"},
		{"inline code", "run `go test` now", "run go test now"},
		{"code block removed", "before\n```go\nfmt.Println()\n```\nafter", "before\n\nafter"},
		{"link", "see [the docs](https://example.com)", "see the docs"},
		{"image keeps alt", "![diagram](https://example.com/a.png)", "diagram"},
		{"bullet list", "- one\n* two\n+ three", "one\ntwo\nthree"},
		{"numbered list", "1. first\n2. second", "first\nsecond"},
		{"blockquote", "> quoted\n>also", "quoted\nalso"},
		{"horizontal rule", "above\n\n---\n\nbelow", "above\n\nbelow"},
		{"collapses blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"trims", "\n\n  text  \n\n", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPlainText(tt.input))
		})
	}
}

func TestToPlainTextSummary(t *testing.T) {
	summary := "## Key Points\n\n- **Go** is *fast*\n- Uses `goroutines`\n\n> Worth it\n\nRead [more](https://go.dev)."

	expected := "Key Points\n\nGo is fast\nUses goroutines\n\nWorth it\n\nRead more."
	assert.Equal(t, expected, ToPlainText(summary))
}
