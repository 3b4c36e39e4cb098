package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownNoColorRendersText(t *testing.T) {
	out, err := MarkdownNoColor("# Summary\n\nThe video covers three topics.\n\n- intro\n- demo", 60)
	require.NoError(t, err)

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "three topics")
	assert.Contains(t, out, "intro")
	assert.NotContains(t, out, "\x1b[", "notty style must not emit ANSI escapes")
}

func TestMarkdownClampsTinyWidth(t *testing.T) {
	out, err := MarkdownNoColor("short text", 1)
	require.NoError(t, err)
	assert.Contains(t, out, "short text")
}

func TestTerminalWidthHasFallback(t *testing.T) {
	assert.Greater(t, TerminalWidth(), 0)
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
}
