package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	html, err := Render("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderEscapesRawHTML(t *testing.T) {
	html, err := Render("before <script>alert(1)</script> after")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderTables(t *testing.T) {
	html, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}
