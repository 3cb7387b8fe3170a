package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGFM(t *testing.T) {
	doc, err := NewParser().Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n- [x] done\n"))

	require.NoError(t, err)
	assert.Contains(t, string(doc.HTML), "<table>")
	assert.Contains(t, string(doc.HTML), `type="checkbox"`)
	assert.Empty(t, doc.Meta)
}

func TestRenderSplitsFrontmatter(t *testing.T) {
	source := []byte("---\ntitle: Weekly review\nstreak: 3\n---\n# Hello\n")

	doc, err := NewParser().Render(source)

	require.NoError(t, err)
	assert.Equal(t, "Weekly review", doc.String("title"))
	assert.Equal(t, 3, doc.Meta["streak"])
	assert.Empty(t, doc.String("streak"))
	assert.NotContains(t, string(doc.HTML), "streak: 3")
	assert.Contains(t, string(doc.HTML), `<h1 id="hello">Hello</h1>`)
}

func TestExtractFrontmatter(t *testing.T) {
	p := NewParser()

	meta := p.ExtractFrontmatter([]byte("---\ngenerated: \"2026-10-19\"\n---\nbody\n"))
	assert.Equal(t, "2026-10-19", meta["generated"])

	assert.Empty(t, p.ExtractFrontmatter([]byte("plain text")))
	assert.Empty(t, p.ExtractFrontmatter([]byte("---\n: [broken\n---\n")))
}
