package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Document is rendered markdown with its YAML frontmatter split off.
type Document struct {
	HTML []byte
	Meta map[string]any
}

// String returns a frontmatter value when it is a string.
func (d *Document) String(key string) string {
	v, _ := d.Meta[key].(string)
	return v
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Render converts source in a single pass. The frontmatter block is never
// part of the HTML.
func (p *Parser) Render(source []byte) (*Document, error) {
	pc := parser.NewContext()
	var buf bytes.Buffer

	err := p.md.Convert(source, &buf, parser.WithContext(pc))
	if err != nil {
		return nil, err
	}

	return &Document{HTML: buf.Bytes(), Meta: metaFrom(pc)}, nil
}

// ExtractFrontmatter parses source without rendering it.
func (p *Parser) ExtractFrontmatter(source []byte) map[string]any {
	pc := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))
	return metaFrom(pc)
}

// metaFrom decodes the frontmatter captured in pc. Missing or invalid
// frontmatter yields an empty map.
func metaFrom(pc parser.Context) map[string]any {
	data := frontmatter.Get(pc)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	if err := data.Decode(&meta); err != nil || meta == nil {
		return make(map[string]any)
	}
	return meta
}
