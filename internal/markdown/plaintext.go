// Package markdown provides plain-text extraction from note content.
// Note content is markdown-ish; title derivation and sentence scoring
// work on the extracted text, not the raw markup.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText renders markdown source to plain text. Headings, emphasis,
// code spans and links keep their visible text; markup characters are
// dropped.
func PlainText(source string) string {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.Kind() {
			case ast.KindParagraph, ast.KindHeading, ast.KindListItem:
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.AutoLink:
			b.Write(t.URL(src))
		case *ast.FencedCodeBlock:
			writeLines(&b, t.Lines(), src)
		case *ast.CodeBlock:
			writeLines(&b, t.Lines(), src)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func writeLines(b *strings.Builder, lines *text.Segments, src []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}
