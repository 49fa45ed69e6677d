package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/priorart/patdoc/internal/docsrc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*docsrc.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &docsrc.Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	// Build the section tree from heading levels with a stack.
	type stackEntry struct {
		sec   *docsrc.Section
		level int
	}
	top := &docsrc.Section{Heading: doc.Title}
	stack := []stackEntry{{sec: top, level: 0}}

	var currentText bytes.Buffer
	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			sec := stack[len(stack)-1].sec
			if sec.Text != "" {
				sec.Text += "\n\n" + t
			} else {
				sec.Text = t
			}
		}
		currentText.Reset()
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushText()
			level := node.Level
			heading := string(node.Text(src))

			sec := &docsrc.Section{Heading: heading}
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].sec
			parent.Children = append(parent.Children, sec)
			stack = append(stack, stackEntry{sec: sec, level: level})

		default:
			if t := extractText(n, src); t != "" {
				if currentText.Len() > 0 {
					currentText.WriteString("\n\n")
				}
				currentText.WriteString(t)
			}
		}
	}
	flushText()

	doc.Sections = top.Children
	// No headings at all: one flat text section.
	if len(doc.Sections) == 0 && top.Text != "" {
		doc.Sections = []*docsrc.Section{{Text: top.Text}}
	}
	return doc, nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
