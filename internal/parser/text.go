package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/priorart/patdoc/internal/docsrc"
)

// TextParser handles plain text files. Short all-caps lines ("BACKGROUND",
// "CLAIMS") are treated as section headings, the common convention in
// plain-text patent publications; everything else accumulates into
// blank-line separated paragraphs under the current section.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*docsrc.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &docsrc.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	current := &docsrc.Section{}
	var para strings.Builder

	flushPara := func() {
		if para.Len() > 0 {
			if current.Text != "" {
				current.Text += "\n\n"
			}
			current.Text += para.String()
			para.Reset()
		}
	}
	flushSection := func() {
		flushPara()
		if current.Heading != "" || current.Text != "" {
			doc.Sections = append(doc.Sections, current)
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushPara()
		case isHeadingLine(trimmed):
			flushSection()
			current = &docsrc.Section{Heading: trimmed}
		default:
			if para.Len() > 0 {
				para.WriteString("\n")
			}
			para.WriteString(line)
		}
	}
	flushSection()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// isHeadingLine reports whether a trimmed line looks like a section
// heading: short, no terminal punctuation, and no lowercase letters.
func isHeadingLine(line string) bool {
	if len(line) == 0 || len(line) > 60 {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ",") {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
