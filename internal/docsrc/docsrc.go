// Package docsrc holds the sectioned form of a parsed source document,
// the common output of every format parser and the input to patent
// assembly.
package docsrc

import "strings"

// Document is the root of a parsed source document.
type Document struct {
	Title    string     // from metadata or filename
	Sections []*Section // top-level sections
}

// Section is a recursive region of the source document.
type Section struct {
	Heading  string     // section heading, empty for plain text regions
	Text     string     // text content, may be empty for container sections
	Page     int        // source page (0 if not applicable)
	Children []*Section // subsections
}

// Walk visits every section depth-first in document order.
func (d *Document) Walk(fn func(s *Section)) {
	var visit func(secs []*Section)
	visit = func(secs []*Section) {
		for _, s := range secs {
			fn(s)
			visit(s.Children)
		}
	}
	visit(d.Sections)
}

// PlainText flattens all section text into a single newline-joined
// string, in document order. Used for content hashing and as a fallback
// when no structure survived parsing.
func (d *Document) PlainText() string {
	var sb strings.Builder
	d.Walk(func(s *Section) {
		if s.Text == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Text)
	})
	return sb.String()
}

// Paragraphs splits a section text on blank lines into trimmed,
// non-empty paragraph strings.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
