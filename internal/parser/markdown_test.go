package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Widget Patent

Intro text.

## Description

The widget has a handle.

### Embodiments

A folding handle.

## Claims

1. A widget.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}

	// Top level: one h1.
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(doc.Sections))
	}

	h1 := doc.Sections[0]
	if h1.Heading != "Widget Patent" {
		t.Errorf("expected h1 heading %q, got %q", "Widget Patent", h1.Heading)
	}
	if !strings.Contains(h1.Text, "Intro text.") {
		t.Errorf("expected h1 text to contain %q, got %q", "Intro text.", h1.Text)
	}

	if len(h1.Children) != 2 {
		t.Fatalf("expected 2 h2 children, got %d", len(h1.Children))
	}

	desc := h1.Children[0]
	if desc.Heading != "Description" {
		t.Errorf("expected %q, got %q", "Description", desc.Heading)
	}
	if !strings.Contains(desc.Text, "The widget has a handle.") {
		t.Errorf("expected description text, got %q", desc.Text)
	}
	if len(desc.Children) != 1 || desc.Children[0].Heading != "Embodiments" {
		t.Fatalf("expected one h3 child %q under %q, got %+v", "Embodiments", "Description", desc.Children)
	}

	cl := h1.Children[1]
	if cl.Heading != "Claims" {
		t.Errorf("expected %q, got %q", "Claims", cl.Heading)
	}
	if !strings.Contains(cl.Text, "1. A widget.") {
		t.Errorf("expected claims text, got %q", cl.Text)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section for headingless markdown, got %d", len(doc.Sections))
	}

	text := doc.Sections[0].Text
	if !strings.Contains(text, "Just some plain text.") {
		t.Errorf("expected text to contain first paragraph, got %q", text)
	}
	if !strings.Contains(text, "Another paragraph here.") {
		t.Errorf("expected text to contain second paragraph, got %q", text)
	}
}

func TestMarkdownParser_SkippedHeadingLevels(t *testing.T) {
	input := "# Top\n\n### Deep\n\nDeep content.\n\n## Shallow\n\nShallow content.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "levels.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(doc.Sections))
	}
	top := doc.Sections[0]
	if len(top.Children) != 2 {
		t.Fatalf("expected 2 children under top, got %d", len(top.Children))
	}
	if top.Children[0].Heading != "Deep" || top.Children[1].Heading != "Shallow" {
		t.Errorf("unexpected child headings %q, %q", top.Children[0].Heading, top.Children[1].Heading)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(doc.Sections))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
