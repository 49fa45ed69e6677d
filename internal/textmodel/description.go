package textmodel

// Description is the ordered set of paragraphs of a patent document.
type Description struct {
	TextSet

	paras []*Paragraph
}

// NewDescription builds a description from paragraph objects, in order.
func NewDescription(paras ...*Paragraph) *Description {
	units := make([]TextUnit, len(paras))
	for i, p := range paras {
		units[i] = p
	}
	return &Description{TextSet: TextSet{units: units}, paras: paras}
}

// NewDescriptionFromStrings wraps each string as a new paragraph.
func NewDescriptionFromStrings(an Analyzer, texts []string) *Description {
	paras := make([]*Paragraph, len(texts))
	for i, t := range texts {
		paras[i] = NewParagraph(an, t)
	}
	return NewDescription(paras...)
}

// NewDescriptionFromText treats a single undivided string as a
// one-paragraph description. Splitting a large string into paragraphs is
// the caller's responsibility.
func NewDescriptionFromText(an Analyzer, text string) *Description {
	return NewDescription(NewParagraph(an, text))
}

// Paragraphs returns the ordered paragraph sequence.
func (d *Description) Paragraphs() []*Paragraph { return d.paras }

// GetParagraph returns the paragraph at the 1-based position number.
func (d *Description) GetParagraph(number int) (*Paragraph, error) {
	if number < 1 || number > len(d.paras) {
		return nil, ErrOutOfRange
	}
	return d.paras[number-1], nil
}

// ParagraphCount returns the number of paragraphs.
func (d *Description) ParagraphCount() int { return len(d.paras) }

// SentenceCount returns the sum of sentence counts across paragraphs,
// segmenting any paragraph not yet warmed.
func (d *Description) SentenceCount() int {
	total := 0
	for _, p := range d.paras {
		total += p.SentenceCount()
	}
	return total
}

// SentenceSegment eagerly segments every paragraph into sentences.
func (d *Description) SentenceSegment() {
	for _, p := range d.paras {
		p.SentenceSegment()
	}
}

// Figures is a placeholder for structured figure data. Nothing is modeled
// yet beyond its presence on a document.
type Figures struct{}
