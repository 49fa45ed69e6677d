package textmodel

// Sentence is an atomic text block with no further decomposition.
type Sentence struct {
	TextBlock
}

// NewSentence wraps a single sentence string.
func NewSentence(an Analyzer, text string) *Sentence {
	return &Sentence{TextBlock: TextBlock{text: text, an: an}}
}

// Paragraph is a text block that lazily decomposes into an ordered
// sequence of sentences. Segmentation runs at most once per instance.
type Paragraph struct {
	TextBlock

	sentences []*Sentence
	segmented bool
}

// NewParagraph wraps a single paragraph string.
func NewParagraph(an Analyzer, text string) *Paragraph {
	return &Paragraph{TextBlock: TextBlock{text: text, an: an}}
}

// Sentences returns the paragraph's sentences, invoking the sentence
// splitter on first access and returning the cached sequence afterwards.
func (p *Paragraph) Sentences() []*Sentence {
	if !p.segmented {
		split := p.an.SplitSentences(p.text)
		p.sentences = make([]*Sentence, len(split))
		for i, s := range split {
			p.sentences[i] = NewSentence(p.an, s)
		}
		p.segmented = true
	}
	return p.sentences
}

// SentenceCount returns the number of sentences, segmenting first if
// needed.
func (p *Paragraph) SentenceCount() int { return len(p.Sentences()) }

// SentenceSegment forces segmentation now instead of on first read.
func (p *Paragraph) SentenceSegment() { p.Sentences() }
