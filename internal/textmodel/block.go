package textmodel

// TextBlock is the leaf text unit: an immutable span of raw text with
// lazily computed, cached statistics. Caches only ever move from unset to
// set; a block shared across goroutines must be warmed first or guarded
// externally.
type TextBlock struct {
	text string
	an   Analyzer

	tokens    []string
	tokenized bool
	unfilt    Counter
	chars     CharCounter
	bags      map[BagOptions][]string
}

// NewTextBlock wraps a span of raw text.
func NewTextBlock(an Analyzer, text string) *TextBlock {
	return &TextBlock{text: text, an: an}
}

// Text returns the raw stored string, verbatim.
func (b *TextBlock) Text() string { return b.text }

// Analyzer returns the language service this block was built with.
func (b *TextBlock) Analyzer() Analyzer { return b.an }

// Tokens returns the uncleaned token sequence of the block's text,
// computing it on first access.
func (b *TextBlock) Tokens() []string {
	if !b.tokenized {
		b.tokens = b.an.Tokenize(b.text)
		b.tokenized = true
	}
	return b.tokens
}

// TokenCount returns the number of uncleaned tokens.
func (b *TextBlock) TokenCount() int { return len(b.Tokens()) }

// UnfilteredCounter maps each uncleaned token to its occurrence count.
// The returned map is cached; callers must not modify it.
func (b *TextBlock) UnfilteredCounter() Counter {
	if b.unfilt == nil {
		b.unfilt = CountTokens(b.Tokens())
	}
	return b.unfilt
}

// CharacterCounter maps each character of the raw text to its occurrence
// count. The returned map is cached; callers must not modify it.
func (b *TextBlock) CharacterCounter() CharCounter {
	if b.chars == nil {
		b.chars = CountChars(b.text)
	}
	return b.chars
}

// BagOfWords tokenizes the block and applies the selected cleaning steps
// in order: non-word removal, stopword removal, stemming. Tokens keep
// their original order and duplicates are retained. Results are memoized
// per option combination, so differing calls never see each other's cache.
func (b *TextBlock) BagOfWords(opts BagOptions) []string {
	if bag, ok := b.bags[opts]; ok {
		return bag
	}

	bag := make([]string, 0, b.TokenCount())
	for _, tok := range b.Tokens() {
		if opts.CleanNonWords && !b.an.IsWord(tok) {
			continue
		}
		if opts.CleanStopwords && b.an.IsStopword(tok) {
			continue
		}
		if opts.StemWords {
			tok = b.an.Stem(tok)
		}
		bag = append(bag, tok)
	}

	if b.bags == nil {
		b.bags = make(map[BagOptions][]string)
	}
	b.bags[opts] = bag
	return bag
}
