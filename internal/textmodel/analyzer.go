// Package textmodel models a patent document as a hierarchy of text
// containers: atomic blocks (sentences, paragraphs, claims) that expose
// token and character statistics, and ordered composites that aggregate
// them. Derived structure is computed lazily and cached per instance.
package textmodel

// Analyzer is the language service text units depend on for tokenization,
// sentence splitting, stopword detection and stemming. Implementations must
// be deterministic: the lazy caches assume repeated calls over the same
// input yield the same output.
type Analyzer interface {
	// Tokenize splits text into an ordered sequence of word and
	// punctuation tokens.
	Tokenize(text string) []string

	// SplitSentences splits text into an ordered sequence of sentence
	// strings.
	SplitSentences(text string) []string

	// IsWord reports whether a token is an alphabetic word (as opposed
	// to punctuation or a number).
	IsWord(token string) bool

	// IsStopword reports whether a token is a common function word.
	IsStopword(token string) bool

	// Stem returns the morphological root of a token.
	Stem(token string) string
}

// BagOptions selects the cleaning steps applied by BagOfWords. The zero
// value applies no cleaning. BagOptions is comparable and doubles as the
// memoization key, so each distinct combination gets its own cache slot.
type BagOptions struct {
	CleanNonWords  bool `json:"clean_non_words"` // drop tokens that are not alphabetic words
	CleanStopwords bool `json:"clean_stopwords"` // drop stopwords
	StemWords      bool `json:"stem_words"`      // stem the remaining tokens
}

// TextUnit is the capability shared by leaf blocks and composites: raw
// text plus derived lexical statistics.
type TextUnit interface {
	Text() string
	UnfilteredCounter() Counter
	CharacterCounter() CharCounter
	BagOfWords(opts BagOptions) []string
}
