// Package nlp provides the language services the text model depends on:
// tokenization, sentence splitting, stopword detection and stemming.
// Everything is deterministic and order-preserving, which the model's
// lazy caches rely on.
package nlp

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// Pipeline implements textmodel.Analyzer for English text.
type Pipeline struct{}

// New returns the English pipeline.
func New() *Pipeline { return &Pipeline{} }

// Tokenize splits text into word and punctuation tokens, in input order.
// Words are runs of letters and digits (apostrophes stay inside a word, so
// "doesn't" is one token). Punctuation is emitted as separate tokens, with
// runs of the same mark kept together ("..." is one token).
func (p *Pipeline) Tokenize(text string) []string {
	var tokens []string
	var word, punct strings.Builder

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	flushPunct := func() {
		if punct.Len() > 0 {
			tokens = append(tokens, punct.String())
			punct.Reset()
		}
	}

	var lastPunct rune
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushPunct()
			word.WriteRune(r)
		case r == '\'' && word.Len() > 0:
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flushWord()
			flushPunct()
		default:
			flushWord()
			if punct.Len() > 0 && r != lastPunct {
				flushPunct()
			}
			punct.WriteRune(r)
			lastPunct = r
		}
	}
	flushWord()
	flushPunct()
	return tokens
}

// SplitSentences splits text at '.', '!' or '?' followed by whitespace or
// end of input. Results are trimmed; empty fragments are dropped.
func (p *Pipeline) SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\n' || text[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()
	return sentences
}

// IsWord reports whether a token is purely alphabetic.
func (p *Pipeline) IsWord(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsStopword reports whether a token is a common English function word.
// The check is case-insensitive.
func (p *Pipeline) IsStopword(token string) bool {
	_, ok := englishStopwords[strings.ToLower(token)]
	return ok
}

// Stem returns the Snowball (Porter2) English stem of a token.
func (p *Pipeline) Stem(token string) string {
	return snowballeng.Stem(token, false)
}
