package textmodel

import "strings"

// fakeAnalyzer is a deterministic analyzer for model tests. It splits on
// whitespace, treats "." terminated fragments as sentences, and counts
// how often each service is invoked.
type fakeAnalyzer struct {
	tokenizeCalls int
	splitCalls    int
	stemCalls     int
}

func (f *fakeAnalyzer) Tokenize(text string) []string {
	f.tokenizeCalls++
	var tokens []string
	for _, field := range strings.Fields(text) {
		word := strings.TrimRight(field, ".,!?")
		if word != "" {
			tokens = append(tokens, word)
		}
		for _, p := range field[len(word):] {
			tokens = append(tokens, string(p))
		}
	}
	return tokens
}

func (f *fakeAnalyzer) SplitSentences(text string) []string {
	f.splitCalls++
	var sentences []string
	for _, part := range strings.SplitAfter(text, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func (f *fakeAnalyzer) IsWord(token string) bool {
	for _, r := range token {
		if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
			return false
		}
	}
	return token != ""
}

func (f *fakeAnalyzer) IsStopword(token string) bool {
	switch strings.ToLower(token) {
	case "a", "an", "the", "of", "and":
		return true
	}
	return false
}

func (f *fakeAnalyzer) Stem(token string) string {
	f.stemCalls++
	return strings.TrimSuffix(strings.ToLower(token), "s")
}
