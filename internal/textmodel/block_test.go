package textmodel

import (
	"reflect"
	"testing"

	"github.com/priorart/patdoc/internal/nlp"
)

func TestTextBlock_TextVerbatim(t *testing.T) {
	raw := "  A cat sat.  "
	b := NewTextBlock(&fakeAnalyzer{}, raw)
	if b.Text() != raw {
		t.Errorf("expected text %q, got %q", raw, b.Text())
	}
}

func TestTextBlock_UnfilteredCounter(t *testing.T) {
	b := NewTextBlock(&fakeAnalyzer{}, "a cat and a dog.")
	got := b.UnfilteredCounter()
	want := Counter{"a": 2, "cat": 1, "and": 1, "dog": 1, ".": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected counter %v, got %v", want, got)
	}
}

func TestTextBlock_TokenizesOnce(t *testing.T) {
	an := &fakeAnalyzer{}
	b := NewTextBlock(an, "a cat sat.")
	b.Tokens()
	b.UnfilteredCounter()
	b.BagOfWords(BagOptions{})
	if an.tokenizeCalls != 1 {
		t.Errorf("expected 1 tokenize call, got %d", an.tokenizeCalls)
	}
}

func TestTextBlock_CharacterCounter(t *testing.T) {
	b := NewTextBlock(&fakeAnalyzer{}, "abba")
	got := b.CharacterCounter()
	want := CharCounter{'a': 2, 'b': 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected counter %v, got %v", want, got)
	}
}

func TestTextBlock_BagOfWordsOptionCombinations(t *testing.T) {
	tests := []struct {
		name string
		opts BagOptions
		want []string
	}{
		{
			name: "no cleaning",
			opts: BagOptions{},
			want: []string{"The", "cats", "and", "dogs", "ran", "."},
		},
		{
			name: "non-words removed",
			opts: BagOptions{CleanNonWords: true},
			want: []string{"The", "cats", "and", "dogs", "ran"},
		},
		{
			name: "non-words and stopwords removed",
			opts: BagOptions{CleanNonWords: true, CleanStopwords: true},
			want: []string{"cats", "dogs", "ran"},
		},
		{
			name: "full cleaning with stemming",
			opts: BagOptions{CleanNonWords: true, CleanStopwords: true, StemWords: true},
			want: []string{"cat", "dog", "ran"},
		},
	}

	b := NewTextBlock(&fakeAnalyzer{}, "The cats and dogs ran.")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.BagOfWords(tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTextBlock_CacheIsolatedPerOptionSet(t *testing.T) {
	// Interleave differing option calls on the same block: each must keep
	// returning its own result, never a previously cached other variant.
	b := NewTextBlock(&fakeAnalyzer{}, "The cats ran.")

	plain := b.BagOfWords(BagOptions{})
	cleaned := b.BagOfWords(BagOptions{CleanNonWords: true, CleanStopwords: true})
	plainAgain := b.BagOfWords(BagOptions{})
	cleanedAgain := b.BagOfWords(BagOptions{CleanNonWords: true, CleanStopwords: true})

	if !reflect.DeepEqual(plain, plainAgain) {
		t.Errorf("plain bag changed between calls: %v vs %v", plain, plainAgain)
	}
	if !reflect.DeepEqual(cleaned, cleanedAgain) {
		t.Errorf("cleaned bag changed between calls: %v vs %v", cleaned, cleanedAgain)
	}
	if reflect.DeepEqual(plain, cleaned) {
		t.Error("expected differing results for differing options")
	}
}

func TestTextBlock_BagOfWordsRealEnglish(t *testing.T) {
	// Against the real pipeline: punctuation and "the" drop out, word
	// order and duplicates survive, stemming normalizes "runs".
	b := NewTextBlock(nlp.New(), "The quick, quick fox runs.")

	got := b.BagOfWords(BagOptions{CleanNonWords: true, CleanStopwords: true})
	want := []string{"quick", "quick", "fox", "runs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	stemmed := b.BagOfWords(BagOptions{CleanNonWords: true, CleanStopwords: true, StemWords: true})
	wantStemmed := []string{"quick", "quick", "fox", "run"}
	if !reflect.DeepEqual(stemmed, wantStemmed) {
		t.Errorf("expected %v, got %v", wantStemmed, stemmed)
	}
}
