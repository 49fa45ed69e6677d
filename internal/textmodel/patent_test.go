package textmodel

import (
	"reflect"
	"strings"
	"testing"
)

// testClaimSet adapts a TextSet to the claim collaborator contract.
type testClaimSet struct {
	TextSet
}

func (c *testClaimSet) ClaimCount() int { return c.UnitCount() }

func newTestClaims(an Analyzer, texts ...string) *testClaimSet {
	units := make([]TextUnit, len(texts))
	for i, t := range texts {
		units[i] = NewTextBlock(an, t)
	}
	return &testClaimSet{TextSet: *NewTextSet(units...)}
}

func TestNewPatentDoc_RequiresClaims(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"A cat sat."})
	if _, err := NewPatentDoc(an, d, nil); err != ErrNoClaims {
		t.Errorf("expected ErrNoClaims, got %v", err)
	}
}

func TestPatentDoc_TextJoinsWithBlankLine(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"A cat sat.", "A dog ran."})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "1. A cat."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "A cat sat.\nA dog ran.\n\n1. A cat."
	if doc.Text() != want {
		t.Errorf("expected %q, got %q", want, doc.Text())
	}
}

func TestPatentDoc_AbsentDescriptionRendersEmpty(t *testing.T) {
	an := &fakeAnalyzer{}
	doc, err := NewPatentDoc(an, nil, newTestClaims(an, "1. A cat."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text() != "\n\n1. A cat." {
		t.Errorf("expected claims preceded by blank line, got %q", doc.Text())
	}
	if got := doc.UnfilteredCounter(); got.Total() == 0 {
		t.Error("expected claim tokens to survive absent description")
	}
}

func TestPatentDoc_CountersSumDescriptionAndClaims(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"cat dog"})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "dog fox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := doc.UnfilteredCounter()
	want := Counter{"cat": 1, "dog": 2, "fox": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	chars := doc.CharacterCounter()
	wantChars := CountChars("cat dog").Plus(CountChars("dog fox"))
	if !reflect.DeepEqual(chars, wantChars) {
		t.Errorf("expected %v, got %v", wantChars, chars)
	}
}

func TestPatentDoc_BagOfWordsDeduplicates(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"cat dog cat"})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "dog fox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := doc.BagOfWords(BagOptions{})
	want := []string{"cat", "dog", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected deduplicated first-seen order %v, got %v", want, got)
	}
}

func TestPatentDoc_ReadingTime(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"A cat sat on a mat in a hat."})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "1. A mat."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slow, err := doc.ReadingTime(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fast, err := doc.ReadingTime(200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slow <= 0 {
		t.Errorf("expected positive reading time, got %f", slow)
	}
	if fast >= slow {
		t.Errorf("expected faster rate to shorten reading time: %f vs %f", fast, slow)
	}
}

func TestPatentDoc_ReadingTimeRejectsNonPositiveRate(t *testing.T) {
	an := &fakeAnalyzer{}
	doc, err := NewPatentDoc(an, nil, newTestClaims(an, "1. A mat."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rate := range []float64{0, -50} {
		if _, err := doc.ReadingTime(rate); err == nil {
			t.Errorf("expected error for rate %v", rate)
		}
	}
}

func TestPatentDoc_EncodingRoundTrip(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"A cat sat."})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "1. A cat."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := doc.DecodePrintable(doc.EncodePrintable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != doc.Text() {
		t.Errorf("expected round trip to reproduce text, got %q", decoded)
	}
}

func TestPatentDoc_StringSummary(t *testing.T) {
	an := &fakeAnalyzer{}
	d := NewDescriptionFromStrings(an, []string{"A cat sat.", "A dog ran."})
	doc, err := NewPatentDoc(an, d, newTestClaims(an, "1. A cat.", "2. A dog."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.Number = "EP1234567A1"
	doc.Title = "Feline Support Apparatus"
	doc.Classifications = []string{"A47B 3/00"}

	got := doc.String()
	for _, want := range []string{"EP1234567A1", "Feline Support Apparatus", "2 paragraphs", "2 claims", "A47B 3/00"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected summary to contain %q, got %q", want, got)
		}
	}
}
