package textmodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/priorart/patdoc/internal/codec"
)

// ErrNoClaims reports construction of a patent document without a claim
// set. Whole-document text and statistics are undefined without one, so
// this fails fast instead of guessing an empty fallback.
var ErrNoClaims = errors.New("patent document requires a claim set")

// ClaimSet is the claim collaborator contract: a text unit that also
// knows how many claims it holds.
type ClaimSet interface {
	TextUnit
	ClaimCount() int
}

// DefaultReadingRate is a typical human reading speed in tokens per
// minute. Dense technical prose sits at the low end of the 100-200 range.
const DefaultReadingRate = 100.0

// PatentDoc is the top-level aggregate: a description, a claim set,
// optional figures, and bibliographic metadata.
type PatentDoc struct {
	Title           string
	Number          string
	Classifications []string

	desc    *Description
	claims  ClaimSet
	figures *Figures
	an      Analyzer
}

// NewPatentDoc composes a patent document. The claim set is required; the
// description may be nil and then contributes nothing to text or
// statistics.
func NewPatentDoc(an Analyzer, desc *Description, claims ClaimSet) (*PatentDoc, error) {
	if claims == nil {
		return nil, ErrNoClaims
	}
	return &PatentDoc{desc: desc, claims: claims, an: an}, nil
}

// Description returns the document's description, which may be nil.
func (d *PatentDoc) Description() *Description { return d.desc }

// Claims returns the document's claim set.
func (d *PatentDoc) Claims() ClaimSet { return d.claims }

// Figures returns the document's figures, which may be nil.
func (d *PatentDoc) Figures() *Figures { return d.figures }

// SetFigures attaches figure data to the document.
func (d *PatentDoc) SetFigures(f *Figures) { d.figures = f }

// Text returns the canonical whole-document text: description text and
// claim text joined by a blank line. An absent description renders as
// empty text before the separator.
func (d *PatentDoc) Text() string {
	descText := ""
	if d.desc != nil {
		descText = d.desc.Text()
	}
	return descText + "\n\n" + d.claims.Text()
}

// UnfilteredCounter sums the description's and claim set's token counters.
func (d *PatentDoc) UnfilteredCounter() Counter {
	if d.desc == nil {
		return d.claims.UnfilteredCounter().Plus(nil)
	}
	return d.desc.UnfilteredCounter().Plus(d.claims.UnfilteredCounter())
}

// CharacterCounter sums the description's and claim set's character
// counters.
func (d *PatentDoc) CharacterCounter() CharCounter {
	if d.desc == nil {
		return d.claims.CharacterCounter().Plus(nil)
	}
	return d.desc.CharacterCounter().Plus(d.claims.CharacterCounter())
}

// ReadingTime estimates minutes to read the whole document at rate tokens
// per minute.
func (d *PatentDoc) ReadingTime(rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("reading rate must be positive, got %v", rate)
	}
	return float64(len(d.an.Tokenize(d.Text()))) / rate, nil
}

// BagOfWords returns the union of the description's and claim set's bags
// under identical options, duplicates removed, in first-seen order.
func (d *PatentDoc) BagOfWords(opts BagOptions) []string {
	var joined []string
	if d.desc != nil {
		joined = append(joined, d.desc.BagOfWords(opts)...)
	}
	joined = append(joined, d.claims.BagOfWords(opts)...)

	seen := make(map[string]struct{}, len(joined))
	unique := make([]string, 0, len(joined))
	for _, tok := range joined {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
	}
	return unique
}

// EncodeCodepoints maps the document text to Unicode codepoints. Fully
// reversible.
func (d *PatentDoc) EncodeCodepoints() []int {
	return codec.EncodeCodepoints(d.Text())
}

// EncodePrintable maps the document text to the dense printable-alphabet
// codes. Characters outside the alphabet are substituted with the space
// code, so this is lossy for non-ASCII content.
func (d *PatentDoc) EncodePrintable() []int {
	return codec.EncodePrintable(d.Text())
}

// DecodePrintable reconstructs text from printable-alphabet codes.
func (d *PatentDoc) DecodePrintable(codes []int) (string, error) {
	return codec.DecodePrintable(codes)
}

// String summarizes the document for logs and listings.
func (d *PatentDoc) String() string {
	paraCount := 0
	if d.desc != nil {
		paraCount = d.desc.ParagraphCount()
	}
	return fmt.Sprintf(
		"<PatentDoc %s, title: %s - description with %d paragraphs, claimset with %d claims; classifications: %s>",
		d.Number, d.Title, paraCount, d.claims.ClaimCount(),
		strings.Join(d.Classifications, ", "),
	)
}
