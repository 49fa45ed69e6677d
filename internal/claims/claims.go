// Package claims models the claim set of a patent document. Claims are
// text blocks with a claim number and an optional dependency on an
// earlier claim; the set exposes the same text-unit contract as the rest
// of the document model.
package claims

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/priorart/patdoc/internal/textmodel"
)

// ErrNoClaims reports claim text with no recoverable claims.
var ErrNoClaims = errors.New("no claims found in text")

// Claim is a single patent claim.
type Claim struct {
	*textmodel.TextBlock

	number     int
	dependency int
}

var dependencyRe = regexp.MustCompile(`(?i)\bclaims?\s+(\d+)`)

// NewClaim wraps a claim text with its 1-based claim number. The
// dependency is detected from the first "claim N" reference in the text;
// a claim without one is independent.
func NewClaim(an textmodel.Analyzer, number int, text string) *Claim {
	c := &Claim{
		TextBlock: textmodel.NewTextBlock(an, text),
		number:    number,
	}
	if m := dependencyRe.FindStringSubmatch(text); m != nil {
		if dep, err := strconv.Atoi(m[1]); err == nil && dep < number {
			c.dependency = dep
		}
	}
	return c
}

// Number returns the claim's 1-based number.
func (c *Claim) Number() int { return c.number }

// Dependency returns the number of the claim this one depends on, or 0
// for an independent claim.
func (c *Claim) Dependency() int { return c.dependency }

// IsIndependent reports whether the claim depends on no other claim.
func (c *Claim) IsIndependent() bool { return c.dependency == 0 }

// ClaimSet is the ordered set of claims of a patent document. It
// satisfies textmodel.ClaimSet.
type ClaimSet struct {
	*textmodel.TextSet

	claims []*Claim
}

// NewClaimSet builds a claim set from claim objects, in order.
func NewClaimSet(cs []*Claim) *ClaimSet {
	units := make([]textmodel.TextUnit, len(cs))
	for i, c := range cs {
		units[i] = c
	}
	return &ClaimSet{TextSet: textmodel.NewTextSet(units...), claims: cs}
}

// Claims returns the ordered claim sequence.
func (s *ClaimSet) Claims() []*Claim { return s.claims }

// ClaimCount returns the number of claims.
func (s *ClaimSet) ClaimCount() int { return len(s.claims) }

// GetClaim returns the claim at the 1-based position number.
func (s *ClaimSet) GetClaim(number int) (*Claim, error) {
	if number < 1 || number > len(s.claims) {
		return nil, textmodel.ErrOutOfRange
	}
	return s.claims[number-1], nil
}

// IndependentClaims returns the claims that depend on no other claim.
func (s *ClaimSet) IndependentClaims() []*Claim {
	var out []*Claim
	for _, c := range s.claims {
		if c.IsIndependent() {
			out = append(out, c)
		}
	}
	return out
}

var claimStartRe = regexp.MustCompile(`^\s*(\d+)\s*[.)]\s+`)

// Parse splits a claims section into numbered claims. A claim starts at a
// line with a leading "N." or "N)" marker; continuation lines attach to
// the current claim. Text with no markers becomes a single claim.
func Parse(an textmodel.Analyzer, text string) (*ClaimSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoClaims
	}

	var cs []*Claim
	var current strings.Builder
	currentNum := 0

	flush := func() {
		t := strings.TrimSpace(current.String())
		if t != "" && currentNum > 0 {
			cs = append(cs, NewClaim(an, currentNum, t))
		}
		current.Reset()
	}

	for rest := text; rest != ""; {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i+1], rest[i+1:]
		} else {
			line, rest = rest, ""
		}
		if m := claimStartRe.FindStringSubmatch(line); m != nil {
			flush()
			currentNum, _ = strconv.Atoi(m[1])
			line = line[len(m[0]):]
		}
		if currentNum > 0 {
			current.WriteString(line)
		}
	}
	flush()

	if len(cs) == 0 {
		// No numbering markers: treat the whole text as one claim.
		cs = append(cs, NewClaim(an, 1, strings.TrimSpace(text)))
	}
	return NewClaimSet(cs), nil
}
