package textmodel

import (
	"errors"
	"strings"
)

// ErrOutOfRange reports a unit number outside 1..UnitCount().
var ErrOutOfRange = errors.New("unit number out of range")

// TextSet is the composite text unit: an ordered sequence of members whose
// statistics aggregate bottom-up. Insertion order is preserved and is the
// only ordering; members are never re-sorted.
type TextSet struct {
	units []TextUnit
}

// NewTextSet builds a composite over the given members, in order.
func NewTextSet(units ...TextUnit) *TextSet {
	return &TextSet{units: units}
}

// Units returns the ordered member sequence.
func (s *TextSet) Units() []TextUnit { return s.units }

// UnitCount returns the number of direct members.
func (s *TextSet) UnitCount() int { return len(s.units) }

// Unit returns the member at the 1-based position number.
func (s *TextSet) Unit(number int) (TextUnit, error) {
	if number < 1 || number > len(s.units) {
		return nil, ErrOutOfRange
	}
	return s.units[number-1], nil
}

// Text returns the member texts joined by newlines, in member order.
func (s *TextSet) Text() string {
	parts := make([]string, len(s.units))
	for i, u := range s.units {
		parts[i] = u.Text()
	}
	return strings.Join(parts, "\n")
}

// UnfilteredCounter returns the element-wise sum of the members' token
// counters.
func (s *TextSet) UnfilteredCounter() Counter {
	total := make(Counter)
	for _, u := range s.units {
		total.Add(u.UnfilteredCounter())
	}
	return total
}

// CharacterCounter returns the element-wise sum of the members' character
// counters.
func (s *TextSet) CharacterCounter() CharCounter {
	total := make(CharCounter)
	for _, u := range s.units {
		total.Add(u.CharacterCounter())
	}
	return total
}

// BagOfWords concatenates each member's bag of words under the same
// options, in member order.
func (s *TextSet) BagOfWords(opts BagOptions) []string {
	var bag []string
	for _, u := range s.units {
		bag = append(bag, u.BagOfWords(opts)...)
	}
	return bag
}
