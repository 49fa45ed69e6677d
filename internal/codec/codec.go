// Package codec converts document text to and from integer sequences for
// numeric downstream consumers such as character-level models.
//
// Two modes exist. Codepoint mode is a total bijection between runes and
// their Unicode codepoints. Printable mode maps a fixed 98-character
// alphabet to the dense range 0..97: small and stable, which suits
// integer-indexed vocabularies, at the documented cost of losing any
// character outside the alphabet.
package codec

import "fmt"

// Alphabet is the fixed printable alphabet, in code order: digits,
// lowercase, uppercase, ASCII punctuation, then space, tab, newline and
// carriage return. Downstream consumers index against this exact order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r"

// AlphabetSize is the number of characters in Alphabet.
const AlphabetSize = 98

// ErrInvalidCode reports a printable-mode code outside 0..97.
var ErrInvalidCode = fmt.Errorf("code outside printable alphabet range 0..%d", AlphabetSize-1)

var (
	printableCode = buildCodeTable()
	spaceCode     = printableCode[' ']
)

func buildCodeTable() map[rune]int {
	table := make(map[rune]int, AlphabetSize)
	for i, r := range Alphabet {
		table[r] = i
	}
	return table
}

// SpaceCode returns the code assigned to the space character, the
// substitution target for out-of-alphabet input.
func SpaceCode() int { return spaceCode }

// EncodeCodepoints maps each character of text to its Unicode codepoint.
func EncodeCodepoints(text string) []int {
	codes := make([]int, 0, len(text))
	for _, r := range text {
		codes = append(codes, int(r))
	}
	return codes
}

// DecodeCodepoints reconstructs text from Unicode codepoints. Inverse of
// EncodeCodepoints.
func DecodeCodepoints(codes []int) string {
	runes := make([]rune, len(codes))
	for i, c := range codes {
		runes[i] = rune(c)
	}
	return string(runes)
}

// EncodePrintable maps each character of text to its printable-alphabet
// code. Characters outside the alphabet are silently substituted with the
// space code; this is defined lossy behavior, not an error.
func EncodePrintable(text string) []int {
	codes := make([]int, 0, len(text))
	for _, r := range text {
		code, ok := printableCode[r]
		if !ok {
			code = spaceCode
		}
		codes = append(codes, code)
	}
	return codes
}

// DecodePrintable reconstructs text from printable-alphabet codes. It
// fails on any code outside 0..97 rather than substituting.
func DecodePrintable(codes []int) (string, error) {
	runes := make([]rune, len(codes))
	alphabet := []rune(Alphabet)
	for i, c := range codes {
		if c < 0 || c >= AlphabetSize {
			return "", fmt.Errorf("position %d: code %d: %w", i, c, ErrInvalidCode)
		}
		runes[i] = alphabet[c]
	}
	return string(runes), nil
}
