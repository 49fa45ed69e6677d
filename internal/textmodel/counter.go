package textmodel

// Counter maps tokens to occurrence counts.
type Counter map[string]int

// Add merges other into c, summing counts for shared keys.
func (c Counter) Add(other Counter) {
	for k, n := range other {
		c[k] += n
	}
}

// Plus returns a new Counter holding the element-wise sum of c and other.
// Neither input is modified.
func (c Counter) Plus(other Counter) Counter {
	out := make(Counter, len(c)+len(other))
	out.Add(c)
	out.Add(other)
	return out
}

// Total returns the sum of all counts.
func (c Counter) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CountTokens builds a Counter from an ordered token sequence.
func CountTokens(tokens []string) Counter {
	c := make(Counter, len(tokens))
	for _, t := range tokens {
		c[t]++
	}
	return c
}

// CharCounter maps characters (runes) to occurrence counts.
type CharCounter map[rune]int

// Add merges other into c, summing counts for shared runes.
func (c CharCounter) Add(other CharCounter) {
	for r, n := range other {
		c[r] += n
	}
}

// Plus returns a new CharCounter holding the element-wise sum of c and other.
func (c CharCounter) Plus(other CharCounter) CharCounter {
	out := make(CharCounter, len(c)+len(other))
	out.Add(c)
	out.Add(other)
	return out
}

// CountChars builds a CharCounter from the runes of s.
func CountChars(s string) CharCounter {
	c := make(CharCounter)
	for _, r := range s {
		c[r]++
	}
	return c
}
