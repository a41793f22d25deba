package deduce

import "math/bits"

// Candidates is a bitmask of possible digits 1..9 for a cell. Bit i holds
// digit i; bit 0 is unused. Kept as a plain uint16 so the whole board's
// candidate state is a fixed, hash-free [81]Candidates array.
type Candidates uint16

// AllCandidates returns a Candidates with every digit 1..9 set.
func AllCandidates() Candidates {
	return Candidates(0b1111111110)
}

// NewCandidates builds a Candidates bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// Has reports whether digit is a candidate.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

// Set returns c with digit added.
func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c | (1 << uint(digit))
}

// Clear returns c with digit removed.
func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > 9 {
		return c
	}
	return c &^ (1 << uint(digit))
}

// Count returns the number of candidate digits.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Only returns the sole candidate digit and true, or (0, false) if the
// mask does not hold exactly one digit.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)), true
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsEmpty reports whether no digit is a candidate.
func (c Candidates) IsEmpty() bool { return c == 0 }

// Intersect returns the candidates present in both masks.
func (c Candidates) Intersect(o Candidates) Candidates { return c & o }

// Union returns the candidates present in either mask.
func (c Candidates) Union(o Candidates) Candidates { return c | o }

// Subtract returns the candidates in c but not in o.
func (c Candidates) Subtract(o Candidates) Candidates { return c &^ o }

// Equals reports whether the two masks hold identical digits.
func (c Candidates) Equals(o Candidates) bool { return c == o }

// String renders the mask as "{1,4,9}" style, for debugging and tests.
func (c Candidates) String() string {
	digits := c.ToSlice()
	out := make([]byte, 0, 2+2*len(digits))
	out = append(out, '{')
	for i, d := range digits {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, byte('0'+d))
	}
	out = append(out, '}')
	return string(out)
}
