package hacker

import "unicode/utf8"

// Commonality returns the number of positions at which a and b hold the same
// character. Characters are compared as runes, and positions past the end of
// the shorter string count for nothing.
func Commonality(a, b string) int {
	n := 0
	for len(a) > 0 && len(b) > 0 {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		if ra == rb && (ra != utf8.RuneError || sa > 1) {
			n++
		}
		a, b = a[sa:], b[sb:]
	}
	return n
}
