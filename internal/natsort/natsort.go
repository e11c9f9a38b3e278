// Package natsort orders strings the way people read them: embedded digit
// runs compare by numeric value, so "sim2" sorts before "sim10".
package natsort

import (
	"slices"
	"strings"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b in natural order.
//
// Both strings are split into alternating digit and non-digit runs. Digit
// runs compare by numeric value (any length, leading zeros ignored); other
// runs compare bytewise. A digit run sorts before a non-digit run. When every
// run ties ("01" vs "1"), the plain bytewise order of a and b decides, so
// Compare is a total order.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		da, db := isDigit(a[i]), isDigit(b[j])
		switch {
		case da && db:
			ra, ni := digitRun(a, i)
			rb, nj := digitRun(b, j)
			if c := compareNumeric(ra, rb); c != 0 {
				return c
			}
			i, j = ni, nj
		case da:
			return -1
		case db:
			return 1
		default:
			ra, ni := textRun(a, i)
			rb, nj := textRun(b, j)
			if c := strings.Compare(ra, rb); c != 0 {
				return c
			}
			i, j = ni, nj
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Strings sorts a slice of strings in place in natural order.
func Strings(s []string) {
	slices.SortFunc(s, Compare)
}

// Sorted returns a naturally ordered copy of s.
func Sorted(s []string) []string {
	out := slices.Clone(s)
	Strings(out)
	return out
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func digitRun(s string, start int) (string, int) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[start:end], end
}

func textRun(s string, start int) (string, int) {
	end := start
	for end < len(s) && !isDigit(s[end]) {
		end++
	}
	return s[start:end], end
}

// compareNumeric compares two digit runs by value without parsing them,
// so runs longer than any integer type still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
