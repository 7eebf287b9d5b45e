// Package numtext normalizes learner-typed numeric input.
//
// Kids often type answers with a Japanese IME active, so full-width digits
// (１２３) are as common as ASCII ones. Normalization maps those to ASCII,
// strips everything that is not a digit or a minus sign, and parsing treats
// "no number here" as a regular result rather than an error.
package numtext

import (
	"errors"
	"strconv"
	"strings"
)

// fullWidthOffset is the code point distance between full-width digits
// (U+FF10-U+FF19) and their ASCII counterparts.
const fullWidthOffset = 0xFEE0

// Normalize converts full-width digits to ASCII and removes every rune
// outside [0-9-]. The result may be empty.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '０' && r <= '９' {
			r -= fullWidthOffset
		}
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAnswer normalizes raw and parses its leading base-10 integer.
// The second return value is false when no integer can be read: empty
// input, a lone minus sign, or stray minus signs with no digits.
// Values beyond the int range saturate per strconv semantics.
func ParseAnswer(raw string) (int, bool) {
	s := Normalize(raw)
	if s == "" {
		return 0, false
	}

	// Take the leading integer: optional sign, then consecutive digits.
	end := 0
	if s[0] == '-' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	lead := s[:end]
	if lead == "" || lead == "-" {
		return 0, false
	}

	n, err := strconv.Atoi(lead)
	if err != nil {
		// Atoi returns the saturated boundary value on range errors,
		// which is the accepted behavior for absurdly long input.
		if errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	}
	return n, true
}
