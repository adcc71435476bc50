package extract

import (
	"regexp"
)

var (
	emailShape = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneNoise = regexp.MustCompile(`[\s\-()+]`)
	allDigits  = regexp.MustCompile(`^[0-9]+$`)
)

// ValidEmail reports whether s is a whole email address of the shape
// local@domain.tld. No normalization is performed.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// ValidPhone strips whitespace, hyphens, parentheses and plus signs, then
// requires at least 10 remaining characters, all digits. No country-code
// awareness.
func ValidPhone(s string) bool {
	clean := phoneNoise.ReplaceAllString(s, "")
	return len(clean) >= 10 && allDigits.MatchString(clean)
}
