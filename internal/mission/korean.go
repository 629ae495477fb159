package mission

import "unicode/utf8"

const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
)

// hasFinalConsonant reports whether the last syllable of s carries a
// final consonant. Non-Hangul endings count as open syllables.
func hasFinalConsonant(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r < hangulFirst || r > hangulLast {
		return false
	}
	return (r-hangulFirst)%28 != 0
}

// Vocative addresses a child by name: 민준아, 서아야.
func Vocative(name string) string {
	if hasFinalConsonant(name) {
		return name + "아"
	}
	return name + "야"
}

// ObjectName is the friendly object form: 민준이를, 서아를.
func ObjectName(name string) string {
	if hasFinalConsonant(name) {
		return name + "이를"
	}
	return name + "를"
}
