package utils

import (
	"regexp"
	"strings"
)

var alphaSpaceRe = regexp.MustCompile(`^[A-Za-z ]+$`)

// SanitizeInput strips characters commonly abused for injection before a
// value enters the draft. Mirrors what every form field goes through.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}
	s := strings.ReplaceAll(input, "--", "")
	s = strings.ReplaceAll(s, ";", "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = strings.ReplaceAll(s, "'", "''")
	return strings.TrimSpace(s)
}

// IsAlphaSpace reports whether s contains letters and spaces only.
func IsAlphaSpace(s string) bool {
	return alphaSpaceRe.MatchString(s)
}

// TitleCase uppercases the first letter of every word, used for sibling
// names and occupations.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// WordCount counts whitespace-separated words, used for tag length caps.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
