// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make converts a title to a URL-friendly slug: accents are decomposed and
// stripped, the result is lowercased, anything outside [a-z0-9 -] is removed,
// whitespace runs become single hyphens and repeated hyphens collapse.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = invalidChars.ReplaceAllString(result, "")
	result = whitespaceRuns.ReplaceAllString(strings.TrimSpace(result), "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValid reports whether s is a well-formed slug.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	return true
}
