package listing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Normalize trims a field and collapses every internal whitespace run to a
// single space. Idempotent and total: empty input yields "".
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SplitKeywords splits a comma-separated keyword field, normalizing each
// part and dropping empties. Order is preserved.
func SplitKeywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = Normalize(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidEmail reports whether the address matches the standard pattern after
// trimming and lowercasing.
func ValidEmail(email string) bool {
	return emailRe.MatchString(CanonicalEmail(email))
}

// CanonicalEmail is the form emails are stored and compared in.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
