package word

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// whitespaceRegex matches one or more whitespace characters
var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims s and collapses internal whitespace to single spaces.
func CollapseSpace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// NormalizeHeadword puts a headword in the canonical form used for history de-duplication:
// trimmed, internal whitespace collapsed, NFC composed. Case is preserved.
func NormalizeHeadword(s string) string {
	return norm.NFC.String(CollapseSpace(s))
}

// SameHeadword reports whether two headwords name the same entry for lookups typed by a user.
// History de-duplication uses exact equality of normalized headwords instead.
func SameHeadword(a, b string) bool {
	return strings.EqualFold(NormalizeHeadword(a), NormalizeHeadword(b))
}
