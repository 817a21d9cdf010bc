// Package query prepares operator input for table lookup.
//
// Sanitize is a cosmetic normalization step. It strips a handful of literal
// tokens and is trivially bypassed by alternate casing or encoding; it is not
// a security control and must not be reused as one. Lookups are plain string
// comparisons, so no input ever reaches an interpreter.
package query

import "strings"

// blockedTokens are matched case-sensitively and removed in this order.
var blockedTokens = []string{"<script>", "</script>", "DROP", "SELECT", "DELETE"}

var exitKeywords = map[string]struct{}{
	"exit": {},
	"quit": {},
	"bye":  {},
}

// Sanitize removes every occurrence of each blocked token, then trims and
// lowercases the result.
func Sanitize(raw string) string {
	for _, token := range blockedTokens {
		raw = strings.ReplaceAll(raw, token, "")
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsExitKeyword reports whether the raw, unsanitized line ends the session.
func IsExitKeyword(raw string) bool {
	_, ok := exitKeywords[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
