// Package textmatch holds the normalization rules used to compare
// free-text skill and interest fields. Fields are prose or
// comma-separated lists typed by users, so matching is heuristic:
// lowercase, trim, comma-split, with substring containment as the
// fallback for entries that were never comma-delimited.
package textmatch

import "strings"

// Normalize lowercases and trims a single token.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokenize splits free text on commas and normalizes each piece. The
// split is kept verbatim — empty pieces from stray commas are not
// dropped, so token counts mirror what the user typed.
func Tokenize(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = Normalize(p)
	}
	return tokens
}

// ContainsToken reports whether tok appears verbatim in tokens.
func ContainsToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the needles appears as a
// substring of the normalized haystack.
func ContainsAny(haystack string, needles []string) bool {
	h := strings.ToLower(haystack)
	for _, n := range needles {
		if strings.Contains(h, n) {
			return true
		}
	}
	return false
}
