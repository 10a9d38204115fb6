// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package normalize canonicalizes free-text actor names and movie titles for
// lookup. Queries and index keys pass through the same function, so equality
// and substring matching are locale-neutral: "Penélope Cruz", "penelope cruz"
// and " PENELOPE CRUZ " all reduce to "penelope cruz". Internal whitespace is
// kept as given, so a doubled space still differs from a single one.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newASCIIFold returns a transformer that decomposes to NFKD, strips combining
// marks, and drops any rune still outside ASCII. A chain holds buffer state
// while it runs, so each call of String builds its own.
func newASCIIFold() transform.Transformer {
	return transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
}

// String returns the canonical form of s: NFKD decomposition, combining marks
// removed, restricted to ASCII, lower-cased, and trimmed. Internal whitespace
// is preserved. The result is idempotent: String(String(s)) == String(s).
// An empty result is valid (e.g. for input consisting only of marks).
func String(s string) string {
	folded, _, err := transform.String(newASCIIFold(), s)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the raw input
		// so a malformed string still gets case-folded and trimmed.
		folded = s
	}
	return strings.TrimSpace(strings.ToLower(folded))
}
