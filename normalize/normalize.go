// Package normalize turns raw document text into the canonical form the
// similarity engine tokenizes: lower-case, stripped of a fixed punctuation
// set, Unicode-composed and single-spaced.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Punctuation lists every rune removed from document text. Apostrophes and
// hyphens are kept so contractions and compounds stay single tokens.
const Punctuation = ",.?!()¿¡@#$€£¥"

var punctuationRemover = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(Punctuation))
	for _, r := range Punctuation {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}()

// Normalize lower-cases text, removes Punctuation, composes it to NFC and
// collapses whitespace runs into single spaces. It never fails and
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser keeps state, so each call gets its own.
	text = cases.Lower(language.Und).String(text)
	text = punctuationRemover.Replace(text)
	text = norm.NFC.String(text)
	return collapseSpace(text)
}

func collapseSpace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	pending := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			pending = sb.Len() > 0
			continue
		}
		if pending {
			sb.WriteByte(' ')
			pending = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
