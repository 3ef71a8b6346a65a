package stemmer

import (
	"strings"
	"sync"
	"unicode"
)

// rule is one Paice/Husk suffix rule. When a word ends in suffix, remove
// runes are cut and appendix is added. intact rules only fire on words no
// other rule has touched; stop ends stemming after the rule fires.
type rule struct {
	suffix   string
	intact   bool
	remove   int
	appendix string
	stop     bool
}

// lancasterRules is the standard Lancaster table in evaluation order.
// A zero remove with stop protects the ending from later rules.
var lancasterRules = []rule{
	{"ia", true, 2, "", true},
	{"a", true, 1, "", true},
	{"bb", false, 1, "", true},
	{"ytic", false, 3, "s", true},
	{"ic", false, 2, "", false},
	{"nc", false, 1, "t", false},
	{"dd", false, 1, "", true},
	{"ied", false, 3, "y", false},
	{"ceed", false, 2, "ss", true},
	{"eed", false, 1, "", true},
	{"ed", false, 2, "", false},
	{"hood", false, 4, "", false},
	{"e", false, 1, "", false},
	{"lief", false, 1, "v", true},
	{"if", false, 2, "", false},
	{"ing", false, 3, "", false},
	{"iag", false, 3, "y", true},
	{"ag", false, 2, "", false},
	{"gg", false, 1, "", true},
	{"th", true, 2, "", true},
	{"guish", false, 5, "ct", true},
	{"ish", false, 3, "", false},
	{"i", true, 1, "", true},
	{"i", false, 1, "y", false},
	{"ij", false, 1, "d", true},
	{"fuj", false, 1, "s", true},
	{"uj", false, 1, "d", true},
	{"oj", false, 1, "d", true},
	{"hej", false, 1, "r", true},
	{"verj", false, 1, "t", true},
	{"misj", false, 2, "t", true},
	{"nj", false, 1, "d", true},
	{"j", false, 1, "s", true},
	{"ifiabl", false, 6, "", true},
	{"iabl", false, 4, "y", true},
	{"abl", false, 3, "", false},
	{"ibl", false, 3, "", true},
	{"bil", false, 2, "l", false},
	{"cl", false, 1, "", true},
	{"iful", false, 4, "y", true},
	{"ful", false, 3, "", false},
	{"ul", false, 2, "", true},
	{"ial", false, 3, "", false},
	{"ual", false, 3, "", false},
	{"al", false, 2, "", false},
	{"ll", false, 1, "", true},
	{"ium", false, 3, "", true},
	{"um", true, 2, "", true},
	{"ism", false, 3, "", false},
	{"mm", false, 1, "", true},
	{"sion", false, 4, "j", false},
	{"xion", false, 4, "ct", true},
	{"ion", false, 3, "", false},
	{"ian", false, 3, "", false},
	{"an", false, 2, "", false},
	{"een", false, 0, "", true},
	{"en", false, 2, "", false},
	{"nn", false, 1, "", true},
	{"ship", false, 4, "", false},
	{"pp", false, 1, "", true},
	{"er", false, 2, "", false},
	{"ear", false, 0, "", true},
	{"ar", false, 2, "", true},
	{"or", false, 2, "", false},
	{"ur", false, 2, "", false},
	{"rr", false, 1, "", true},
	{"tr", false, 1, "", false},
	{"ier", false, 3, "y", false},
	{"ies", false, 3, "y", false},
	{"sis", false, 2, "", true},
	{"is", false, 2, "", false},
	{"ness", false, 4, "", false},
	{"ss", false, 0, "", true},
	{"ous", false, 3, "", false},
	{"us", true, 2, "", true},
	{"s", true, 1, "", false},
	{"s", false, 0, "", true},
	{"plicat", false, 4, "y", true},
	{"at", false, 2, "", false},
	{"ment", false, 4, "", false},
	{"ent", false, 3, "", false},
	{"ant", false, 3, "", false},
	{"ript", false, 2, "b", true},
	{"orpt", false, 2, "b", true},
	{"duct", false, 1, "", true},
	{"sumpt", false, 2, "", true},
	{"cept", false, 2, "iv", true},
	{"olut", false, 2, "v", true},
	{"sist", false, 0, "", true},
	{"ist", false, 3, "", false},
	{"tt", false, 1, "", true},
	{"iqu", false, 3, "", true},
	{"ogu", false, 1, "", true},
	{"siv", false, 3, "j", false},
	{"eiv", false, 0, "", true},
	{"iv", false, 2, "", false},
	{"bly", false, 1, "", false},
	{"ily", false, 3, "y", false},
	{"ply", false, 0, "", true},
	{"ly", false, 2, "", false},
	{"ogy", false, 1, "", true},
	{"phy", false, 1, "", true},
	{"omy", false, 1, "", true},
	{"opy", false, 1, "", true},
	{"ity", false, 3, "", false},
	{"ety", false, 3, "", false},
	{"lty", false, 2, "", true},
	{"istry", false, 5, "", true},
	{"ary", false, 3, "", false},
	{"ory", false, 3, "", false},
	{"ify", false, 3, "", true},
	{"ncy", false, 2, "t", false},
	{"acy", false, 3, "", false},
	{"iz", false, 2, "", false},
	{"yz", false, 1, "s", true},
}

var (
	rulesOnce   sync.Once
	rulesByLast map[rune][]rule
)

// rulesFor returns the rules for words whose stemmable part ends in last.
// The index is built once and only read afterwards.
func rulesFor(last rune) []rule {
	rulesOnce.Do(func() {
		rulesByLast = make(map[rune][]rule)
		for _, r := range lancasterRules {
			key := rune(r.suffix[len(r.suffix)-1])
			rulesByLast[key] = append(rulesByLast[key], r)
		}
	})
	return rulesByLast[last]
}

// Lancaster implements the Lancaster (Paice/Husk) stemmer. The zero value is
// ready to use and safe for concurrent use.
type Lancaster struct{}

// NewLancaster creates a Lancaster stemmer.
func NewLancaster() *Lancaster {
	return &Lancaster{}
}

// Stem lower-cases word and applies the override table or, failing that, the
// Lancaster rules until none fires.
func (l *Lancaster) Stem(word string) string {
	if stem, ok := Override(word); ok {
		return stem
	}
	word = strings.ToLower(word)
	intact := word
	runes := []rune(word)

	for {
		last := lastLetter(runes)
		if last < 0 {
			break
		}
		applied, stop := false, false
		current := string(runes)
		for _, r := range rulesFor(runes[last]) {
			if !strings.HasSuffix(current, r.suffix) {
				continue
			}
			if r.intact && current != intact {
				continue
			}
			if !acceptable(runes, r.remove) {
				continue
			}
			runes = append(runes[:len(runes)-r.remove:len(runes)-r.remove], []rune(r.appendix)...)
			applied, stop = true, r.stop
			break
		}
		if !applied || stop {
			break
		}
	}
	return string(runes)
}

// lastLetter returns the index of the final letter in the leading run of
// letters, or -1 when the word does not start with one. Rules are keyed by
// this letter, so "high-speed" is looked up under 'h'.
func lastLetter(runes []rune) int {
	last := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			break
		}
		last = i
	}
	return last
}

// acceptable reports whether removing remove runes leaves a valid stem:
// vowel-initial stems need two letters, others three with a vowel in the
// second or third position.
func acceptable(runes []rune, remove int) bool {
	left := len(runes) - remove
	if isVowel(runes[0]) {
		return left >= 2
	}
	if left < 3 {
		return false
	}
	return isVowel(runes[1]) || isVowel(runes[2])
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", r)
}
