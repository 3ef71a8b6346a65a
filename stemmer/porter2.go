package stemmer

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Porter2 stems English words with the Snowball Porter2 algorithm.
type Porter2 struct {
	language string
}

// NewPorter2 creates an English Porter2 stemmer.
func NewPorter2() *Porter2 {
	return &Porter2{language: "english"}
}

// Stem returns the Porter2 stem of word. Words snowball rejects are returned
// lower-cased and otherwise unchanged.
func (p *Porter2) Stem(word string) string {
	if stem, ok := Override(word); ok {
		return stem
	}
	word = strings.ToLower(word)
	stemmed, err := snowball.Stem(word, p.language, false)
	if err != nil {
		return word
	}
	return stemmed
}
