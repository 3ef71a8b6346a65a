// Package stemmer reduces word tokens to stems. The default algorithm is the
// Lancaster (Paice/Husk) stemmer; Porter2 from the Snowball project is
// available as an alternative. Both consult the same table of irregular
// forms before running their suffix rules.
package stemmer

import (
	"fmt"
	"strings"
)

// Stemmer reduces a single word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Algorithm names a stemming algorithm.
type Algorithm string

const (
	AlgorithmLancaster Algorithm = "lancaster"
	AlgorithmPorter2   Algorithm = "porter2"
)

// overrides maps irregular forms to fixed stems. Keys are lower-case.
var overrides = map[string]string{
	"can't":  "can",
	"won't":  "wo",
	"don't":  "do",
	"can’t": "can",
	"won’t": "wo",
	"don’t": "do",
}

// Override reports the fixed stem for word, if it has one.
func Override(word string) (string, bool) {
	stem, ok := overrides[strings.ToLower(word)]
	return stem, ok
}

// New returns the stemmer for algorithm.
func New(algorithm Algorithm) (Stemmer, error) {
	switch algorithm {
	case AlgorithmLancaster, "":
		return NewLancaster(), nil
	case AlgorithmPorter2:
		return NewPorter2(), nil
	default:
		return nil, fmt.Errorf("unknown stemming algorithm %q", algorithm)
	}
}

// StemAll stems every token in order. Empty tokens are malformed and are
// dropped, so the result may be shorter than the input.
func StemAll(s Stemmer, tokens []string) []string {
	stems := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		stems = append(stems, s.Stem(token))
	}
	return stems
}
