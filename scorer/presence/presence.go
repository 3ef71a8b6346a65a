// Package presence scores documents by the cosine of their binary stem
// presence vectors.
package presence

import (
	"context"
	"fmt"

	"github.com/botirk38/docsim/normalize"
	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/stemmer"
	"github.com/botirk38/docsim/tokenizer"
	"github.com/botirk38/docsim/types"
	"github.com/botirk38/docsim/vector"
)

// Name identifies this backend in verdicts.
const Name = string(types.ScorerPresence)

// Scorer is the presence backend. It holds no per-call state and is safe for
// concurrent use.
type Scorer struct {
	stemmer stemmer.Stemmer
	logger  types.Logger
}

// New creates a presence scorer. A nil stemmer selects Lancaster.
func New(st stemmer.Stemmer, logger types.Logger) *Scorer {
	if st == nil {
		st = stemmer.NewLancaster()
	}
	return &Scorer{stemmer: st, logger: logger}
}

func (s *Scorer) Name() string { return Name }

// Analyze runs text through normalisation, tokenisation and stemming.
func (s *Scorer) Analyze(text string) []string {
	return stemmer.StemAll(s.stemmer, tokenizer.Tokenize(normalize.Normalize(text)))
}

// Score returns the cosine similarity of the stem presence vectors of a and b.
func (s *Scorer) Score(_ context.Context, a, b types.Document) (float64, error) {
	stemsA := s.Analyze(a.Text)
	stemsB := s.Analyze(b.Text)

	sim, err := Similarity(stemsA, stemsB)
	if err != nil {
		return 0, err
	}
	if s.logger != nil {
		s.logger.Debug("presence score",
			"label_a", a.Label, "label_b", b.Label,
			"stems_a", len(stemsA), "stems_b", len(stemsB),
			"similarity", sim)
	}
	return sim, nil
}

// Similarity encodes two stem lists over their shared vocabulary and returns
// the cosine of the resulting vectors. Two empty lists score 0.
func Similarity(stemsA, stemsB []string) (float64, error) {
	vocab := vector.BuildVocabulary(stemsA, stemsB)
	va := vector.Encode(stemsA, vocab)
	vb := vector.Encode(stemsB, vocab)
	if err := similarity.CheckDimensions(va, vb); err != nil {
		return 0, fmt.Errorf("encoding presence vectors: %w", err)
	}
	return similarity.CosineSimilarity(va, vb), nil
}

// Kind classifies how two texts overlap: exact when their normalised forms
// are equal, reordered when their stem sets are equal, partial otherwise.
func (s *Scorer) Kind(textA, textB string) types.MatchKind {
	normA, normB := normalize.Normalize(textA), normalize.Normalize(textB)
	if normA == normB {
		return types.MatchExact
	}
	setA := vector.Distinct(stemmer.StemAll(s.stemmer, tokenizer.Tokenize(normA)))
	setB := vector.Distinct(stemmer.StemAll(s.stemmer, tokenizer.Tokenize(normB)))
	if sameSet(setA, setB) {
		return types.MatchReordered
	}
	return types.MatchPartial
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			return false
		}
	}
	return true
}
