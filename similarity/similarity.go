// Package similarity provides similarity measures over float64 vectors.
// Cosine drives the presence engine; the others are comparators for the
// embedding backend.
package similarity

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two vectors differ in length.
var ErrDimensionMismatch = errors.New("vector dimensions do not match")

// SimilarityFunc represents a function that computes similarity between two vectors.
// It should return a float64 where higher values indicate greater similarity.
type SimilarityFunc func(a, b []float64) float64

// CheckDimensions returns ErrDimensionMismatch unless a and b have the same length.
func CheckDimensions(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}

var byName = map[string]SimilarityFunc{
	"cosine":    CosineSimilarity,
	"dot":       DotProductSimilarity,
	"euclidean": EuclideanSimilarity,
	"manhattan": ManhattanSimilarity,
	"pearson":   PearsonCorrelationSimilarity,
}

// ByName looks up a comparator. The empty name selects cosine.
func ByName(name string) (SimilarityFunc, error) {
	if name == "" {
		return CosineSimilarity, nil
	}
	fn, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown comparator %q", name)
	}
	return fn, nil
}
