package similarity

import (
	"errors"
	"math"
	"testing"
)

// Test similarity functions with known vectors
func TestSimilarityFunctions(t *testing.T) {
	vec1 := []float64{1, 0, 0}
	vec2 := []float64{0, 1, 0}
	vec3 := []float64{1, 0, 0} // Same as vec1

	t.Run("CosineSimilarity", func(t *testing.T) {
		sim := CosineSimilarity(vec1, vec2)
		if sim != 0 {
			t.Errorf("Expected 0, got %f", sim)
		}

		sim = CosineSimilarity(vec1, vec3)
		if math.Abs(sim-1) > 1e-9 {
			t.Errorf("Expected 1, got %f", sim)
		}

		sim = CosineSimilarity([]float64{}, []float64{})
		if sim != 0 {
			t.Errorf("Expected 0 for empty vectors, got %f", sim)
		}

		sim = CosineSimilarity(vec1, []float64{1, 0})
		if sim != 0 {
			t.Errorf("Expected 0 for different length vectors, got %f", sim)
		}

		sim = CosineSimilarity([]float64{0, 0, 0}, vec1)
		if sim != 0 {
			t.Errorf("Expected 0 for zero vector, got %f", sim)
		}
	})

	t.Run("CosinePresenceVectors", func(t *testing.T) {
		// "the cat sat" vs "the dog ran" over [the cat sat dog ran]
		a := []float64{1, 1, 1, 0, 0}
		b := []float64{1, 0, 0, 1, 1}
		sim := CosineSimilarity(a, b)
		if math.Abs(sim-1.0/3.0) > 1e-9 {
			t.Errorf("Expected 1/3, got %f", sim)
		}
		if CosineSimilarity(a, b) != CosineSimilarity(b, a) {
			t.Errorf("Expected symmetric result")
		}
	})

	t.Run("EuclideanSimilarity", func(t *testing.T) {
		sim := EuclideanSimilarity(vec1, vec3)
		if sim != 1 {
			t.Errorf("Expected 1, got %f", sim)
		}

		sim = EuclideanSimilarity(vec1, vec2)
		if sim >= 1 {
			t.Errorf("Expected < 1, got %f", sim)
		}

		sim = EuclideanSimilarity([]float64{}, []float64{})
		if sim != 0 {
			t.Errorf("Expected 0 for empty vectors, got %f", sim)
		}
	})

	t.Run("DotProductSimilarity", func(t *testing.T) {
		sim := DotProductSimilarity(vec1, vec2)
		if sim != 0 {
			t.Errorf("Expected 0, got %f", sim)
		}

		sim = DotProductSimilarity(vec1, vec3)
		if sim != 1 {
			t.Errorf("Expected 1, got %f", sim)
		}
	})

	t.Run("ManhattanSimilarity", func(t *testing.T) {
		sim := ManhattanSimilarity(vec1, vec3)
		if sim != 1 {
			t.Errorf("Expected 1, got %f", sim)
		}

		sim = ManhattanSimilarity(vec1, vec2)
		if sim >= 1 {
			t.Errorf("Expected < 1, got %f", sim)
		}
	})

	t.Run("PearsonCorrelationSimilarity", func(t *testing.T) {
		a := []float64{1, 2, 3, 4, 5}
		b := []float64{2, 4, 6, 8, 10}

		sim := PearsonCorrelationSimilarity(a, b)
		if math.Abs(sim-1) > 0.001 {
			t.Errorf("Expected ~1 for perfect correlation, got %f", sim)
		}

		c := []float64{5, 4, 3, 2, 1}
		sim = PearsonCorrelationSimilarity(a, c)
		if math.Abs(sim+1) > 0.001 {
			t.Errorf("Expected ~-1 for negative correlation, got %f", sim)
		}
	})
}

func TestCheckDimensions(t *testing.T) {
	if err := CheckDimensions([]float64{1, 2}, []float64{3, 4}); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	err := CheckDimensions([]float64{1, 2}, []float64{3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "cosine", "dot", "euclidean", "manhattan", "pearson"} {
		fn, err := ByName(name)
		if err != nil || fn == nil {
			t.Errorf("ByName(%q): got %v", name, err)
		}
	}
	if _, err := ByName("jaccard"); err == nil {
		t.Errorf("Expected error for unknown comparator")
	}
}
