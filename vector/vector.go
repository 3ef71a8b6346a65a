// Package vector turns stemmed token lists into binary presence vectors over
// a shared vocabulary.
package vector

// Distinct returns the unique stems of stems in first-occurrence order.
// The input is not modified.
func Distinct(stems []string) []string {
	seen := make(map[string]struct{}, len(stems))
	out := make([]string, 0, len(stems))
	for _, s := range stems {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// BuildVocabulary returns the distinct stems of a in order, followed by the
// stems of b not already seen. Neither input is modified.
func BuildVocabulary(a, b []string) []string {
	return Distinct(append(Distinct(a), b...))
}

// Encode returns a vector with one entry per vocabulary term: 1 when the term
// occurs in stems, 0 otherwise. Repeated stems count once.
func Encode(stems, vocabulary []string) []float64 {
	present := make(map[string]struct{}, len(stems))
	for _, s := range stems {
		present[s] = struct{}{}
	}
	vec := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		if _, ok := present[term]; ok {
			vec[i] = 1
		}
	}
	return vec
}
