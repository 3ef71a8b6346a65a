package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		threshold  Threshold
		wantPct    float64
		wantPlag   bool
	}{
		{"identical", 1, Percentage(50), 100, true},
		{"disjoint", 0, Percentage(50), 0, false},
		{"boundary percent", 0.55, Percentage(55), 55, true},
		{"just below percent", 0.5499, Percentage(55), 54.99, false},
		{"boundary fraction", 0.95, Ratio(0.95), 95, true},
		{"below fraction", 0.9499, Ratio(0.95), 94.99, false},
		{"rounded percent meets threshold", 0.549996, Percentage(55), 55, true},
		{"fraction uses raw similarity", 0.949996, Ratio(0.95), 95, false},
		{"rounds up", 0.5062, Percentage(50.1), 50.62, true},
		{"rounds two places", 0.6975, Percentage(55), 69.75, true},
		{"below", 0.4213, Percentage(55), 42.13, false},
		{"small", 0.01, Percentage(55), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify("a.txt", "b.txt", ptr(tt.similarity), tt.threshold)
			assert.Equal(t, "a.txt", v.LabelA)
			assert.Equal(t, "b.txt", v.LabelB)
			assert.InDelta(t, tt.wantPct, v.SimilarityPercentage, 1e-9)
			assert.Equal(t, tt.wantPlag, v.IsPlagiarism)
			assert.False(t, v.Undetermined)
		})
	}
}

func TestClassifyUndetermined(t *testing.T) {
	inputs := map[string]*float64{
		"nil":  nil,
		"nan":  ptr(math.NaN()),
		"+inf": ptr(math.Inf(1)),
		"-inf": ptr(math.Inf(-1)),
	}
	for name, sim := range inputs {
		t.Run(name, func(t *testing.T) {
			v := Classify("a", "b", sim, Percentage(0))
			assert.True(t, v.Undetermined)
			assert.False(t, v.IsPlagiarism)
			assert.Equal(t, UndeterminedMessage, v.Message)
		})
	}
}

func TestThresholdValidate(t *testing.T) {
	require.NoError(t, Percentage(55).Validate())
	require.NoError(t, Ratio(0.95).Validate())
	require.NoError(t, Percentage(0).Validate())
	require.NoError(t, Percentage(100).Validate())

	assert.ErrorIs(t, Percentage(101).Validate(), ErrInvalidThreshold)
	assert.ErrorIs(t, Ratio(1.5).Validate(), ErrInvalidThreshold)
	assert.ErrorIs(t, Ratio(-0.1).Validate(), ErrInvalidThreshold)
	assert.ErrorIs(t, Ratio(math.NaN()).Validate(), ErrInvalidThreshold)
	assert.ErrorIs(t, Threshold{Value: 1, Unit: "permille"}.Validate(), ErrInvalidThreshold)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 50.62, Round(50.62000001, 2))
	assert.Equal(t, 0.3, Round(0.29999, 2))
	assert.Equal(t, 33.33, Round(100.0/3.0, 2))
}

func TestThresholdString(t *testing.T) {
	assert.Equal(t, "55.00%", Percentage(55).String())
	assert.Equal(t, "0.95", Ratio(0.95).String())
}
