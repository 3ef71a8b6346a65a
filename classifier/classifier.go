// Package classifier turns a similarity score and a threshold into a verdict.
package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/botirk38/docsim/types"
)

// UndeterminedMessage is reported when no similarity could be computed.
const UndeterminedMessage = "the cosine evaluation could not be performed, please check your input"

// Unit says how a threshold value is expressed.
type Unit string

const (
	// Percent thresholds are compared against the rounded percentage, 0 to 100.
	Percent Unit = "percent"
	// Fraction thresholds are compared against the raw similarity, 0 to 1.
	Fraction Unit = "fraction"
)

var ErrInvalidThreshold = errors.New("invalid threshold")

// Threshold is an inclusive plagiarism cutoff.
type Threshold struct {
	Value float64 `toml:"value" json:"value"`
	Unit  Unit    `toml:"unit" json:"unit"`
}

// Percentage returns a Percent threshold.
func Percentage(v float64) Threshold { return Threshold{Value: v, Unit: Percent} }

// Ratio returns a Fraction threshold.
func Ratio(v float64) Threshold { return Threshold{Value: v, Unit: Fraction} }

// Validate checks that the value lies within the range of its unit.
func (t Threshold) Validate() error {
	if math.IsNaN(t.Value) {
		return fmt.Errorf("%w: value is NaN", ErrInvalidThreshold)
	}
	switch t.Unit {
	case Percent:
		if t.Value < 0 || t.Value > 100 {
			return fmt.Errorf("%w: %v is outside [0, 100]", ErrInvalidThreshold, t.Value)
		}
	case Fraction:
		if t.Value < 0 || t.Value > 1 {
			return fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidThreshold, t.Value)
		}
	default:
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidThreshold, t.Unit)
	}
	return nil
}

func (t Threshold) String() string {
	if t.Unit == Percent {
		return fmt.Sprintf("%.2f%%", t.Value)
	}
	return fmt.Sprintf("%g", t.Value)
}

// Classify builds the verdict for labelA and labelB. A nil, NaN or infinite
// similarity yields an undetermined verdict instead of a decision.
//
// A Percent threshold is compared against the reported percentage, which is
// rounded to two decimals first, so a similarity of 0.549996 reports 55 and
// meets a 55% threshold. A Fraction threshold is compared against the raw
// similarity.
func Classify(labelA, labelB string, similarity *float64, threshold Threshold) types.Verdict {
	v := types.Verdict{LabelA: labelA, LabelB: labelB}
	if similarity == nil || math.IsNaN(*similarity) || math.IsInf(*similarity, 0) {
		v.Undetermined = true
		v.Message = UndeterminedMessage
		return v
	}

	v.SimilarityPercentage = Round(*similarity*100, 2)
	switch threshold.Unit {
	case Fraction:
		v.IsPlagiarism = *similarity >= threshold.Value
	default:
		v.IsPlagiarism = v.SimilarityPercentage >= threshold.Value
	}
	return v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
