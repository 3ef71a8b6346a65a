package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/botirk38/docsim/loader"
	"github.com/botirk38/docsim/types"
)

// LabelledPair is a document pair with its known ground truth.
type LabelledPair struct {
	A          types.Document
	B          types.Document
	Plagiarism bool
}

// Evaluation summarises a labelled run against one threshold.
type Evaluation struct {
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
	Skipped        int `json:"skipped"`

	TPR float64 `json:"tpr"`
	FPR float64 `json:"fpr"`
	// AUC is the area under the single-point ROC curve, (1 + TPR - FPR) / 2.
	AUC float64 `json:"auc"`

	Verdicts []types.Verdict `json:"verdicts"`
}

// Evaluate compares every labelled pair and tallies the confusion matrix.
// Undetermined pairs count towards Skipped only.
func (r *Runner) Evaluate(ctx context.Context, pairs []LabelledPair) (*Evaluation, error) {
	work := make([]pair, len(pairs))
	for i, p := range pairs {
		work[i] = pair{a: p.A, b: p.B}
	}

	verdicts, done, err := r.compareAll(ctx, work)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{Verdicts: make([]types.Verdict, 0, len(pairs))}
	for i, v := range verdicts {
		if !done[i] || !r.determined(v) {
			eval.Skipped++
			continue
		}
		eval.Verdicts = append(eval.Verdicts, v)
		switch expected := pairs[i].Plagiarism; {
		case expected && v.IsPlagiarism:
			eval.TruePositives++
		case expected:
			eval.FalseNegatives++
		case v.IsPlagiarism:
			eval.FalsePositives++
		default:
			eval.TrueNegatives++
		}
	}
	eval.score()

	r.logger.Info("evaluated labelled pairs",
		"pairs", len(pairs), "skipped", eval.Skipped,
		"tpr", eval.TPR, "fpr", eval.FPR, "auc", eval.AUC)
	return eval, nil
}

// score derives the rates from the counts. An empty class gives a rate of 0.
func (e *Evaluation) score() {
	e.TPR, e.FPR = 0, 0
	if n := e.TruePositives + e.FalseNegatives; n > 0 {
		e.TPR = float64(e.TruePositives) / float64(n)
	}
	if n := e.FalsePositives + e.TrueNegatives; n > 0 {
		e.FPR = float64(e.FalsePositives) / float64(n)
	}
	e.AUC = (1 + e.TPR - e.FPR) / 2
}

type pairsFile struct {
	Pairs []struct {
		A          string `toml:"a"`
		B          string `toml:"b"`
		Plagiarism bool   `toml:"plagiarism"`
	} `toml:"pair"`
}

// LoadPairs reads a TOML file of [[pair]] tables with a, b and plagiarism
// keys. Relative document paths resolve against the file's directory.
func LoadPairs(path string) ([]LabelledPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pairs file: %w", err)
	}

	var file pairsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse pairs file: %w", err)
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	pairs := make([]LabelledPair, 0, len(file.Pairs))
	for i, entry := range file.Pairs {
		if entry.A == "" || entry.B == "" {
			return nil, fmt.Errorf("pair %d: both a and b are required", i+1)
		}
		a, err := loader.LoadFile(resolve(entry.A))
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i+1, err)
		}
		b, err := loader.LoadFile(resolve(entry.B))
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i+1, err)
		}
		pairs = append(pairs, LabelledPair{A: a, B: b, Plagiarism: entry.Plagiarism})
	}
	return pairs, nil
}
