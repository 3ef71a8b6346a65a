// Package batch drives the engine over many document pairs: one document
// against a corpus, every pair within a corpus, and labelled evaluation.
package batch

import (
	"context"
	"sort"

	"github.com/botirk38/docsim/logging"
	"github.com/botirk38/docsim/types"
)

// Comparer produces a verdict for a pair of documents. *docsim.Engine
// satisfies it.
type Comparer interface {
	Compare(ctx context.Context, a, b types.Document) types.Verdict
}

// Runner fans comparisons out over a worker pool.
type Runner struct {
	engine  Comparer
	workers int
	logger  types.Logger
}

// NewRunner creates a runner with the given number of workers.
func NewRunner(engine Comparer, workers int, logger types.Logger) (*Runner, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{engine: engine, workers: workers, logger: logger}, nil
}

type pair struct {
	a, b types.Document
}

// compareAll compares every pair on the pool. done[i] reports whether
// verdicts[i] was filled in.
func (r *Runner) compareAll(ctx context.Context, pairs []pair) ([]types.Verdict, []bool, error) {
	verdicts := make([]types.Verdict, len(pairs))
	done := make([]bool, len(pairs))

	pool := NewPool(r.workers, r.logger)
	defer pool.Stop()

	for i, p := range pairs {
		if ctx.Err() != nil {
			break
		}
		if err := pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			verdicts[i] = r.engine.Compare(ctx, p.a, p.b)
			done[i] = true
		}); err != nil {
			return nil, nil, err
		}
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return verdicts, done, nil
}

// determined reports whether v can be counted. Undetermined verdicts are
// logged.
func (r *Runner) determined(v types.Verdict) bool {
	if v.Undetermined {
		r.logger.Warn("skipping undetermined pair", "label_a", v.LabelA, "label_b", v.LabelB, "message", v.Message)
		return false
	}
	return true
}

// run compares every pair and returns the determined verdicts in pair order.
func (r *Runner) run(ctx context.Context, pairs []pair) ([]types.Verdict, error) {
	verdicts, done, err := r.compareAll(ctx, pairs)
	if err != nil {
		return nil, err
	}

	out := make([]types.Verdict, 0, len(pairs))
	for i, v := range verdicts {
		if done[i] && r.determined(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Against compares query with every corpus document except those sharing
// its label. Results are sorted by descending similarity, ties by label, and
// cut to the top n when n is positive.
func (r *Runner) Against(ctx context.Context, query types.Document, corpus []types.Document, top int) ([]types.Verdict, error) {
	pairs := make([]pair, 0, len(corpus))
	for _, doc := range corpus {
		if doc.Label == query.Label {
			continue
		}
		pairs = append(pairs, pair{a: query, b: doc})
	}

	verdicts, err := r.run(ctx, pairs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(verdicts, func(i, j int) bool {
		if verdicts[i].SimilarityPercentage != verdicts[j].SimilarityPercentage {
			return verdicts[i].SimilarityPercentage > verdicts[j].SimilarityPercentage
		}
		return verdicts[i].LabelB < verdicts[j].LabelB
	})
	if top > 0 && len(verdicts) > top {
		verdicts = verdicts[:top]
	}

	r.logger.Info("compared against corpus", "query", query.Label, "corpus", len(corpus), "results", len(verdicts))
	return verdicts, nil
}

// AllPairs compares every unordered pair of docs once. The lower label is
// always LabelA and results are sorted by LabelA then LabelB.
func (r *Runner) AllPairs(ctx context.Context, docs []types.Document) ([]types.Verdict, error) {
	sorted := make([]types.Document, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })

	var pairs []pair
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			pairs = append(pairs, pair{a: sorted[i], b: sorted[j]})
		}
	}

	verdicts, err := r.run(ctx, pairs)
	if err != nil {
		return nil, err
	}

	r.logger.Info("compared all pairs", "documents", len(docs), "pairs", len(pairs), "results", len(verdicts))
	return verdicts, nil
}
