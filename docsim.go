// Package docsim compares pairs of documents and decides whether one
// plagiarises the other.
//
// The default scoring backend normalises each text, splits it into words,
// stems them with the Lancaster stemmer and compares binary presence vectors
// over the shared vocabulary with cosine similarity. An embedding backend can
// be selected instead through options.
package docsim

import (
	"context"
	"errors"

	"github.com/botirk38/docsim/classifier"
	"github.com/botirk38/docsim/options"
	"github.com/botirk38/docsim/scorer/presence"
	"github.com/botirk38/docsim/types"
)

// Engine scores document pairs and classifies them against a threshold.
// It is safe for concurrent use.
type Engine struct {
	scorer    types.Scorer
	kinds     *presence.Scorer
	threshold classifier.Threshold
	logger    types.Logger

	provider types.EmbeddingProvider
	cache    types.EmbeddingCache
}

// New creates an Engine with functional options.
func New(opts ...options.Option) (*Engine, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		closeConfigured(cfg)
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		closeConfigured(cfg)
		return nil, err
	}

	scorer, err := cfg.BuildScorer()
	if err != nil {
		closeConfigured(cfg)
		return nil, err
	}

	return &Engine{
		scorer:    scorer,
		kinds:     presence.New(cfg.Stemmer, nil),
		threshold: cfg.Threshold,
		logger:    cfg.Logger,
		provider:  cfg.Provider,
		cache:     cfg.Cache,
	}, nil
}

// closeConfigured releases the provider and cache options opened before New
// failed.
func closeConfigured(cfg *options.Config) {
	if cfg.Provider != nil {
		cfg.Provider.Close()
	}
	if cfg.Cache != nil {
		_ = cfg.Cache.Close()
	}
}

// NewEngine creates an engine around an existing scorer.
func NewEngine(scorer types.Scorer, threshold classifier.Threshold, logger types.Logger) (*Engine, error) {
	if scorer == nil {
		return nil, errors.New("scorer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := threshold.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		scorer:    scorer,
		kinds:     presence.New(nil, nil),
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Threshold returns the cutoff the engine classifies against.
func (e *Engine) Threshold() classifier.Threshold { return e.threshold }

// Backend names the scoring backend.
func (e *Engine) Backend() string { return e.scorer.Name() }

// Compare scores a against b and returns the verdict. Scoring failures are
// logged and reported as an undetermined verdict rather than an error.
func (e *Engine) Compare(ctx context.Context, a, b types.Document) types.Verdict {
	var sim *float64
	score, err := e.scorer.Score(ctx, a, b)
	if err != nil {
		e.logger.Warn("scoring failed", "label_a", a.Label, "label_b", b.Label, "backend", e.scorer.Name(), "error", err)
	} else {
		sim = &score
	}

	v := classifier.Classify(a.Label, b.Label, sim, e.threshold)
	v.Backend = e.scorer.Name()
	if v.Undetermined {
		e.logger.Warn("undetermined verdict", "label_a", a.Label, "label_b", b.Label, "message", v.Message)
		return v
	}
	if v.IsPlagiarism {
		v.Kind = e.kinds.Kind(a.Text, b.Text)
	}

	e.logger.Debug("compared documents",
		"label_a", a.Label, "label_b", b.Label,
		"similarity_percentage", v.SimilarityPercentage,
		"is_plagiarism", v.IsPlagiarism)
	return v
}

// CompareAsync runs Compare in a goroutine. The channel receives exactly one
// verdict and is then closed.
func (e *Engine) CompareAsync(ctx context.Context, a, b types.Document) <-chan types.Verdict {
	resultCh := make(chan types.Verdict, 1)
	go func() {
		defer close(resultCh)
		resultCh <- e.Compare(ctx, a, b)
	}()
	return resultCh
}

// Close releases the embedding provider and cache built from options.
func (e *Engine) Close() error {
	if e.provider != nil {
		e.provider.Close()
	}
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

var defaultPresence = presence.New(nil, nil)

// CompareDocuments compares two raw texts with the presence backend and the
// Lancaster stemmer. It is pure and safe for concurrent use.
func CompareDocuments(textA, labelA, textB, labelB string, threshold classifier.Threshold) types.Verdict {
	a := types.Document{Label: labelA, Text: textA}
	b := types.Document{Label: labelB, Text: textB}

	var sim *float64
	if score, err := defaultPresence.Score(context.Background(), a, b); err == nil {
		sim = &score
	}

	v := classifier.Classify(labelA, labelB, sim, threshold)
	v.Backend = defaultPresence.Name()
	if v.IsPlagiarism {
		v.Kind = defaultPresence.Kind(textA, textB)
	}
	return v
}
