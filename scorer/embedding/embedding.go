// Package embedding scores documents by comparing model embeddings of their
// full text. Long documents are split into token windows whose embeddings
// are averaged.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/botirk38/docsim/chunker"
	"github.com/botirk38/docsim/normalize"
	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/types"
)

// Name identifies this backend in verdicts.
const Name = string(types.ScorerEmbedding)

// Config wires the embedding scorer.
type Config struct {
	Provider types.EmbeddingProvider
	// Cache is optional.
	Cache types.EmbeddingCache
	// Comparator defaults to cosine similarity.
	Comparator similarity.SimilarityFunc
	Chunk      chunker.Config
	Logger     types.Logger
}

// Scorer embeds both documents and compares the vectors.
type Scorer struct {
	provider   types.EmbeddingProvider
	cache      types.EmbeddingCache
	comparator similarity.SimilarityFunc
	chunker    *chunker.Chunker
	logger     types.Logger
}

// New validates cfg and builds a scorer. The chunk limit is capped at the
// provider's own token limit.
func New(cfg Config) (*Scorer, error) {
	if cfg.Provider == nil {
		return nil, ErrNoProvider
	}
	if cfg.Comparator == nil {
		cfg.Comparator = similarity.CosineSimilarity
	}
	if cfg.Chunk == (chunker.Config{}) {
		cfg.Chunk = chunker.DefaultConfig()
	}
	if limit := cfg.Provider.GetMaxTokens(); limit > 0 && cfg.Chunk.MaxTokens > limit {
		cfg.Chunk.MaxTokens = limit
		cfg.Chunk.WindowSize = min(cfg.Chunk.WindowSize, limit)
	}

	ch, err := chunker.New(cfg.Chunk)
	if err != nil {
		return nil, err
	}

	return &Scorer{
		provider:   cfg.Provider,
		cache:      cfg.Cache,
		comparator: cfg.Comparator,
		chunker:    ch,
		logger:     cfg.Logger,
	}, nil
}

func (s *Scorer) Name() string { return Name }

// Score compares the document embeddings of a and b.
func (s *Scorer) Score(ctx context.Context, a, b types.Document) (float64, error) {
	ea, err := s.Embed(ctx, a.Text)
	if err != nil {
		return 0, fmt.Errorf("embedding %s: %w", a.Label, err)
	}
	eb, err := s.Embed(ctx, b.Text)
	if err != nil {
		return 0, fmt.Errorf("embedding %s: %w", b.Label, err)
	}
	if err := similarity.CheckDimensions(ea, eb); err != nil {
		return 0, err
	}

	score := s.comparator(ea, eb)
	s.debug("embedding score", "label_a", a.Label, "label_b", b.Label, "model", s.provider.Model(), "similarity", score)
	return score, nil
}

// Embed returns the document embedding of text, consulting the cache first.
// Text is normalized before it is hashed, chunked or sent to the provider.
func (s *Scorer) Embed(ctx context.Context, text string) ([]float64, error) {
	text = normalize.Normalize(text)
	if text == "" {
		return nil, ErrEmptyDocument
	}

	key := cacheKey(s.provider.Model(), text)
	if s.cache != nil {
		emb, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.warn("embedding cache read failed", "error", err)
		} else if found {
			s.debug("embedding cache hit", "key", key)
			return emb, nil
		}
	}

	chunks, err := s.chunker.Split(text)
	if err != nil {
		return nil, err
	}

	var pooled []float64
	for _, c := range chunks {
		emb, err := s.provider.EmbedText(ctx, c.Text)
		if err != nil {
			return nil, err
		}
		if len(emb) == 0 {
			return nil, ErrNoEmbedding
		}
		if pooled == nil {
			pooled = make([]float64, len(emb))
		}
		if err := similarity.CheckDimensions(pooled, emb); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", c.Index, err)
		}
		for i, v := range emb {
			pooled[i] += v
		}
	}
	for i := range pooled {
		pooled[i] /= float64(len(chunks))
	}
	s.debug("embedded document", "chunks", len(chunks), "dimensions", len(pooled))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, pooled); err != nil {
			s.warn("embedding cache write failed", "error", err)
		}
	}
	return pooled, nil
}

// cacheKey namespaces a content hash by model so vectors from different
// models never mix.
func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

func (s *Scorer) debug(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, kv...)
	}
}

func (s *Scorer) warn(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, kv...)
	}
}
