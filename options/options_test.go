package options

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botirk38/docsim/chunker"
	"github.com/botirk38/docsim/classifier"
	"github.com/botirk38/docsim/scorer/embedding"
	"github.com/botirk38/docsim/scorer/presence"
	"github.com/botirk38/docsim/similarity"
	"github.com/botirk38/docsim/stemmer"
	"github.com/botirk38/docsim/types"
)

// Mock provider for testing
type mockProvider struct{}

func (m *mockProvider) EmbedText(_ context.Context, _ string) ([]float64, error) {
	return []float64{0.1, 0.2, 0.3}, nil
}

func (m *mockProvider) Model() string { return "mock" }

func (m *mockProvider) GetMaxTokens() int { return 8191 }

func (m *mockProvider) Close() {}

type fixedScorer struct{ score float64 }

func (f fixedScorer) Name() string { return "fixed" }

func (f fixedScorer) Score(context.Context, types.Document, types.Document) (float64, error) {
	return f.score, nil
}

func TestConfigCreation(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, types.ScorerPresence, cfg.Backend)
		assert.Equal(t, classifier.Percentage(55), cfg.Threshold)
		assert.NotNil(t, cfg.Comparator)
		assert.NotNil(t, cfg.Logger)
		assert.IsType(t, &stemmer.Lancaster{}, cfg.Stemmer)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("EmbeddingNeedsProvider", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(WithEmbeddingScorer()))
		assert.Error(t, cfg.Validate())

		require.NoError(t, cfg.Apply(WithCustomProvider(&mockProvider{})))
		assert.NoError(t, cfg.Validate())
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Backend = "bm25"
		assert.Error(t, cfg.Validate())
	})
}

func TestThresholdDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Apply(WithEmbeddingScorer(), WithCustomProvider(&mockProvider{})))
	assert.Equal(t, classifier.Ratio(0.95), cfg.Threshold)

	cfg = NewConfig()
	require.NoError(t, cfg.Apply(WithThreshold(classifier.Percentage(50.1)), WithEmbeddingScorer()))
	assert.Equal(t, classifier.Percentage(50.1), cfg.Threshold)

	cfg = NewConfig()
	assert.Error(t, cfg.Apply(WithThreshold(classifier.Ratio(2))))
}

func TestBuildScorer(t *testing.T) {
	t.Run("Presence", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(WithStemmer(stemmer.NewPorter2())))
		s, err := cfg.BuildScorer()
		require.NoError(t, err)
		assert.IsType(t, &presence.Scorer{}, s)
	})

	t.Run("Embedding", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(
			WithEmbeddingScorer(),
			WithCustomProvider(&mockProvider{}),
			WithLRUCache(16),
			WithSimilarityComparator(similarity.EuclideanSimilarity),
		))
		s, err := cfg.BuildScorer()
		require.NoError(t, err)
		assert.IsType(t, &embedding.Scorer{}, s)
	})

	t.Run("Custom", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(WithScorer(fixedScorer{score: 0.5})))
		s, err := cfg.BuildScorer()
		require.NoError(t, err)
		assert.Equal(t, "fixed", s.Name())
	})
}

func TestCacheOptions(t *testing.T) {
	for name, opt := range map[string]Option{
		"LRU":  WithLRUCache(10),
		"FIFO": WithFIFOCache(10),
		"LFU":  WithLFUCache(10),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			require.NoError(t, cfg.Apply(opt))
			assert.NotNil(t, cfg.Cache)
		})
	}

	cfg := NewConfig()
	assert.Error(t, cfg.Apply(WithCustomCache(nil)))
}

func TestNilOptions(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.Apply(WithLogger(nil)))
	assert.Error(t, cfg.Apply(WithStemmer(nil)))
	assert.Error(t, cfg.Apply(WithScorer(nil)))
	assert.Error(t, cfg.Apply(WithCustomProvider(nil)))
	assert.Error(t, cfg.Apply(WithSimilarityComparator(nil)))
}

func TestProviderOptions(t *testing.T) {
	t.Run("OpenAIMissingKey", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		cfg := NewConfig()
		assert.Error(t, cfg.Apply(WithOpenAIProvider("")))
	})

	t.Run("OpenAI", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(WithOpenAIProvider("sk-test", "text-embedding-3-large")))
		assert.Equal(t, "text-embedding-3-large", cfg.Provider.Model())
	})

	t.Run("Gemini", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Apply(WithGeminiProvider("test-key")))
		assert.Equal(t, "gemini-embedding-001", cfg.Provider.Model())
	})
}

func TestChunkingOption(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Apply(WithChunking(chunker.Config{MaxTokens: 100, WindowSize: 50, Overlap: 5})))
	assert.Equal(t, 50, cfg.Chunk.WindowSize)

	assert.Error(t, cfg.Apply(WithChunking(chunker.Config{MaxTokens: 10, WindowSize: 50})))
}
