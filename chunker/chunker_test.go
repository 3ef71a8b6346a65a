package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8191, cfg.MaxTokens)
	assert.Equal(t, 512, cfg.WindowSize)
	assert.Equal(t, 50, cfg.Overlap)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"max tokens zero", Config{MaxTokens: 0, WindowSize: 10, Overlap: 1}, ErrInvalidMaxTokens},
		{"window zero", Config{MaxTokens: 100, WindowSize: 0, Overlap: 0}, ErrInvalidWindowSize},
		{"window exceeds max", Config{MaxTokens: 100, WindowSize: 200, Overlap: 10}, ErrWindowExceedsMax},
		{"negative overlap", Config{MaxTokens: 100, WindowSize: 50, Overlap: -1}, ErrInvalidOverlap},
		{"overlap equals window", Config{MaxTokens: 100, WindowSize: 50, Overlap: 50}, ErrOverlapTooLarge},
		{"valid", Config{MaxTokens: 100, WindowSize: 50, Overlap: 10}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{MaxTokens: 10, WindowSize: 20})
	assert.ErrorIs(t, err, ErrWindowExceedsMax)
}

func TestSplitEmpty(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	_, err = c.Split("")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestSplitFitsWhole(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	text := "the cat sat on the mat"
	chunks, err := c.Split(text)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 0, chunks[0].Index)
}

func TestSplitWindows(t *testing.T) {
	cfg := Config{MaxTokens: 40, WindowSize: 20, Overlap: 5}
	c, err := New(cfg)
	require.NoError(t, err)

	chunks, err := c.Split(strings.Repeat("this is a test sentence ", 50))
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	assert.Equal(t, 0, chunks[0].Start)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
		assert.NotEmpty(t, chunk.Text)
		assert.Greater(t, chunk.End, chunk.Start)
		assert.LessOrEqual(t, chunk.End-chunk.Start, cfg.WindowSize)
		if i > 0 {
			assert.Equal(t, chunks[i-1].Start+cfg.WindowSize-cfg.Overlap, chunk.Start)
			assert.Less(t, chunk.Start, chunks[i-1].End)
		}
	}
}
