// Package chunker splits documents that exceed an embedding model's input
// limit into overlapping token windows.
package chunker

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"

	doctok "github.com/botirk38/docsim/tokenizer"
)

// Config controls when and how a document is split.
type Config struct {
	// MaxTokens is the model input limit. Documents at or under it are
	// embedded whole.
	MaxTokens int `toml:"max_tokens"`

	// WindowSize is the number of tokens in each window once splitting.
	WindowSize int `toml:"chunk_size"`

	// Overlap is the number of tokens shared by consecutive windows.
	Overlap int `toml:"chunk_overlap"`
}

// DefaultConfig returns limits suited to OpenAI text-embedding-3 models.
func DefaultConfig() Config {
	return Config{
		MaxTokens:  8191,
		WindowSize: 512,
		Overlap:    50,
	}
}

// Validate checks that the limits are consistent.
func (c Config) Validate() error {
	if c.MaxTokens <= 0 {
		return ErrInvalidMaxTokens
	}
	if c.WindowSize <= 0 {
		return ErrInvalidWindowSize
	}
	if c.WindowSize > c.MaxTokens {
		return ErrWindowExceedsMax
	}
	if c.Overlap < 0 {
		return ErrInvalidOverlap
	}
	if c.Overlap >= c.WindowSize {
		return ErrOverlapTooLarge
	}
	return nil
}

// Chunk is one window of a document.
type Chunk struct {
	Text string
	// Start and End delimit the window in the document's token stream.
	Start int
	End   int
	Index int
}

// Chunker splits text into windows of BPE tokens. Safe for concurrent use.
type Chunker struct {
	config Config
	codec  tokenizer.Codec
}

// New creates a chunker using the shared cl100k_base codec.
func New(config Config) (*Chunker, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunk config: %w", err)
	}
	codec, err := doctok.Cl100k()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return &Chunker{config: config, codec: codec}, nil
}

// Config returns the limits the chunker was built with.
func (c *Chunker) Config() Config { return c.config }

// Split returns text as a single chunk when it fits within MaxTokens and as
// overlapping windows of WindowSize tokens otherwise.
func (c *Chunker) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", doctok.ErrTokenizerFailed, err)
	}
	total := len(ids)
	if total <= c.config.MaxTokens {
		return []Chunk{{Text: text, Start: 0, End: total}}, nil
	}

	stride := c.config.WindowSize - c.config.Overlap
	chunks := make([]Chunk, 0, total/stride+1)
	for start := 0; start < total; start += stride {
		end := min(start+c.config.WindowSize, total)
		window, err := c.codec.Decode(ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to decode chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, Chunk{Text: window, Start: start, End: end, Index: len(chunks)})
		if end == total {
			break
		}
	}
	return chunks, nil
}
