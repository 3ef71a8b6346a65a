package tokenizer

import (
	"errors"
	"sync"

	"github.com/tiktoken-go/tokenizer"
)

// ErrTokenizerFailed indicates BPE encoding failed
var ErrTokenizerFailed = errors.New("tokenization failed")

var (
	cl100kOnce  sync.Once
	cl100kCodec tokenizer.Codec
	cl100kErr   error
)

// Cl100k returns the shared cl100k_base codec used by OpenAI's
// text-embedding-3 models, loading it on first use.
func Cl100k() (tokenizer.Codec, error) {
	cl100kOnce.Do(func() {
		cl100kCodec, cl100kErr = tokenizer.Get(tokenizer.Cl100kBase)
	})
	return cl100kCodec, cl100kErr
}
