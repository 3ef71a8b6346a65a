package embedding

import "errors"

var (
	// ErrNoProvider indicates the scorer was built without a provider
	ErrNoProvider = errors.New("embedding provider is required")

	// ErrEmptyDocument indicates a document has no text to embed
	ErrEmptyDocument = errors.New("document has no text to embed")

	// ErrNoEmbedding indicates the provider returned an empty vector
	ErrNoEmbedding = errors.New("provider returned an empty embedding")
)
