package chunker

import "errors"

var (
	// ErrInvalidWindowSize indicates the window size is not positive
	ErrInvalidWindowSize = errors.New("window size must be positive")

	// ErrWindowExceedsMax indicates the window is larger than the model limit
	ErrWindowExceedsMax = errors.New("window size cannot exceed max tokens")

	// ErrInvalidOverlap indicates a negative overlap
	ErrInvalidOverlap = errors.New("overlap must be non-negative")

	// ErrOverlapTooLarge indicates the overlap leaves no stride
	ErrOverlapTooLarge = errors.New("overlap must be less than window size")

	// ErrInvalidMaxTokens indicates the model limit is not positive
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")

	// ErrEmptyText indicates there is nothing to split
	ErrEmptyText = errors.New("cannot split empty text")
)
