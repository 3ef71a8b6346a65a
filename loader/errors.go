package loader

import "errors"

var (
	// ErrNotDirectory indicates the corpus path is not a directory
	ErrNotDirectory = errors.New("corpus path is not a directory")

	// ErrNoDocuments indicates a directory held no matching files
	ErrNoDocuments = errors.New("no documents found")
)
