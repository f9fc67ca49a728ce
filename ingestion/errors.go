package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a candidate repository is not provided.
	ErrRepositoryRequired = errors.New("candidate repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidDataset is returned when a dataset file cannot be parsed.
	ErrInvalidDataset = errors.New("invalid dataset")
)
