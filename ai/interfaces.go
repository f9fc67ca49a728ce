package ai

import (
	"context"

	"github.com/poiesic/wayfind/core"
)

// Embedder generates vector embeddings from text for semantic similarity
// ranking. Implementations must be deterministic for identical input within
// a process and thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentClassifier maps a free-text travel query to intent labels using an
// external text-classification capability.
type IntentClassifier interface {
	// ClassifyIntents returns the valid intents named by the classification
	// service for the query. A response naming no valid intent yields
	// []core.Intent{core.IntentUnknown} with a nil error. Transport and
	// parse failures return an error wrapping ErrClassification; callers
	// recover by treating the query as unknown.
	ClassifyIntents(ctx context.Context, query string) ([]core.Intent, error)
}

// FilterExtractor maps a free-text travel query to a sparse structured
// filter set using an external structured-generation capability.
type FilterExtractor interface {
	// ExtractFilters returns the filters present in the query. Keys with
	// empty values are never present in the result. Transport and parse
	// failures return an error wrapping ErrFilterExtraction; callers
	// recover with an empty filter set.
	ExtractFilters(ctx context.Context, query string) (core.FilterSet, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages the embedder,
// classifier, and extractor, ensuring they share configuration.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// IntentClassifier returns the query classification service.
	IntentClassifier() IntentClassifier

	// FilterExtractor returns the structured filter extraction service.
	FilterExtractor() FilterExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
