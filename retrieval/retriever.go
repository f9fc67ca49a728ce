package retrieval

import (
	"context"
	"log/slog"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage"
)

const (
	// DefaultMinCertainty is the similarity threshold below which stored
	// candidates are not considered relevant to a query.
	DefaultMinCertainty float32 = 0.65

	// DefaultLimit caps the number of candidates returned per intent.
	DefaultLimit = 15
)

// Retriever embeds a query and returns the closest stored candidates for
// an intent, ordered by certainty.
type Retriever struct {
	repo         storage.CandidateRepository
	embedder     ai.Embedder
	logger       *slog.Logger
	minCertainty float32
	limit        int
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever) error

// WithRetrieverLogger sets a custom logger.
// Default is slog.Default().
func WithRetrieverLogger(logger *slog.Logger) RetrieverOption {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMinCertainty overrides the similarity threshold.
func WithMinCertainty(minCertainty float32) RetrieverOption {
	return func(r *Retriever) error {
		r.minCertainty = minCertainty
		return nil
	}
}

// WithLimit overrides the per-intent candidate cap.
func WithLimit(limit int) RetrieverOption {
	return func(r *Retriever) error {
		r.limit = limit
		return nil
	}
}

// NewRetriever creates a new retriever over the candidate store.
func NewRetriever(repo storage.CandidateRepository, embedder ai.Embedder, opts ...RetrieverOption) (*Retriever, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Retriever{
		repo:         repo,
		embedder:     embedder,
		logger:       slog.Default().With("component", "retriever"),
		minCertainty: DefaultMinCertainty,
		limit:        DefaultLimit,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve returns the stored candidates of the given intent most similar
// to the query, best first. An intent with no sufficiently similar
// candidates yields an empty list, not an error.
func (r *Retriever) Retrieve(ctx context.Context, intent core.Intent, query string) ([]*core.Record, error) {
	if err := core.ValidateIntent(intent); err != nil {
		return nil, err
	}

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := r.repo.FindSimilar(ctx, intent, vector, r.minCertainty, r.limit)
	if err != nil {
		r.logger.Error("error searching candidates", "intent", intent, "err", err)
		return nil, err
	}

	records := make([]*core.Record, len(matches))
	for i, match := range matches {
		records[i] = match.Record
	}

	r.logger.Debug("retrieved candidates", "intent", intent, "count", len(records))
	return records, nil
}
