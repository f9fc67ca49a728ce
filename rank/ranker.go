package rank

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
)

// Ranker orders candidate records by semantic similarity to a query.
type Ranker struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithRankerLogger sets a custom logger.
// Default is slog.Default().
func WithRankerLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(embedder ai.Embedder, opts ...RankerOption) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Ranker{
		embedder: embedder,
		logger:   slog.Default().With("component", "ranker"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank returns the candidates ordered by cosine similarity to the query,
// descending. Each candidate's text representation is its mapping key field
// concatenated with its description field, lowercased. Ties and degenerate
// similarities preserve the input order (stable sort). The result is a
// permutation of the input; the input slice is not modified.
func (r *Ranker) Rank(ctx context.Context, records []*core.Record, query string, mapping core.FieldMapping) ([]*core.Record, error) {
	if len(records) == 0 {
		return []*core.Record{}, nil
	}

	queryVector, err := r.embedder.EmbedText(ctx, strings.ToLower(query))
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = strings.ToLower(record.Text(mapping.KeyField) + " " + record.Text(mapping.DescField))
	}

	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		r.logger.Error("error generating embeddings for candidates", "count", len(texts), "err", err)
		return nil, err
	}

	scores := make([]float64, len(records))
	for i := range records {
		if i < len(vectors) {
			scores[i] = CosineSimilarity(queryVector, vectors[i])
		}
	}

	ranked := make([]*core.Record, len(records))
	index := make([]int, len(records))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		return scores[index[a]] > scores[index[b]]
	})
	for i, idx := range index {
		ranked[i] = records[idx]
	}

	r.logger.Debug("ranked candidates", "count", len(ranked), "query", query)
	return ranked, nil
}
