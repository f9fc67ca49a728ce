package storage

import (
	"context"

	"github.com/poiesic/wayfind/core"
)

// CandidateRepository provides operations for managing travel candidate
// records, partitioned by intent. Implementations must be thread-safe and
// support concurrent access.
type CandidateRepository interface {
	// AddCandidates adds one or more candidate records to storage.
	// IDs are derived from record content, so adding the same record
	// twice overwrites rather than duplicates.
	// Returns the ID assigned to each record, in input order.
	AddCandidates(ctx context.Context, records ...*core.Record) ([]core.ID, error)

	// GetCandidate retrieves a single candidate by intent and ID.
	// Returns ErrNotFound if the candidate doesn't exist.
	GetCandidate(ctx context.Context, intent core.Intent, id core.ID) (*core.Record, error)

	// DeleteCandidates removes candidates by their IDs.
	// Returns ErrNotFound if any candidate doesn't exist.
	DeleteCandidates(ctx context.Context, intent core.Intent, ids ...core.ID) error

	// CountCandidates returns the number of stored candidates for an intent.
	CountCandidates(ctx context.Context, intent core.Intent) (int, error)

	// ListCandidates returns all stored candidates for an intent.
	// Order is stable across calls but otherwise unspecified.
	ListCandidates(ctx context.Context, intent core.Intent) ([]*core.Record, error)

	// FindSimilar finds candidates of the given intent similar to the vector.
	// Returns matches with certainty >= minCertainty, up to limit results,
	// ordered by certainty (highest first). Certainty is cosine similarity
	// rescaled to [0, 1].
	FindSimilar(ctx context.Context, intent core.Intent, vector []float32, minCertainty float32, limit int) ([]*core.Match, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
