package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/ingestion"
	"github.com/poiesic/wayfind/storage"
)

// BatchProcessor regenerates embeddings for batches of candidate records.
type BatchProcessor struct {
	repo           storage.CandidateRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.CandidateRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process regenerates embeddings for a batch of candidates and writes
// them back. The seed text is rebuilt from record fields so the new
// vectors match what a fresh seeding run would produce. Vectors are
// normalized to unit length before storage. Because candidate IDs are
// derived from field content, rewriting a record with a new vector
// overwrites it in place.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.Record) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = ingestion.SeedText(record)
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	for i := range records {
		records[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.AddCandidates(ctx, records...)
	if err != nil {
		return fmt.Errorf("failed to update candidates: %w", err)
	}

	return nil
}
