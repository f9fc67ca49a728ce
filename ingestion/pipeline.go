package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage"
)

// Pipeline seeds candidate records into the vector store. Records are
// validated against their intent's schema, embedded concurrently, and
// stored once every embedding has completed.
type Pipeline struct {
	repository storage.CandidateRepository
	embedder   ai.Embedder
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seed pipeline.
func NewPipeline(repository storage.CandidateRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		embedder:   embedder,
		pool:       pool,
		logger:     slog.Default().With("component", "seed-pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Seed validates, embeds, and stores candidate records, returning the
// number stored. Embedding runs on the worker pool; the first embedding
// error aborts the whole batch before anything is written.
func (p *Pipeline) Seed(ctx context.Context, records ...*core.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	for _, record := range records {
		if err := core.ValidateRecord(record); err != nil {
			return 0, err
		}
	}

	p.logger.Info("embedding candidate records", "records", len(records))

	var wg sync.WaitGroup
	errs := make([]error, len(records))
	for i, record := range records {
		i, record := i, record
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			vector, err := p.embedder.EmbedText(ctx, SeedText(record))
			if err != nil {
				errs[i] = err
				return
			}
			record.Vector = vector
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			p.logger.Error("error embedding candidate record", "err", err)
			return 0, err
		}
	}

	ids, err := p.repository.AddCandidates(ctx, records...)
	if err != nil {
		return 0, err
	}

	p.logger.Info("seeded candidate records", "records", len(ids))
	return len(ids), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// SeedText builds the text embedded for a candidate record. Mapped intents
// use the same lowercased key+description representation the ranker scores
// against; unmapped intents concatenate every textual field value.
func SeedText(record *core.Record) string {
	if mapping, ok := core.LookupMapping(record.Intent); ok {
		return strings.ToLower(record.Text(mapping.KeyField) + " " + record.Text(mapping.DescField))
	}

	var parts []string
	for _, f := range record.Fields {
		if s, ok := f.Value.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
