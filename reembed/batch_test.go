package reembed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/wayfind/ai/mock"
	"github.com/poiesic/wayfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchProcessor_Process(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	records := []*core.Record{
		visaRecord("Visa for Japan?", "90 days visa-free."),
		visaRecord("Visa for Brazil?", "eVisa required."),
	}
	ids, err := repo.AddCandidates(ctx, records...)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		result := make([][]float32, len(texts))
		for i := range texts {
			result[i] = []float32{1.0, 2.0, 2.0} // magnitude 3
		}
		return result, nil
	}
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	err = processor.Process(ctx, records)
	require.NoError(t, err)

	for _, id := range ids {
		updated, err := repo.GetCandidate(ctx, core.IntentVisa, id)
		require.NoError(t, err)
		require.NotEmpty(t, updated.Vector)

		var magnitude float32
		for _, v := range updated.Vector {
			magnitude += v * v
		}
		assert.InDelta(t, 1.0, magnitude, 0.01, "vector should be normalized")
	}
}

func TestBatchProcessor_SeedTextInput(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := dishRecord("Pad Thai", "Stir-fried noodles.")
	_, err := repo.AddCandidates(ctx, record)
	require.NoError(t, err)

	var embedded []string
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		embedded = texts
		return [][]float32{{1, 0, 0}}, nil
	}
	processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)

	err = processor.Process(ctx, []*core.Record{record})
	require.NoError(t, err)

	require.Len(t, embedded, 1)
	assert.Equal(t, "pad thai stir-fried noodles.", embedded[0])
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repo := newTestRepo(t)

	embedder := mock.NewMockEmbedder()
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	err := processor.Process(context.Background(), nil)
	require.NoError(t, err, "empty batch should not error")
	assert.Zero(t, embedder.CallCount())
}

func TestBatchProcessor_EmbeddingError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := visaRecord("Visa?", "Maybe.")
	_, err := repo.AddCandidates(ctx, record)
	require.NoError(t, err)

	expectedErr := errors.New("embedding error")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, expectedErr
	}
	processor := NewBatchProcessor(repo, embedder, 3, time.Millisecond)

	err = processor.Process(ctx, []*core.Record{record})
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

func TestBatchProcessor_Retry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := visaRecord("Visa?", "Maybe.")
	_, err := repo.AddCandidates(ctx, record)
	require.NoError(t, err)

	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		attempts++
		if attempts < 2 {
			return nil, errors.New("temporary error")
		}
		return [][]float32{{1, 0, 0}}, nil
	}
	processor := NewBatchProcessor(repo, embedder, 3, time.Millisecond)

	err = processor.Process(ctx, []*core.Record{record})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts, "should retry on failure")
}

func TestBatchProcessor_CountMismatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := visaRecord("Visa?", "Maybe.")
	_, err := repo.AddCandidates(ctx, record)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 0, 0}, {0, 1, 0}}, nil
	}
	processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)

	err = processor.Process(ctx, []*core.Record{record})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestBatchProcessor_ContextCancellation(t *testing.T) {
	repo := newTestRepo(t)

	record := visaRecord("Visa?", "Maybe.")
	_, err := repo.AddCandidates(context.Background(), record)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		cancel()
		return nil, errors.New("error")
	}
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	err = processor.Process(ctx, []*core.Record{record})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
