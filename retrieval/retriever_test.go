package retrieval

import (
	"context"
	"testing"

	"github.com/poiesic/wayfind/ai/mock"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetriever(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder)
		require.NoError(t, err)
		assert.NotNil(t, retriever)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewRetriever(nil, embedder)
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewRetriever(repo, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestRetrieve(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	records := []*core.Record{
		{
			Intent: core.IntentRestaurant,
			Fields: []core.Field{
				{Name: "RestaurantName", Value: "Trattoria Roma"},
				{Name: "MealDescription", Value: "handmade pasta"},
			},
			Vector: []float32{1, 0, 0},
		},
		{
			Intent: core.IntentRestaurant,
			Fields: []core.Field{
				{Name: "RestaurantName", Value: "Far Away"},
				{Name: "MealDescription", Value: "unrelated"},
			},
			Vector: []float32{0, 0, 1},
		},
		{
			Intent: core.IntentDish,
			Fields: []core.Field{
				{Name: "DishName", Value: "Carbonara"},
				{Name: "DishDetails", Value: "egg and guanciale pasta"},
			},
			Vector: []float32{1, 0, 0},
		},
	}
	_, err = repo.AddCandidates(ctx, records...)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	t.Run("returns candidates above threshold", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder)
		require.NoError(t, err)

		results, err := retriever.Retrieve(ctx, core.IntentRestaurant, "pasta in Rome")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Trattoria Roma", results[0].Text("RestaurantName"))
	})

	t.Run("scans only the requested intent", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder)
		require.NoError(t, err)

		results, err := retriever.Retrieve(ctx, core.IntentDish, "pasta")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Carbonara", results[0].Text("DishName"))
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder)
		require.NoError(t, err)

		results, err := retriever.Retrieve(ctx, core.IntentVisa, "pasta")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("lowered threshold includes weak matches", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder, WithMinCertainty(0))
		require.NoError(t, err)

		results, err := retriever.Retrieve(ctx, core.IntentRestaurant, "pasta")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("limit caps results", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder, WithMinCertainty(0), WithLimit(1))
		require.NoError(t, err)

		results, err := retriever.Retrieve(ctx, core.IntentRestaurant, "pasta")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("invalid intent", func(t *testing.T) {
		retriever, err := NewRetriever(repo, embedder)
		require.NoError(t, err)

		_, err = retriever.Retrieve(ctx, core.IntentUnknown, "anything")
		assert.ErrorIs(t, err, core.ErrUnknownIntent)
	})
}
