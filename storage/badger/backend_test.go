package badger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend(t *testing.T) {
	t.Run("in-memory", func(t *testing.T) {
		backend, err := OpenBackend("", true)
		require.NoError(t, err)
		assert.False(t, backend.IsClosed())
		require.NoError(t, backend.Close())
		assert.True(t, backend.IsClosed())
	})

	t.Run("creates directory on disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "wayfind-db")
		backend, err := OpenBackend(dir, false)
		require.NoError(t, err)
		defer backend.Close()

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := OpenBackend(file, false)
		assert.Error(t, err)
	})
}

func TestFindSimilar(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// Certainty is (cosine+1)/2: an identical vector scores 1.0, an
	// orthogonal one 0.5.
	_, err = repo.AddCandidates(ctx,
		restaurant("Near Match", []float32{1, 0, 0}),
		restaurant("Partial Match", []float32{0.7, 0.7, 0}),
		restaurant("Far Match", []float32{0, 0, 1}),
		testRecord(core.IntentDish, []core.Field{
			{Name: "DishName", Value: "Koshary"},
			{Name: "DishDetails", Value: "rice and lentils"},
		}, []float32{1, 0, 0}),
	)
	require.NoError(t, err)

	t.Run("filters by certainty and sorts descending", func(t *testing.T) {
		matches, err := backend.FindSimilar(ctx, core.IntentRestaurant, []float32{1, 0, 0}, 0.65, 10)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "Near Match", matches[0].Record.Text("RestaurantName"))
		assert.Equal(t, "Partial Match", matches[1].Record.Text("RestaurantName"))
		assert.Greater(t, matches[0].Certainty, matches[1].Certainty)
	})

	t.Run("scans only the requested intent", func(t *testing.T) {
		matches, err := backend.FindSimilar(ctx, core.IntentDish, []float32{1, 0, 0}, 0.65, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Koshary", matches[0].Record.Text("DishName"))
	})

	t.Run("respects limit", func(t *testing.T) {
		matches, err := backend.FindSimilar(ctx, core.IntentRestaurant, []float32{1, 0, 0}, 0.0, 1)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("no matches above threshold", func(t *testing.T) {
		matches, err := backend.FindSimilar(ctx, core.IntentRestaurant, []float32{-1, 0, 0}, 0.65, 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty partition", func(t *testing.T) {
		matches, err := backend.FindSimilar(ctx, core.IntentScam, []float32{1, 0, 0}, 0.0, 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := backend.FindSimilar(ctx, core.IntentRestaurant, []float32{1, 0, 0}, 0.0, 0)
		assert.ErrorIs(t, err, storage.ErrInvalidQuery)
	})
}

func TestWithTransaction(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	t.Run("commits on nil", func(t *testing.T) {
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("propagates errors", func(t *testing.T) {
		err := backend.WithTransaction(ctx, func(ctx context.Context) error {
			return storage.ErrTransactionFailed
		})
		assert.ErrorIs(t, err, storage.ErrTransactionFailed)
	})
}
