package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_DefaultVectors(t *testing.T) {
	ctx := context.Background()

	t.Run("same text yields same vector", func(t *testing.T) {
		embedder := NewMockEmbedder()

		first, err := embedder.EmbedText(ctx, "best pizza in rome")
		require.NoError(t, err)
		second, err := embedder.EmbedText(ctx, "best pizza in rome")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different texts yield different vectors", func(t *testing.T) {
		embedder := NewMockEmbedder()

		a, err := embedder.EmbedText(ctx, "cheap hostels")
		require.NoError(t, err)
		b, err := embedder.EmbedText(ctx, "luxury hotels")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("vectors have unit magnitude", func(t *testing.T) {
		embedder := NewMockEmbedder()

		vector, err := embedder.EmbedText(ctx, "street food tour")
		require.NoError(t, err)
		require.Len(t, vector, 384)

		var sumSquares float64
		for _, v := range vector {
			sumSquares += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, sumSquares, 0.001)
	})

	t.Run("batch matches single embedding", func(t *testing.T) {
		embedder := NewMockEmbedder()

		single, err := embedder.EmbedText(ctx, "visa requirements")
		require.NoError(t, err)
		batch, err := embedder.EmbedTexts(ctx, []string{"visa requirements"})
		require.NoError(t, err)

		require.Len(t, batch, 1)
		assert.Equal(t, single, batch[0])
	})

	t.Run("call count and reset", func(t *testing.T) {
		embedder := NewMockEmbedder()

		_, err := embedder.EmbedText(ctx, "a")
		require.NoError(t, err)
		_, err = embedder.EmbedTexts(ctx, []string{"b", "c"})
		require.NoError(t, err)
		assert.Equal(t, 2, embedder.CallCount())

		embedder.Reset()
		assert.Zero(t, embedder.CallCount())
	})
}
