package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/wayfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
  "restaurant": [
    {
      "RestaurantName": "Trattoria Roma",
      "MealDescription": "handmade pasta",
      "AvgPricePerPersonInUSD": "$25",
      "City": "Rome"
    }
  ],
  "visa": [
    {"Question": "Do I need a visa for Italy?", "Answer": "Not for short stays."}
  ]
}`

func TestParseDataset(t *testing.T) {
	t.Run("parses records per intent", func(t *testing.T) {
		records, err := ParseDataset(strings.NewReader(sampleDataset))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, core.IntentRestaurant, records[0].Intent)
		assert.Equal(t, "Trattoria Roma", records[0].Text("RestaurantName"))
		assert.Equal(t, core.IntentVisa, records[1].Intent)
	})

	t.Run("preserves field order", func(t *testing.T) {
		records, err := ParseDataset(strings.NewReader(sampleDataset))
		require.NoError(t, err)

		fields := records[0].Fields
		require.Len(t, fields, 4)
		assert.Equal(t, "RestaurantName", fields[0].Name)
		assert.Equal(t, "MealDescription", fields[1].Name)
		assert.Equal(t, "AvgPricePerPersonInUSD", fields[2].Name)
		assert.Equal(t, "City", fields[3].Name)
	})

	t.Run("unknown intent key", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`{"weather": []}`))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`[1, 2, 3]`))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("malformed record list", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`{"restaurant": {"not": "a list"}}`))
		assert.ErrorIs(t, err, ErrInvalidDataset)
	})

	t.Run("empty dataset", func(t *testing.T) {
		records, err := ParseDataset(strings.NewReader(`{}`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestLoadDataset(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0644))

		records, err := LoadDataset(path)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
