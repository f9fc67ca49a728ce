package storage

import (
	"testing"

	"github.com/poiesic/wayfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := core.ID(0xdeadbeefcafe)
		data := MarshalID(id)
		assert.Len(t, data, 8)

		got, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("truncated data", func(t *testing.T) {
		_, err := UnmarshalID([]byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrTruncatedData)
	})
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	t.Run("preserves field order and vector", func(t *testing.T) {
		record := &core.Record{
			Intent: core.IntentRestaurant,
			Fields: []core.Field{
				{Name: "RestaurantName", Value: "Trattoria Roma"},
				{Name: "MealDescription", Value: "handmade pasta"},
				{Name: "AvgPricePerPersonInUSD", Value: "$25"},
				{Name: "City", Value: "Rome"},
			},
			Vector: []float32{0.1, 0.2, 0.3},
		}

		data, err := MarshalRecord(record)
		require.NoError(t, err)

		got, err := UnmarshalRecord(data)
		require.NoError(t, err)
		assert.Equal(t, core.IntentRestaurant, got.Intent)
		require.Len(t, got.Fields, 4)
		assert.Equal(t, "RestaurantName", got.Fields[0].Name)
		assert.Equal(t, "MealDescription", got.Fields[1].Name)
		assert.Equal(t, "AvgPricePerPersonInUSD", got.Fields[2].Name)
		assert.Equal(t, "City", got.Fields[3].Name)
		assert.Equal(t, "Trattoria Roma", got.Text("RestaurantName"))
		assert.Equal(t, record.Vector, got.Vector)
	})

	t.Run("numeric values survive as float64", func(t *testing.T) {
		record := &core.Record{
			Intent: core.IntentDish,
			Fields: []core.Field{
				{Name: "DishName", Value: "Koshary"},
				{Name: "AvgPriceInUSD", Value: 3.5},
			},
		}

		data, err := MarshalRecord(record)
		require.NoError(t, err)

		got, err := UnmarshalRecord(data)
		require.NoError(t, err)
		value, ok := got.Get("AvgPriceInUSD")
		require.True(t, ok)
		assert.Equal(t, 3.5, value)
	})

	t.Run("record without vector", func(t *testing.T) {
		record := &core.Record{
			Intent: core.IntentVisa,
			Fields: []core.Field{
				{Name: "Question", Value: "Do I need a visa for Japan?"},
				{Name: "Answer", Value: "Depends on nationality."},
			},
		}

		data, err := MarshalRecord(record)
		require.NoError(t, err)

		got, err := UnmarshalRecord(data)
		require.NoError(t, err)
		assert.Empty(t, got.Vector)
	})

	t.Run("unknown intent fails", func(t *testing.T) {
		_, err := UnmarshalRecord([]byte(`{"intent":"weather","fields":{}}`))
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("malformed data fails", func(t *testing.T) {
		_, err := UnmarshalRecord([]byte("not json"))
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
