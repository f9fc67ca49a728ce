package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		want   Intent
		wantOK bool
	}{
		{name: "exact match", label: "restaurant", want: IntentRestaurant, wantOK: true},
		{name: "uppercase", label: "VISA", want: IntentVisa, wantOK: true},
		{name: "surrounding whitespace", label: "  dish  ", want: IntentDish, wantOK: true},
		{name: "mixed case and whitespace", label: " Transport ", want: IntentTransport, wantOK: true},
		{name: "invalid label", label: "banana", want: IntentUnknown, wantOK: false},
		{name: "empty label", label: "", want: IntentUnknown, wantOK: false},
		{name: "unknown is not valid", label: "unknown", want: IntentUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntent(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestIntents(t *testing.T) {
	intents := Intents()

	assert.Len(t, intents, 8)
	assert.NotContains(t, intents, IntentUnknown)

	// Every valid intent has a schema.
	for _, intent := range intents {
		_, ok := LookupSchema(intent)
		assert.True(t, ok, "missing schema for %q", intent)
	}
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Pad Thai: stir-fried rice noodles")
		b := IDFromContent("Pad Thai: stir-fried rice noodles")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		a := IDFromContent("Pad Thai")
		b := IDFromContent("Som Tum")
		assert.NotEqual(t, a, b)
	})
}

func TestRecordFields(t *testing.T) {
	record := &Record{
		Intent: IntentRestaurant,
		Fields: []Field{
			{Name: "RestaurantName", Value: "Thip Samai"},
			{Name: "City", Value: "Bangkok"},
			{Name: "AvgPricePerPersonInUSD", Value: float64(5)},
		},
	}

	t.Run("Get returns existing field", func(t *testing.T) {
		v, ok := record.Get("City")
		require.True(t, ok)
		assert.Equal(t, "Bangkok", v)
	})

	t.Run("Get reports missing field", func(t *testing.T) {
		_, ok := record.Get("Suitability")
		assert.False(t, ok)
	})

	t.Run("Text returns string fields", func(t *testing.T) {
		assert.Equal(t, "Thip Samai", record.Text("RestaurantName"))
	})

	t.Run("Text is empty for non-string and missing fields", func(t *testing.T) {
		assert.Empty(t, record.Text("AvgPricePerPersonInUSD"))
		assert.Empty(t, record.Text("Nope"))
	})

	t.Run("Set replaces in place preserving order", func(t *testing.T) {
		r := &Record{Fields: []Field{
			{Name: "Question", Value: "old"},
			{Name: "Answer", Value: "kept"},
		}}
		r.Set("Question", "new")
		require.Len(t, r.Fields, 2)
		assert.Equal(t, "Question", r.Fields[0].Name)
		assert.Equal(t, "new", r.Fields[0].Value)
		assert.Equal(t, "kept", r.Fields[1].Value)
	})

	t.Run("Set appends absent field", func(t *testing.T) {
		r := &Record{Fields: []Field{{Name: "Question", Value: "q"}}}
		r.Set("Answer", "a")
		require.Len(t, r.Fields, 2)
		assert.Equal(t, "Answer", r.Fields[1].Name)
	})
}

func TestFilterSetCompact(t *testing.T) {
	t.Run("drops empty values", func(t *testing.T) {
		filters := FilterSet{
			FilterBudget: "low",
			FilterCity:   "",
		}.Compact()
		assert.Equal(t, FilterSet{FilterBudget: "low"}, filters)
	})

	t.Run("drops unrecognized keys", func(t *testing.T) {
		filters := FilterSet{
			FilterType:     "hostel",
			FilterKey("x"): "y",
		}.Compact()
		assert.Equal(t, FilterSet{FilterType: "hostel"}, filters)
	})

	t.Run("keeps all valid populated keys", func(t *testing.T) {
		filters := FilterSet{}
		for _, k := range FilterKeys() {
			filters[k] = "v"
		}
		assert.Len(t, filters.Compact(), len(FilterKeys()))
	})
}
