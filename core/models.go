package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored candidate records.
// It is generated from record content so that reseeding the same
// dataset produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Intent is the canonical category a travel query is routed to.
// The set of valid intents is fixed at process start.
type Intent string

const (
	IntentActivity      Intent = "activity"
	IntentAccommodation Intent = "accommodation"
	IntentVisa          Intent = "visa"
	IntentScam          Intent = "scam"
	IntentDish          Intent = "dish"
	IntentTransport     Intent = "transport"
	IntentSeasonal      Intent = "seasonal"
	IntentRestaurant    Intent = "restaurant"

	// IntentUnknown is the sentinel returned when a query cannot be
	// classified into any valid intent.
	IntentUnknown Intent = "unknown"
)

// Intents returns the closed set of valid intents, excluding IntentUnknown.
func Intents() []Intent {
	return []Intent{
		IntentActivity,
		IntentAccommodation,
		IntentVisa,
		IntentScam,
		IntentDish,
		IntentTransport,
		IntentSeasonal,
		IntentRestaurant,
	}
}

// ParseIntent normalizes a label (trim, lowercase) and reports whether it
// names a valid intent. IntentUnknown is not a valid label.
func ParseIntent(label string) (Intent, bool) {
	normalized := Intent(strings.ToLower(strings.TrimSpace(label)))
	for _, intent := range Intents() {
		if normalized == intent {
			return intent, true
		}
	}
	return IntentUnknown, false
}

// Field is a single named value of a candidate record.
// Values are strings, occasionally numbers.
type Field struct {
	Name  string
	Value any
}

// Record is one retrieved candidate for a given intent.
// Fields are ordered; their shape is selected by the intent's schema
// in the registry. Records are read-only to the ranking pipeline.
type Record struct {
	Intent Intent
	Fields []Field
	Vector []float32 // Embedding of the key+description text (populated at seed time)
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns the string form of the named field, or "" if the field is
// missing or not a string.
func (r *Record) Text(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Set replaces the named field's value, or appends a new field if absent.
// Field order is preserved for existing fields.
func (r *Record) Set(name string, value any) {
	for i, f := range r.Fields {
		if f.Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// FilterKey names one of the structured filters extracted from a query.
type FilterKey string

const (
	FilterBudget      FilterKey = "budget"
	FilterDietary     FilterKey = "dietary"
	FilterCity        FilterKey = "city"
	FilterType        FilterKey = "type"
	FilterDuration    FilterKey = "duration"
	FilterSuitability FilterKey = "suitability"
)

// FilterKeys returns all recognized filter keys.
func FilterKeys() []FilterKey {
	return []FilterKey{
		FilterBudget,
		FilterDietary,
		FilterCity,
		FilterType,
		FilterDuration,
		FilterSuitability,
	}
}

// FilterSet is a sparse mapping from filter key to free-text value.
// No key maps to an empty string; Compact enforces the invariant.
type FilterSet map[FilterKey]string

// Compact removes entries with empty values and unrecognized keys,
// returning the same map for convenience.
func (f FilterSet) Compact() FilterSet {
	valid := make(map[FilterKey]bool, len(FilterKeys()))
	for _, k := range FilterKeys() {
		valid[k] = true
	}
	for k, v := range f {
		if v == "" || !valid[k] {
			delete(f, k)
		}
	}
	return f
}

// Match is a candidate record returned from vector similarity search,
// with the search certainty attached.
type Match struct {
	Record    *Record
	Certainty float32
}

// ResultSet is an ordered candidate list wrapped under its intent's items
// key, the shape callers and the persisted artifact expect.
type ResultSet struct {
	ItemsKey string
	Records  []*Record
}

// IntentOutput is the per-agent dispatch result: either a structured
// ResultSet or raw text when an agent failed to produce structured output.
// Exactly one of the two is populated.
type IntentOutput struct {
	Set *ResultSet
	Raw string
}

// Structured reports whether the output carries a shaped result set.
func (o IntentOutput) Structured() bool {
	return o.Set != nil
}
