// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "strings"

// FieldMapping describes which fields of an intent's records serve as
// similarity key, description, price, type, suitability, and duration for
// ranking and constraint filtering. Optional roles are empty strings.
type FieldMapping struct {
	// ItemsKey is the name of the result list in shaped output,
	// e.g. "restaurants".
	ItemsKey string

	// KeyField and DescField are concatenated to build the text
	// representation used for similarity ranking.
	KeyField  string
	DescField string

	// PriceField holds the heterogeneous textual price used by the
	// budget filter stage. Empty for intents without prices.
	PriceField string

	// TypeField and SuitabilityField drive the re-sorting filter stages.
	TypeField        string
	SuitabilityField string

	// DurationField is reserved; it is not used by any filter stage.
	DurationField string
}

// Schema describes the full record shape stored for one intent:
// the collection name and the ordered property list.
type Schema struct {
	Collection string
	Properties []string
}

// fieldMappings is the process-wide registry of ranking field roles.
// The scam intent deliberately has no mapping: its results pass through
// ranking and filtering unchanged.
var fieldMappings = map[Intent]FieldMapping{
	IntentRestaurant: {
		ItemsKey:         "restaurants",
		KeyField:         "RestaurantName",
		DescField:        "MealDescription",
		PriceField:       "AvgPricePerPersonInUSD",
		TypeField:        "TypeOfCuisine",
		SuitabilityField: "Suitability",
	},
	IntentDish: {
		ItemsKey:         "dishes",
		KeyField:         "DishName",
		DescField:        "DishDetails",
		PriceField:       "AvgPriceInUSD",
		TypeField:        "Type",
		SuitabilityField: "BestFor",
	},
	IntentTransport: {
		ItemsKey:      "transportations",
		KeyField:      "TransportMode",
		DescField:     "RouteInfo",
		PriceField:    "PriceRangeInUSD",
		TypeField:     "TransportMode",
		DurationField: "DurationInHours",
	},
	IntentActivity: {
		ItemsKey:         "activities",
		KeyField:         "Activity",
		DescField:        "Description",
		PriceField:       "BudgetInUSD",
		TypeField:        "Category",
		SuitabilityField: "For",
		DurationField:    "Duration",
	},
	IntentAccommodation: {
		ItemsKey:   "accommodations",
		KeyField:   "AccommodationName",
		DescField:  "AccommodationDetails",
		PriceField: "AvgNightPriceInUSD",
		TypeField:  "Type",
	},
	IntentVisa: {
		ItemsKey:  "visas",
		KeyField:  "Question",
		DescField: "Answer",
	},
	IntentSeasonal: {
		ItemsKey:  "seasonals",
		KeyField:  "Question",
		DescField: "Answer",
	},
}

// schemas is the per-intent collection layout, covering every valid intent
// including those without a field mapping.
var schemas = map[Intent]Schema{
	IntentActivity: {
		Collection: "Activity",
		Properties: []string{
			"Country", "City", "Activity", "Description", "TypeOfTraveler",
			"Duration", "BudgetInUSD", "BudgetDetails", "TipsAndRecommendations",
			"For", "FamilyFriendly", "Category",
		},
	},
	IntentDish: {
		Collection: "Dishes",
		Properties: []string{
			"Country", "City", "DishName", "DishDetails", "Type",
			"AvgPriceInUSD", "BestFor",
		},
	},
	IntentRestaurant: {
		Collection: "Restaurants",
		Properties: []string{
			"Country", "City", "RestaurantName", "TypeOfCuisine", "MealsServed",
			"RecommendedDish", "MealDescription", "AvgPricePerPersonInUSD",
			"BudgetRange", "Suitability",
		},
	},
	IntentScam: {
		Collection: "Scams",
		Properties: []string{
			"Country", "City", "ScamType", "Description", "Location",
			"PreventionTips",
		},
	},
	IntentAccommodation: {
		Collection: "Accommodations",
		Properties: []string{
			"Country", "City", "AccommodationName", "AccommodationDetails",
			"Type", "AvgNightPriceInUSD",
		},
	},
	IntentTransport: {
		Collection: "Transportation",
		Properties: []string{
			"Country", "From", "To", "TransportMode", "Provider", "Schedule",
			"RouteInfo", "DurationInHours", "PriceRangeInUSD",
			"CostDetailsAndOptions", "AdditionalInfo",
		},
	},
	IntentVisa: {
		Collection: "Visa",
		Properties: []string{"Country", "Question", "Answer"},
	},
	IntentSeasonal: {
		Collection: "Seasonal",
		Properties: []string{"Country", "Question", "Answer"},
	},
}

// LookupMapping returns the field mapping for an intent.
// The second return value is false when the intent has no mapping;
// downstream stages treat that as a pass-through, not an error.
func LookupMapping(intent Intent) (FieldMapping, bool) {
	m, ok := fieldMappings[intent]
	return m, ok
}

// LookupSchema returns the record schema for an intent.
func LookupSchema(intent Intent) (Schema, bool) {
	s, ok := schemas[intent]
	return s, ok
}

// ItemsKey returns the shaped-output list name for an intent, or "" when
// the intent has no mapping. Unmapped intents fall back to the lowercased
// collection name, matching the shape their retrieval agent emits.
func ItemsKey(intent Intent) string {
	if m, ok := fieldMappings[intent]; ok {
		return m.ItemsKey
	}
	if s, ok := schemas[intent]; ok {
		return strings.ToLower(s.Collection)
	}
	return ""
}
