package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/wayfind/core"
)

const classifierPromptTemplate = `You are a travel query intent classifier.

Classify the user's query into one or more of these categories:
%s

Respond with ONLY the matching category names, comma-separated, lowercase.
Do not include any preamble, explanation, punctuation other than commas, or
categories outside the list. A query may match several categories; list each
one. If nothing matches, respond with the single word none.

Examples:
Query: "Where can I eat cheap pasta in Rome?"
Answer: restaurant, dish

Query: "Do US citizens need a visa for Japan and when is cherry blossom season?"
Answer: visa, seasonal

Query: "How do I get from the airport to the city center?"
Answer: transport`

const filterPromptTemplate = `Analyze the following query and extract filters for budget, dietary preferences, city, type, duration, and suitability. Return your answer as a JSON object with these keys: 'budget', 'dietary', 'city', 'type', 'duration', 'suitability'. If no filter is present, set the value to an empty string ('').

Query: %s`

// buildClassifierPrompt creates the classification system prompt with the
// valid intent vocabulary embedded.
func buildClassifierPrompt() string {
	labels := make([]string, 0, len(core.Intents()))
	for _, intent := range core.Intents() {
		labels = append(labels, string(intent))
	}
	return fmt.Sprintf(classifierPromptTemplate, strings.Join(labels, ", "))
}

// buildFilterPrompt creates the filter extraction prompt for a query.
func buildFilterPrompt(query string) string {
	return fmt.Sprintf(filterPromptTemplate, query)
}
