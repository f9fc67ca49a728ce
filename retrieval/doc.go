// Package retrieval maps intents to their retrieval agents and fetches
// candidate records from the vector store.
//
// Each supported intent registers an Agent whose role name keys that
// intent's entry in aggregated results. The Retriever embeds a query and
// scans the intent's partition of the candidate store, returning at most
// DefaultLimit candidates with certainty at or above DefaultMinCertainty.
package retrieval
