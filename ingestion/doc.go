// Package ingestion provides the seed pipeline for candidate records.
//
// The Pipeline type manages the seeding workflow:
//   - Parsing JSON datasets into per-intent candidate records
//   - Validating records against their intent's schema
//   - Generating embeddings concurrently on a worker pool
//   - Storing the embedded records in the vector store
//
// Unlike query dispatch, which is strictly sequential, seeding embeds
// records concurrently to shorten dataset load times.
package ingestion
