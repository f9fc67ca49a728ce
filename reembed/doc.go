// Package reembed regenerates embeddings for stored candidate records.
// It is used after switching embedding models, when every stored vector
// must be recomputed from the record's seed text. Candidates are walked
// per intent in batches, embedded with retry, and written back in place.
package reembed
