package rank

import "math"

// CosineSimilarity computes the normalized similarity between two embedding
// vectors: dot(a,b) / (|a| * |b|). Degenerate inputs (zero-norm vectors,
// mismatched or empty lengths) yield 0.0 rather than NaN or infinity.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0.0
	}

	sim := dot / denom
	if math.IsNaN(sim) {
		return 0.0
	}
	return sim
}
