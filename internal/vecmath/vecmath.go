// Package vecmath provides pure vector operations used by the similarity ranker.
package vecmath

import (
	"fmt"
	"math"
)

// DimensionMismatchError is returned when two vectors of different lengths
// are compared.
type DimensionMismatchError struct {
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: %d vs %d", e.LenA, e.LenB)
}

// CosineSimilarity computes the cosine similarity between two vectors,
// in [-1, 1]. A zero vector on either side yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{LenA: len(a), LenB: len(b)}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// RelevanceScore rescales a cosine similarity to an integer display score:
// round(((s+1)/2)*100), clamped to [0, 100]. Similarity 1 maps to 100,
// 0 to 50, -1 to 0.
func RelevanceScore(similarity float64) int {
	score := int(math.Round(((similarity + 1) / 2) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
