// Package recommend ranks catalog courses against learner embeddings and
// maps skill gaps to courses.
package recommend

import (
	"sort"

	"github.com/jonathan/course-recommender/internal/types"
	"github.com/jonathan/course-recommender/internal/vecmath"
)

const (
	// MaxRecommendations caps the ranked list returned for a profile.
	MaxRecommendations = 10
	// MinSimilarityThreshold drops courses with weak semantic affinity to
	// the query embedding.
	MinSimilarityThreshold = 0.3
)

// scoredCourse pairs a course with its raw similarity to a query embedding.
type scoredCourse struct {
	course     *types.Course
	similarity float64
}

// Search ranks eligible courses against a query embedding. Ineligible
// courses (wrong status, soft-deleted, missing or malformed embedding) are
// never returned regardless of similarity. Results are sorted by raw
// similarity descending, ties broken by course id, and capped at
// MaxRecommendations. Empty inputs yield an empty slice, never an error.
func Search(queryEmbedding []float32, courses []*types.Course) []types.RecommendedCourse {
	scored := scoreEligible(queryEmbedding, courses, MinSimilarityThreshold)
	sortBySimilarity(scored)
	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	results := make([]types.RecommendedCourse, 0, len(scored))
	for _, sc := range scored {
		results = append(results, types.RecommendedCourse{
			CourseID:       sc.course.ID,
			Title:          sc.course.Title,
			Description:    sc.course.Description,
			Skills:         sc.course.Skills,
			RelevanceScore: vecmath.RelevanceScore(sc.similarity),
		})
	}
	return results
}

// scoreEligible filters to eligible courses and computes similarity against
// the query, dropping anything below threshold. Dimension mismatches make a
// course unmatchable rather than failing the whole search.
func scoreEligible(query []float32, courses []*types.Course, threshold float64) []scoredCourse {
	scored := make([]scoredCourse, 0, len(courses))
	for _, course := range courses {
		if course == nil || !course.Eligible() {
			continue
		}
		similarity, err := vecmath.CosineSimilarity(query, course.Embedding)
		if err != nil {
			continue
		}
		if similarity < threshold {
			continue
		}
		scored = append(scored, scoredCourse{course: course, similarity: similarity})
	}
	return scored
}

// sortBySimilarity orders by raw similarity descending; course id is the
// deterministic tie-break.
func sortBySimilarity(scored []scoredCourse) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].similarity != scored[j].similarity {
			return scored[i].similarity > scored[j].similarity
		}
		return scored[i].course.ID < scored[j].course.ID
	})
}
