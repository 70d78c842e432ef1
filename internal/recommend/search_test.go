package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-recommender/internal/types"
)

// vec2 builds a full-length embedding with the given first two components,
// zero elsewhere. Cosine similarity against vec2(1, 0) is a/sqrt(a*a+b*b).
func vec2(a, b float32) []float32 {
	v := make([]float32, types.EmbeddingDim)
	v[0] = a
	v[1] = b
	return v
}

func activeCourse(id, title string, embedding []float32) *types.Course {
	return &types.Course{
		ID:        id,
		Title:     title,
		Status:    types.StatusActive,
		Embedding: embedding,
	}
}

func TestSearch_RanksBySimilarityDescending(t *testing.T) {
	query := vec2(1, 0)
	courses := []*types.Course{
		activeCourse("c1", "Weak match", vec2(0.5, 0.866)),   // sim 0.5
		activeCourse("c2", "Best match", vec2(1, 0)),         // sim 1.0
		activeCourse("c3", "Good match", vec2(0.8, 0.6)),     // sim 0.8
	}

	results := Search(query, courses)
	require.Len(t, results, 3)
	assert.Equal(t, "c2", results[0].CourseID)
	assert.Equal(t, "c3", results[1].CourseID)
	assert.Equal(t, "c1", results[2].CourseID)
	assert.Equal(t, 100, results[0].RelevanceScore)
	assert.Equal(t, 90, results[1].RelevanceScore)
	assert.Equal(t, 75, results[2].RelevanceScore)
}

func TestSearch_DropsBelowThreshold(t *testing.T) {
	query := vec2(1, 0)
	courses := []*types.Course{
		activeCourse("near", "Just above", vec2(0.31, 0.9504)),
		activeCourse("far", "Below threshold", vec2(0.2, 0.9798)),
	}

	results := Search(query, courses)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].CourseID)
}

func TestSearch_CapsAtMaxRecommendations(t *testing.T) {
	query := vec2(1, 0)
	courses := make([]*types.Course, 0, 25)
	for i := 0; i < 25; i++ {
		courses = append(courses, activeCourse(fmt.Sprintf("c%02d", i), "Course", vec2(1, 0)))
	}

	results := Search(query, courses)
	assert.Len(t, results, MaxRecommendations)
}

func TestSearch_ActiveOnlyFilter(t *testing.T) {
	// 5 active and 10 inactive courses share an embedding identical to the
	// query; only the active five may come back, all with score 100.
	query := vec2(1, 0)
	now := time.Now()

	courses := make([]*types.Course, 0, 15)
	for i := 0; i < 5; i++ {
		courses = append(courses, activeCourse(fmt.Sprintf("active_%d", i), "Active", vec2(1, 0)))
	}
	for i := 0; i < 10; i++ {
		course := activeCourse(fmt.Sprintf("inactive_%d", i), "Inactive", vec2(1, 0))
		course.Status = types.StatusInactive
		courses = append(courses, course)
	}
	// A soft-deleted active course must be excluded too.
	deleted := activeCourse("deleted", "Deleted", vec2(1, 0))
	deleted.DeletedAt = &now
	courses = append(courses, deleted)

	results := Search(query, courses)
	require.Len(t, results, 5)
	for _, rec := range results {
		assert.Contains(t, rec.CourseID, "active_")
		assert.Equal(t, 100, rec.RelevanceScore)
	}
}

func TestSearch_SkipsMalformedEmbeddings(t *testing.T) {
	query := vec2(1, 0)
	short := &types.Course{
		ID:        "short",
		Title:     "Truncated embedding",
		Status:    types.StatusActive,
		Embedding: []float32{1, 0},
	}
	missing := activeCourse("missing", "No embedding", nil)
	ok := activeCourse("ok", "Valid", vec2(1, 0))

	results := Search(query, []*types.Course{short, missing, ok})
	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].CourseID)
}

func TestSearch_TieBreakByCourseID(t *testing.T) {
	query := vec2(1, 0)
	courses := []*types.Course{
		activeCourse("zeta", "Z", vec2(1, 0)),
		activeCourse("alpha", "A", vec2(1, 0)),
		activeCourse("mid", "M", vec2(1, 0)),
	}

	results := Search(query, courses)
	require.Len(t, results, 3)
	assert.Equal(t, "alpha", results[0].CourseID)
	assert.Equal(t, "mid", results[1].CourseID)
	assert.Equal(t, "zeta", results[2].CourseID)
}

func TestSearch_EmptyInputs(t *testing.T) {
	assert.Empty(t, Search(vec2(1, 0), nil))
	assert.Empty(t, Search(vec2(1, 0), []*types.Course{}))
	// A query of the wrong dimension makes every course unmatchable.
	assert.Empty(t, Search([]float32{1, 0}, []*types.Course{activeCourse("c", "C", vec2(1, 0))}))
}

func TestSearch_ScoreBounds(t *testing.T) {
	query := vec2(1, 0)
	courses := []*types.Course{
		activeCourse("a", "A", vec2(1, 0)),
		activeCourse("b", "B", vec2(0.6, 0.8)),
		activeCourse("c", "C", vec2(0.31, 0.9504)),
	}

	for _, rec := range Search(query, courses) {
		assert.GreaterOrEqual(t, rec.RelevanceScore, 0)
		assert.LessOrEqual(t, rec.RelevanceScore, 100)
	}
}
