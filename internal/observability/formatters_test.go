package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/types"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRecommendations([]types.RecommendedCourse{
		{CourseID: "c1", Title: "Python Basics", RelevanceScore: 92},
		{CourseID: "c2", Title: "SQL Fundamentals", RelevanceScore: 75},
	})

	out := buf.String()
	assert.Contains(t, out, "Recommendations (2)")
	assert.Contains(t, out, "Python Basics")
	assert.Contains(t, out, "92")
	assert.Contains(t, out, "SQL Fundamentals")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)

	assert.Contains(t, buf.String(), "No courses passed the similarity")
}

func TestPrintSkillGapCourses(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillGapCourses(map[string][]types.RecommendedCourse{
		"Python": {
			{CourseID: "c1", Title: "Python Basics", RelevanceScore: 100, MatchType: types.MatchDirect},
		},
		"Go": nil,
	})

	out := buf.String()
	assert.Contains(t, out, "Skill Gap Courses (2 gaps)")
	assert.Contains(t, out, "Python:")
	assert.Contains(t, out, "direct")
	assert.Contains(t, out, "no matching courses")
}

func TestPrintBatchResult(t *testing.T) {
	var buf bytes.Buffer
	result := catalog.BatchResult{
		Succeeded: 7,
		Failed:    2,
		Errors: []catalog.CourseError{
			{CourseID: "c1", Err: errors.New("rate limit exceeded")},
			{CourseID: "c2", Err: errors.New("course title is required")},
		},
	}

	NewPrinter(&buf).PrintBatchResult(result)

	out := buf.String()
	assert.Contains(t, out, "Succeeded: 7")
	assert.Contains(t, out, "Failed:    2")
	assert.Contains(t, out, "c1")
}

func TestPrintBatchResult_TruncatesErrorList(t *testing.T) {
	result := catalog.BatchResult{Failed: 8}
	for i := 0; i < 8; i++ {
		result.Errors = append(result.Errors, catalog.CourseError{
			CourseID: "c", Err: errors.New("boom"),
		})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchResult(result)

	assert.Contains(t, buf.String(), "3 more errors")
}
