package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-recommender/internal/types"
)

// Validation happens before any pool access, so these run without a database.

func TestUpdateCourseEmbedding_RejectsWrongLength(t *testing.T) {
	database := &DB{}
	courseID := "6f1f64a2-58f3-4f78-9a43-0f6d48f3a001"

	cases := map[string][]float32{
		"nil":       nil,
		"empty":     {},
		"too short": make([]float32, types.EmbeddingDim-1),
		"too long":  make([]float32, types.EmbeddingDim+1),
	}

	for name, embedding := range cases {
		t.Run(name, func(t *testing.T) {
			err := database.UpdateCourseEmbedding(context.Background(), courseID, embedding)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "768")
		})
	}
}

func TestUpdateCourseEmbedding_RejectsInvalidCourseID(t *testing.T) {
	database := &DB{}
	embedding := make([]float32, types.EmbeddingDim)

	err := database.UpdateCourseEmbedding(context.Background(), "not-a-uuid", embedding)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid course id")
}

func TestCourseEmbedding_RejectsInvalidCourseID(t *testing.T) {
	database := &DB{}

	_, err := database.CourseEmbedding(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid course id")
}
