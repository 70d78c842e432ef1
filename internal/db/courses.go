package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/course-recommender/internal/types"
)

// ActiveCourses returns the recommendable slice of the catalog:
// status = 'Active' and not soft-deleted. Courses the batch embedder has not
// reached yet come back with a nil embedding; the ranker filters those out.
// Skills are hydrated from the course_skills lookup table.
func (db *DB) ActiveCourses(ctx context.Context) ([]*types.Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), status, deleted_at,
		        COALESCE(target_outcomes, '{}'), embedding
		 FROM courses
		 WHERE status = 'Active' AND deleted_at IS NULL
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []*types.Course
	for rows.Next() {
		var (
			id     uuid.UUID
			course types.Course
		)
		if err := rows.Scan(&id, &course.Title, &course.Description, &course.Status,
			&course.DeletedAt, &course.TargetOutcomes, &course.Embedding); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.ID = id.String()
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}

	skills, err := db.CourseSkills(ctx)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		course.Skills = skills[course.ID]
	}

	return courses, nil
}

// CourseSkills returns the course_skills lookup rows keyed by course id.
// The side table backs direct skill matching when skills are not
// denormalized onto the course record.
func (db *DB) CourseSkills(ctx context.Context) (map[string][]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT course_id, skill FROM course_skills ORDER BY course_id, skill`)
	if err != nil {
		return nil, fmt.Errorf("failed to query course skills: %w", err)
	}
	defer rows.Close()

	skills := make(map[string][]string)
	for rows.Next() {
		var (
			courseID uuid.UUID
			skill    string
		)
		if err := rows.Scan(&courseID, &skill); err != nil {
			return nil, fmt.Errorf("failed to scan course skill: %w", err)
		}
		skills[courseID.String()] = append(skills[courseID.String()], skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course skills: %w", err)
	}
	return skills, nil
}

// UpdateCourseEmbedding writes the embedding column for one course. Vectors
// must be exactly types.EmbeddingDim long; anything else is rejected before
// touching the database so a failed embedding never leaves partial state.
func (db *DB) UpdateCourseEmbedding(ctx context.Context, courseID string, embedding []float32) error {
	if len(embedding) != types.EmbeddingDim {
		return fmt.Errorf("embedding must have %d components, got %d", types.EmbeddingDim, len(embedding))
	}

	id, err := uuid.Parse(courseID)
	if err != nil {
		return fmt.Errorf("invalid course id %q: %w", courseID, err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE courses SET embedding = $1, embedded_at = NOW() WHERE id = $2`,
		embedding, id)
	if err != nil {
		return fmt.Errorf("failed to update embedding for course %s: %w", courseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s not found", courseID)
	}
	return nil
}

// CourseEmbedding reads back the stored embedding for one course. Returns
// nil when the course has not been embedded yet.
func (db *DB) CourseEmbedding(ctx context.Context, courseID string) ([]float32, error) {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return nil, fmt.Errorf("invalid course id %q: %w", courseID, err)
	}

	var embedding []float32
	err = db.pool.QueryRow(ctx,
		`SELECT embedding FROM courses WHERE id = $1`, id,
	).Scan(&embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding for course %s: %w", courseID, err)
	}
	return embedding, nil
}
