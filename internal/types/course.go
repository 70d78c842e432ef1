// Package types defines the shared domain structures for the course recommendation engine.
package types

import "time"

// EmbeddingDim is the fixed dimensionality of course and query embeddings
// produced by the text-embedding-004 model.
const EmbeddingDim = 768

// CourseStatus represents the publication state of a catalog course.
type CourseStatus string

// Course status constants
const (
	StatusActive   CourseStatus = "Active"
	StatusInactive CourseStatus = "Inactive"
	StatusDraft    CourseStatus = "Draft"
	StatusArchived CourseStatus = "Archived"
	StatusPending  CourseStatus = "Pending"
)

// Course is a catalog entry as read from the course store.
type Course struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	TargetOutcomes []string     `json:"target_outcomes,omitempty"`
	Status         CourseStatus `json:"status"`
	DeletedAt      *time.Time   `json:"deleted_at,omitempty"`
	Embedding      []float32    `json:"embedding,omitempty"`
}

// Eligible reports whether the course may appear in similarity results:
// active, not soft-deleted, and carrying a full-length embedding.
func (c *Course) Eligible() bool {
	return c.Status == StatusActive && c.DeletedAt == nil && len(c.Embedding) == EmbeddingDim
}
