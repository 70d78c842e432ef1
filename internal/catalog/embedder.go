package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/course-recommender/internal/embedding"
	"github.com/jonathan/course-recommender/internal/types"
)

// defaultWorkers bounds concurrent embedding calls during a catalog pass.
const defaultWorkers = 4

// EmbeddingStore persists course embeddings keyed by course id.
type EmbeddingStore interface {
	UpdateCourseEmbedding(ctx context.Context, courseID string, embedding []float32) error
}

// CourseError records a single course that failed during a batch pass.
type CourseError struct {
	CourseID string
	Err      error
}

// BatchResult summarizes a catalog embedding pass.
// Succeeded + Failed always equals the number of input courses.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []CourseError
}

// Embedder drives bulk (re-)embedding of the course catalog.
type Embedder struct {
	client  embedding.Client
	store   EmbeddingStore
	workers int
}

// EmbedderOption configures an Embedder.
type EmbedderOption func(*Embedder)

// WithWorkers sets the number of concurrent embedding calls.
func WithWorkers(n int) EmbedderOption {
	return func(e *Embedder) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEmbedder creates an Embedder backed by the given client and store.
func NewEmbedder(client embedding.Client, store EmbeddingStore, opts ...EmbedderOption) *Embedder {
	e := &Embedder{client: client, store: store, workers: defaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmbedCourses embeds every course and persists the vectors. Per-course
// failures are recorded in the result and never stop the pass; a failed
// course gets no write at all. Writes commit independently, so partial
// progress survives a caller timeout.
func (e *Embedder) EmbedCourses(ctx context.Context, courses []*types.Course) BatchResult {
	var (
		mu     sync.Mutex
		result BatchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, course := range courses {
		course := course
		g.Go(func() error {
			if err := e.embedCourse(gctx, course); err != nil {
				mu.Lock()
				result.Failed++
				result.Errors = append(result.Errors, CourseError{CourseID: course.ID, Err: err})
				mu.Unlock()
				// Per-course failures must not cancel the group.
				return nil
			}
			mu.Lock()
			result.Succeeded++
			mu.Unlock()
			return nil
		})
	}

	// Goroutines only ever return nil.
	_ = g.Wait()
	return result
}

func (e *Embedder) embedCourse(ctx context.Context, course *types.Course) error {
	text, err := BuildCourseText(course)
	if err != nil {
		return err
	}

	vec, err := e.client.GenerateEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed course text: %w", err)
	}
	if len(vec) != types.EmbeddingDim {
		return fmt.Errorf("unexpected embedding length %d, want %d", len(vec), types.EmbeddingDim)
	}

	if err := e.store.UpdateCourseEmbedding(ctx, course.ID, vec); err != nil {
		return fmt.Errorf("failed to persist embedding: %w", err)
	}

	// Mirror the persisted vector so in-memory callers see the fresh state.
	course.Embedding = vec
	return nil
}
