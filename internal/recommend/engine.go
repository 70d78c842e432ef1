package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/course-recommender/internal/embedding"
	"github.com/jonathan/course-recommender/internal/profile"
	"github.com/jonathan/course-recommender/internal/types"
)

// CourseSource loads the recommendable slice of the catalog: active,
// non-deleted courses. Embeddings may be absent on courses the batch
// embedder has not reached yet.
type CourseSource interface {
	ActiveCourses(ctx context.Context) ([]*types.Course, error)
}

// Recommender wires the course store and embedding client into the
// request-scoped recommendation flows. It holds no mutable state, so a
// single instance serves concurrent requests.
type Recommender struct {
	source CourseSource
	client embedding.Client
}

// NewRecommender creates a Recommender.
func NewRecommender(source CourseSource, client embedding.Client) *Recommender {
	return &Recommender{source: source, client: client}
}

// RecommendForProfile builds the profile query embedding and returns the
// ranked recommendation list. Invalid profiles surface an error; a failed
// catalog read degrades to an empty list, since an absent recommendation is
// preferred over a hard failure for an advisory feature.
func (r *Recommender) RecommendForProfile(ctx context.Context, p *types.AssessmentProfile) ([]types.RecommendedCourse, error) {
	text, err := profile.BuildProfileText(p)
	if err != nil {
		return nil, err
	}

	queryEmbedding, err := r.client.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed profile text: %w", err)
	}

	courses, err := r.source.ActiveCourses(ctx)
	if err != nil {
		log.Printf("course catalog read failed, returning no recommendations: %v", err)
		return []types.RecommendedCourse{}, nil
	}

	return Search(queryEmbedding, courses), nil
}

// SkillGapCourses resolves a per-gap course mapping for every skill gap on
// the profile, priorityA gaps first.
func (r *Recommender) SkillGapCourses(ctx context.Context, p *types.AssessmentProfile) (map[string][]types.RecommendedCourse, error) {
	gaps := p.Gaps()
	if len(gaps) == 0 {
		return map[string][]types.RecommendedCourse{}, nil
	}

	courses, err := r.source.ActiveCourses(ctx)
	if err != nil {
		log.Printf("course catalog read failed, returning no skill gap mappings: %v", err)
		return map[string][]types.RecommendedCourse{}, nil
	}

	return r.CoursesForMultipleSkillGaps(ctx, gaps, courses), nil
}

// CoursesForMultipleSkillGaps applies the single-gap mapping independently
// per gap. Gap failures are isolated: when a skill name cannot be embedded,
// that gap degrades to direct matches only and every other gap still
// resolves.
func (r *Recommender) CoursesForMultipleSkillGaps(ctx context.Context, gaps []types.SkillGap, courses []*types.Course) map[string][]types.RecommendedCourse {
	results := make(map[string][]types.RecommendedCourse, len(gaps))
	for i := range gaps {
		gap := gaps[i]
		skill := strings.TrimSpace(gap.Skill)
		if skill == "" {
			continue
		}
		if _, done := results[skill]; done {
			continue
		}

		var skillEmbedding []float32
		vec, err := r.client.GenerateEmbedding(ctx, skill)
		if err != nil {
			log.Printf("failed to embed skill %q, falling back to direct matches: %v", skill, err)
		} else {
			skillEmbedding = vec
		}

		results[skill] = CoursesForSkillGap(&gap, courses, skillEmbedding)
	}
	return results
}
