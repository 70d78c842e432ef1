package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
	"github.com/jonathan/course-recommender/internal/vecmath"
)

const (
	// MaxCoursesPerSkillGap caps the per-gap mapping.
	MaxCoursesPerSkillGap = 3
	// SemanticSimilarityThreshold gates semantic matches for a single skill.
	SemanticSimilarityThreshold = 0.4
	// semanticTopN bounds how many semantic candidates enter the merge.
	semanticTopN = 5

	directExactScore   = 100
	directPartialScore = 80
	corroborationBoost = 10
	maxCourseScore     = 100
)

// CoursesForSkillGap merges direct keyword matches and semantic matches for
// a single skill gap into a deduplicated, re-ranked, capped list. A nil gap
// or blank skill name yields an empty result, not an error. Passing a nil
// skillEmbedding skips the semantic half.
func CoursesForSkillGap(gap *types.SkillGap, courses []*types.Course, skillEmbedding []float32) []types.RecommendedCourse {
	if gap == nil {
		return nil
	}
	skill := strings.TrimSpace(gap.Skill)
	if skill == "" {
		return nil
	}

	// Keyed by course id so a course matched both ways keeps a single entry.
	merged := make(map[string]types.RecommendedCourse)

	for _, course := range courses {
		if course == nil || course.Status != types.StatusActive || course.DeletedAt != nil {
			continue
		}
		score, ok := directMatchScore(skill, course.Skills)
		if !ok {
			continue
		}
		merged[course.ID] = types.RecommendedCourse{
			CourseID:       course.ID,
			Title:          course.Title,
			Description:    course.Description,
			Skills:         course.Skills,
			RelevanceScore: score,
			MatchType:      types.MatchDirect,
		}
	}

	if len(skillEmbedding) > 0 {
		semantic := scoreEligible(skillEmbedding, courses, SemanticSimilarityThreshold)
		sortBySimilarity(semantic)
		if len(semantic) > semanticTopN {
			semantic = semantic[:semanticTopN]
		}

		for _, sc := range semantic {
			if existing, ok := merged[sc.course.ID]; ok {
				// Corroboration: the direct entry wins but gets a boost.
				existing.RelevanceScore += corroborationBoost
				if existing.RelevanceScore > maxCourseScore {
					existing.RelevanceScore = maxCourseScore
				}
				merged[sc.course.ID] = existing
				continue
			}
			merged[sc.course.ID] = types.RecommendedCourse{
				CourseID:       sc.course.ID,
				Title:          sc.course.Title,
				Description:    sc.course.Description,
				Skills:         sc.course.Skills,
				RelevanceScore: vecmath.RelevanceScore(sc.similarity),
				MatchType:      types.MatchSemantic,
			}
		}
	}

	results := make([]types.RecommendedCourse, 0, len(merged))
	for _, rc := range merged {
		results = append(results, rc)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].CourseID < results[j].CourseID
	})
	if len(results) > MaxCoursesPerSkillGap {
		results = results[:MaxCoursesPerSkillGap]
	}

	for i := range results {
		results[i].SkillGapAddressed = skill
		results[i].WhyThisCourse = explainMatch(skill, results[i].MatchType)
	}
	return results
}

// directMatchScore compares the gap skill against the course's skill tags,
// case-insensitively and substring in either direction. Exact equality
// scores directExactScore, any substring match directPartialScore.
func directMatchScore(skill string, courseSkills []string) (int, bool) {
	skillLower := strings.ToLower(skill)
	best := 0
	for _, courseSkill := range courseSkills {
		tag := strings.ToLower(strings.TrimSpace(courseSkill))
		if tag == "" {
			continue
		}
		if tag == skillLower {
			return directExactScore, true
		}
		if strings.Contains(tag, skillLower) || strings.Contains(skillLower, tag) {
			best = directPartialScore
		}
	}
	return best, best > 0
}

// explainMatch produces the learner-facing justification for a mapping.
func explainMatch(skill string, matchType types.MatchType) string {
	if matchType == types.MatchDirect {
		return fmt.Sprintf("This course teaches %s directly through its skill outline.", skill)
	}
	return fmt.Sprintf("This course covers material closely related to %s.", skill)
}
