package types

// MatchType distinguishes how a skill-gap course mapping was found.
type MatchType string

// Match type constants
const (
	// MatchDirect means the course was found via keyword/tag comparison.
	MatchDirect MatchType = "direct"
	// MatchSemantic means the course was found via embedding similarity.
	MatchSemantic MatchType = "semantic"
)

// RecommendedCourse is an ephemeral projection of a Course plus ranking
// metadata. It is recomputed per request and never persisted.
type RecommendedCourse struct {
	CourseID       string   `json:"course_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	RelevanceScore int      `json:"relevance_score"`

	// Set only on skill-gap mappings.
	MatchType         MatchType `json:"match_type,omitempty"`
	SkillGapAddressed string    `json:"skill_gap_addressed,omitempty"`
	WhyThisCourse     string    `json:"why_this_course,omitempty"`
}
