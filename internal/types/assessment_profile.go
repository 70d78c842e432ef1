package types

// SkillGap is a named skill where a learner's current proficiency is below
// the target level.
type SkillGap struct {
	Skill        string `json:"skill"`
	CurrentLevel int    `json:"currentLevel,omitempty"`
	TargetLevel  int    `json:"targetLevel,omitempty"`
}

// SkillGapProfile groups skill gaps by priority tier. PriorityA gaps carry
// more weight when building the profile embedding text.
type SkillGapProfile struct {
	PriorityA []SkillGap `json:"priorityA,omitempty"`
	PriorityB []SkillGap `json:"priorityB,omitempty"`
}

// CareerCluster is one career direction scored by the assessment pipeline.
type CareerCluster struct {
	Title   string   `json:"title"`
	Fit     float64  `json:"fit,omitempty"`
	Domains []string `json:"domains,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// CareerFit holds the ordered career clusters; the first element is the top cluster.
type CareerFit struct {
	Clusters []CareerCluster `json:"clusters,omitempty"`
}

// Employability carries free-form notes from the employability assessment.
type Employability struct {
	ImprovementAreas []string `json:"improvementAreas,omitempty"`
	StrengthAreas    []string `json:"strengthAreas,omitempty"`
}

// RIASEC holds the Holland interest code when the assessment produced one.
type RIASEC struct {
	Code string `json:"code,omitempty"`
}

// AssessmentProfile is the read-only learner profile produced by the
// assessment pipeline. At least one of SkillGap or CareerFit must carry
// usable data for profile text construction to succeed.
type AssessmentProfile struct {
	SkillGap      *SkillGapProfile `json:"skillGap,omitempty"`
	CareerFit     *CareerFit       `json:"careerFit,omitempty"`
	Employability *Employability   `json:"employability,omitempty"`
	RIASEC        *RIASEC          `json:"riasec,omitempty"`
	Stream        string           `json:"stream,omitempty"`
}

// Gaps flattens the priority tiers into a single ordered list, priorityA first.
func (p *AssessmentProfile) Gaps() []SkillGap {
	if p == nil || p.SkillGap == nil {
		return nil
	}
	gaps := make([]SkillGap, 0, len(p.SkillGap.PriorityA)+len(p.SkillGap.PriorityB))
	gaps = append(gaps, p.SkillGap.PriorityA...)
	gaps = append(gaps, p.SkillGap.PriorityB...)
	return gaps
}
