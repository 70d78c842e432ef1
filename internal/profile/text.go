// Package profile serializes assessment profiles into the canonical text
// blob used for the learner's query embedding.
package profile

import (
	"errors"
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
)

// ErrMissingProfile is returned when no profile is supplied.
var ErrMissingProfile = errors.New("assessment profile is required")

// ErrEmptyProfile is returned when neither skill gaps nor career fit data
// carry usable content.
var ErrEmptyProfile = errors.New("assessment profile has no skill gap or career fit data")

// BuildProfileText renders an assessment profile into a deterministic text
// blob. Section order encodes priority weighting for the embedding model:
// skill gaps first, then career interests, then employability notes.
func BuildProfileText(p *types.AssessmentProfile) (string, error) {
	if p == nil {
		return "", ErrMissingProfile
	}

	prioritySkills := collectSkillNames(p.SkillGap)
	clusters := collectClusters(p.CareerFit)
	if len(prioritySkills) == 0 && len(clusters) == 0 {
		return "", ErrEmptyProfile
	}

	var sections []string

	if len(prioritySkills) > 0 {
		sections = append(sections, "Priority Skills to Develop: "+strings.Join(prioritySkills, ", "))
	}

	if len(clusters) > 0 {
		titles := make([]string, 0, len(clusters))
		for _, cluster := range clusters {
			titles = append(titles, cluster.Title)
		}
		sections = append(sections, "Career Interests: "+strings.Join(titles, ", "))

		// The top cluster's domains and roles sharpen the query embedding.
		top := clusters[0]
		if line := joinNonBlank(top.Domains); line != "" {
			sections = append(sections, "Career Domains: "+line)
		}
		if line := joinNonBlank(top.Roles); line != "" {
			sections = append(sections, "Target Roles: "+line)
		}
	}

	if p.Employability != nil {
		if line := joinNonBlank(p.Employability.ImprovementAreas); line != "" {
			sections = append(sections, "Areas to Improve: "+line)
		}
		if line := joinNonBlank(p.Employability.StrengthAreas); line != "" {
			sections = append(sections, "Strengths: "+line)
		}
	}

	if p.RIASEC != nil && strings.TrimSpace(p.RIASEC.Code) != "" {
		sections = append(sections, "RIASEC Code: "+strings.TrimSpace(p.RIASEC.Code))
	}
	if stream := strings.TrimSpace(p.Stream); stream != "" {
		sections = append(sections, "Stream: "+stream)
	}

	return strings.Join(sections, "\n"), nil
}

// collectSkillNames returns trimmed, non-blank skill names, priorityA first.
func collectSkillNames(sg *types.SkillGapProfile) []string {
	if sg == nil {
		return nil
	}
	names := make([]string, 0, len(sg.PriorityA)+len(sg.PriorityB))
	for _, gap := range sg.PriorityA {
		if name := strings.TrimSpace(gap.Skill); name != "" {
			names = append(names, name)
		}
	}
	for _, gap := range sg.PriorityB {
		if name := strings.TrimSpace(gap.Skill); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// collectClusters returns clusters with a usable title, preserving order.
func collectClusters(cf *types.CareerFit) []types.CareerCluster {
	if cf == nil {
		return nil
	}
	clusters := make([]types.CareerCluster, 0, len(cf.Clusters))
	for _, cluster := range cf.Clusters {
		trimmed := cluster
		trimmed.Title = strings.TrimSpace(cluster.Title)
		if trimmed.Title != "" {
			clusters = append(clusters, trimmed)
		}
	}
	return clusters
}

func joinNonBlank(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}
