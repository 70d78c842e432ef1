// Package catalog builds canonical course text and drives bulk embedding of
// the course catalog.
package catalog

import (
	"errors"
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
)

// ErrMissingTitle is returned when a course has no usable title.
var ErrMissingTitle = errors.New("course title is required")

// BuildCourseText renders a course into the fixed text template fed to the
// embedding model. Field order never varies, so identical catalog content
// embeds identically.
func BuildCourseText(course *types.Course) (string, error) {
	if course == nil || strings.TrimSpace(course.Title) == "" {
		return "", ErrMissingTitle
	}

	var sb strings.Builder
	sb.WriteString("Title: ")
	sb.WriteString(strings.TrimSpace(course.Title))

	if desc := strings.TrimSpace(course.Description); desc != "" {
		sb.WriteString("\nDescription: ")
		sb.WriteString(desc)
	}

	skills := make([]string, 0, len(course.Skills))
	for _, skill := range course.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) > 0 {
		sb.WriteString("\nSkills: ")
		sb.WriteString(strings.Join(skills, ", "))
	}

	if len(course.TargetOutcomes) > 0 {
		sb.WriteString("\nTarget Outcomes: ")
		sb.WriteString(strings.Join(course.TargetOutcomes, "; "))
	}

	return sb.String(), nil
}
