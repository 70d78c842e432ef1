package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-recommender/internal/types"
)

func TestBuildCourseText_TitleOnly(t *testing.T) {
	course := &types.Course{Title: "Intro to Data Analysis"}

	text, err := BuildCourseText(course)
	require.NoError(t, err)
	assert.Equal(t, "Title: Intro to Data Analysis", text)
}

func TestBuildCourseText_AllFields(t *testing.T) {
	course := &types.Course{
		Title:          "Backend Engineering with Go",
		Description:    "  Build production HTTP services.  ",
		Skills:         []string{"Go", "PostgreSQL", "REST APIs"},
		TargetOutcomes: []string{"Design an API", "Deploy a service"},
	}

	text, err := BuildCourseText(course)
	require.NoError(t, err)
	assert.Equal(t,
		"Title: Backend Engineering with Go\n"+
			"Description: Build production HTTP services.\n"+
			"Skills: Go, PostgreSQL, REST APIs\n"+
			"Target Outcomes: Design an API; Deploy a service",
		text)
}

func TestBuildCourseText_MissingTitle(t *testing.T) {
	_, err := BuildCourseText(&types.Course{Title: "   "})
	require.ErrorIs(t, err, ErrMissingTitle)

	_, err = BuildCourseText(nil)
	require.ErrorIs(t, err, ErrMissingTitle)
}

func TestBuildCourseText_BlankSkillsFiltered(t *testing.T) {
	course := &types.Course{
		Title:  "SQL Fundamentals",
		Skills: []string{"  ", "SQL", "", "  Joins "},
	}

	text, err := BuildCourseText(course)
	require.NoError(t, err)
	assert.Equal(t, "Title: SQL Fundamentals\nSkills: SQL, Joins", text)
}

func TestBuildCourseText_AllSkillsBlankOmitsSection(t *testing.T) {
	course := &types.Course{
		Title:  "SQL Fundamentals",
		Skills: []string{"  ", ""},
	}

	text, err := BuildCourseText(course)
	require.NoError(t, err)
	assert.NotContains(t, text, "Skills:")
}

func TestBuildCourseText_Deterministic(t *testing.T) {
	course := &types.Course{
		Title:       "Cloud Foundations",
		Description: "Core cloud concepts.",
		Skills:      []string{"AWS", "Networking"},
	}

	first, err := BuildCourseText(course)
	require.NoError(t, err)
	second, err := BuildCourseText(course)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
