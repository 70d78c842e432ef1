// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxErrorsToShow is the default number of batch errors to display
	maxErrorsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs a human-readable summary of a ranked
// recommendation list.
func (p *Printer) PrintRecommendations(recs []types.RecommendedCourse) {
	var sb strings.Builder

	if len(recs) == 0 {
		sb.WriteString("No courses passed the similarity threshold.")
	}
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%2d. [%3d] %s\n", i+1, rec.RelevanceScore, rec.Title))
	}

	p.printBox(fmt.Sprintf("Recommendations (%d)", len(recs)), strings.TrimRight(sb.String(), "\n"))
}

// PrintSkillGapCourses outputs the per-gap course mapping, gaps in sorted
// order so repeated runs print identically.
func (p *Printer) PrintSkillGapCourses(mapping map[string][]types.RecommendedCourse) {
	skills := make([]string, 0, len(mapping))
	for skill := range mapping {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	var sb strings.Builder
	for _, skill := range skills {
		sb.WriteString(fmt.Sprintf("%s:\n", skill))
		if len(mapping[skill]) == 0 {
			sb.WriteString("  (no matching courses)\n")
		}
		for _, rec := range mapping[skill] {
			sb.WriteString(fmt.Sprintf("  [%3d|%s] %s\n", rec.RelevanceScore, rec.MatchType, rec.Title))
		}
	}

	p.printBox(fmt.Sprintf("Skill Gap Courses (%d gaps)", len(skills)), strings.TrimRight(sb.String(), "\n"))
}

// PrintBatchResult outputs a summary of a catalog embedding pass, including
// the first few per-course errors.
func (p *Printer) PrintBatchResult(result catalog.BatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", result.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", result.Failed))

	for i, courseErr := range result.Errors {
		if i == maxErrorsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more errors\n", len(result.Errors)-maxErrorsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s: %v\n", courseErr.CourseID, courseErr.Err))
	}

	p.printBox("Catalog Embedding", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfileText outputs the canonical profile text sent for embedding.
func (p *Printer) PrintProfileText(text string) {
	p.printBox("Profile Text", text)
}
