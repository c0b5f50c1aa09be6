// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumeforge/internal/ranking"
	"github.com/jonathan/resumeforge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxShortList bounds secondary lists such as nice-to-haves
	maxShortList = 3
)

// Printer handles formatted output for the CLI
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to width runes, ending in "..." when cut.
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// writeList writes up to limit bulleted items and a "... and N more" tail.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintAnalysis outputs a human-readable summary of the interpreted job description.
func (p *Printer) PrintAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", analysis.RoleType))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", analysis.SeniorityLevel))
	sb.WriteString("\n")

	writeList(&sb, "Required Skills", analysis.RequiredSkills, maxItemsToShow)
	writeList(&sb, "Nice-to-haves", analysis.NiceToHaveSkills, maxShortList)
	writeList(&sb, "Key Responsibilities", analysis.KeyResponsibilities, maxShortList)

	if len(analysis.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(analysis.Keywords, ", ")))
	}

	p.printBox("JOB ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatch outputs the match score, its label and the skill overlap.
func (p *Printer) PrintMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %s (%s)\n", match.Percentage, ranking.Label(match.Score)))
	sb.WriteString(fmt.Sprintf("%s\n\n", scoreBar(match.Score, boxWidth-6)))

	writeList(&sb, "Matched", match.MatchedSkills, maxItemsToShow)
	writeList(&sb, "Missing", match.MissingSkills, maxItemsToShow)

	p.printBox("MATCH", strings.TrimRight(sb.String(), "\n"))
}

// scoreBar draws a width-cell bar filled in proportion to score out of 100.
func scoreBar(score float64, width int) string {
	filled := int(score / 100 * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// PrintRecommendations outputs the skill gaps and AI suggestions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}
	if !recs.HasRecommendations && len(recs.AISuggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	writeList(&sb, "Critical", recs.CriticalMissing, maxItemsToShow)
	writeList(&sb, "Nice-to-have", recs.NiceToHaveMissing, maxItemsToShow)
	writeList(&sb, "Suggested", recs.AISuggestions, maxItemsToShow)

	p.printBox("SKILL RECOMMENDATIONS", strings.TrimRight(sb.String(), "\n"))
}

// PrintProjects outputs the selected projects with their tech stacks.
func (p *Printer) PrintProjects(projects []types.Project) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d projects:\n\n", len(projects)))
	for i, project := range projects {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, project.Name))
		if len(project.TechStack) > 0 {
			sb.WriteString(fmt.Sprintf("    Tech: %s\n", strings.Join(project.TechStack, ", ")))
		}
		if i < len(projects)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SELECTED PROJECTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintExperience outputs each entry with its kept bullets in relevance order.
func (p *Printer) PrintExperience(experiences []types.Experience) {
	if len(experiences) == 0 {
		return
	}

	var sb strings.Builder
	for i, exp := range experiences {
		sb.WriteString(fmt.Sprintf("%s | %s\n", exp.Role, exp.Company))
		for _, bullet := range exp.Responsibilities {
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
		if i < len(experiences)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("OPTIMIZED EXPERIENCE", strings.TrimRight(sb.String(), "\n"))
}
