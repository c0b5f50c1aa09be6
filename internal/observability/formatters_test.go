package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.JobAnalysis{
		RoleType:            "Backend Engineer",
		SeniorityLevel:      "Senior",
		RequiredSkills:      []string{"Go", "Kubernetes", "SQL", "gRPC", "Kafka", "Redis"},
		NiceToHaveSkills:    []string{"Rust"},
		KeyResponsibilities: []string{"Own services"},
		Keywords:            []string{"go", "latency"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Senior")
	assert.Contains(t, output, "• Kafka")
	assert.NotContains(t, output, "• Redis")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Rust")
	assert.Contains(t, output, "Keywords: go, latency")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(&types.MatchResult{
		Score:         65,
		Percentage:    "65%",
		MatchedSkills: []string{"go"},
		MissingSkills: []string{"kubernetes"},
	})
	output := buf.String()

	assert.Contains(t, output, "MATCH")
	assert.Contains(t, output, "Score: 65% (Good Match)")
	assert.Contains(t, output, "• go")
	assert.Contains(t, output, "• kubernetes")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]", scoreBar(50, 10))
	assert.Equal(t, "[░░░░░░░░░░]", scoreBar(-5, 10))
	assert.Equal(t, "[██████████]", scoreBar(140, 10))
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(&types.Recommendations{
		CriticalMissing:    []string{"kubernetes"},
		NiceToHaveMissing:  []string{},
		AISuggestions:      []string{"Helm"},
		HasRecommendations: true,
	})
	output := buf.String()

	assert.Contains(t, output, "SKILL RECOMMENDATIONS")
	assert.Contains(t, output, "Critical:")
	assert.Contains(t, output, "Suggested:")
	assert.NotContains(t, output, "Nice-to-have:")
}

func TestPrintRecommendations_NoGaps(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(&types.Recommendations{})
	assert.Contains(t, buf.String(), "NO SKILL GAPS FOUND")
}

func TestPrintProjectsAndExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProjects([]types.Project{{Name: "Engine", TechStack: []string{"Go", "Postgres"}}})
	p.PrintExperience([]types.Experience{{Role: "Engineer", Company: "Acme", Responsibilities: []string{"Built APIs"}}})
	output := buf.String()

	assert.Contains(t, output, "#1  Engine")
	assert.Contains(t, output, "Tech: Go, Postgres")
	assert.Contains(t, output, "Engineer | Acme")
	assert.Contains(t, output, "• Built APIs")
}

func TestPrintBox_ClipsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "...")
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
