// Package selection picks and orders profile content for a tailored resume.
package selection

import (
	"sort"

	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

const (
	// requiredMatchWeight multiplies required-skill overlap. Required skills are also
	// counted in the total overlap, so each required match is worth 4 and each
	// nice-to-have match is worth 1.
	requiredMatchWeight = 3

	// DefaultMaxProjects is the number of projects shown on a resume
	DefaultMaxProjects = 3
)

// ScoredProject is a project with its relevance score
type ScoredProject struct {
	Project types.Project `json:"project"`
	Score   int           `json:"score"`
}

// ScoreProjects scores every profile project against the analysis and returns them
// sorted by descending score. Projects with equal scores keep their profile order.
func ScoreProjects(profile *types.Profile, analysis *types.JobAnalysis) []ScoredProject {
	if profile == nil || len(profile.Projects) == 0 {
		return []ScoredProject{}
	}

	var requiredList, niceList []string
	if analysis != nil {
		requiredList = analysis.RequiredSkills
		niceList = analysis.NiceToHaveSkills
	}
	required := skills.NewSet(requiredList)
	allJobSkills := skills.NewSet(requiredList, niceList)

	scored := make([]ScoredProject, 0, len(profile.Projects))
	for _, project := range profile.Projects {
		tech := skills.NewSet(project.TechStack)
		requiredMatches := tech.Intersect(required).Len()
		totalMatches := tech.Intersect(allJobSkills).Len()

		scored = append(scored, ScoredProject{
			Project: project,
			Score:   requiredMatches*requiredMatchWeight + totalMatches,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// SelectBestProjects returns up to maxProjects projects ordered by relevance to the analysis.
func SelectBestProjects(profile *types.Profile, analysis *types.JobAnalysis, maxProjects int) []types.Project {
	if maxProjects <= 0 {
		return []types.Project{}
	}

	scored := ScoreProjects(profile, analysis)
	if len(scored) > maxProjects {
		scored = scored[:maxProjects]
	}

	selected := make([]types.Project, 0, len(scored))
	for _, sp := range scored {
		selected = append(selected, sp.Project)
	}
	return selected
}
