// Package recommend derives skill recommendations from the gap between a profile
// and an analyzed job description.
package recommend

import (
	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

// MaxMissingPerCategory bounds each list of missing skills
const MaxMissingPerCategory = 5

// Gaps is the deterministic part of a recommendation
type Gaps struct {
	CriticalMissing    []string `json:"critical_missing"`
	NiceToHaveMissing  []string `json:"nice_to_have_missing"`
	HasRecommendations bool     `json:"has_recommendations"`
}

// ComputeGaps lists up to five required and five nice-to-have skills the profile lacks.
// Skills are case-folded and kept in the order they first appear in the analysis.
func ComputeGaps(profile *types.Profile, analysis *types.JobAnalysis) Gaps {
	userSkills := skills.NewSet(profile.AllSkills())

	var requiredList, niceList []string
	if analysis != nil {
		requiredList = analysis.RequiredSkills
		niceList = analysis.NiceToHaveSkills
	}

	critical := skills.NewSet(requiredList).Difference(userSkills).First(MaxMissingPerCategory)
	nice := skills.NewSet(niceList).Difference(userSkills).First(MaxMissingPerCategory)

	return Gaps{
		CriticalMissing:    critical,
		NiceToHaveMissing:  nice,
		HasRecommendations: len(critical) > 0 || len(nice) > 0,
	}
}
