// Package ranking scores a user profile against an analyzed job description.
package ranking

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

// Weights of the two score components. They sum to 100.
const (
	requiredWeight   = 70.0
	niceToHaveWeight = 30.0
)

// Label thresholds
const (
	excellentThreshold = 80.0
	goodThreshold      = 60.0
)

// ComputeMatch scores how well the profile's skills cover the analysis' required and
// nice-to-have skills. Comparison is case-insensitive. An empty requirement list grants
// that component's full weight. Matched and missing skills are returned case-folded in
// the order they first appear in the analysis.
func ComputeMatch(profile *types.Profile, analysis *types.JobAnalysis) types.MatchResult {
	userSkills := skills.NewSet(profile.AllSkills())

	var requiredList, niceList []string
	if analysis != nil {
		requiredList = analysis.RequiredSkills
		niceList = analysis.NiceToHaveSkills
	}
	required := skills.NewSet(requiredList)
	nice := skills.NewSet(niceList)

	matchedRequired := required.Intersect(userSkills)
	matchedNice := nice.Intersect(userSkills)

	total := componentScore(matchedRequired.Len(), required.Len(), requiredWeight) +
		componentScore(matchedNice.Len(), nice.Len(), niceToHaveWeight)

	return types.MatchResult{
		Score:         roundTo(total, 1),
		MatchedSkills: matchedRequired.Union(matchedNice).Items(),
		MissingSkills: required.Difference(userSkills).Items(),
		Percentage:    fmt.Sprintf("%d%%", int(math.RoundToEven(total))),
	}
}

// componentScore returns weight * matched/total, or the full weight when total is zero.
func componentScore(matched, total int, weight float64) float64 {
	if total == 0 {
		return weight
	}
	return float64(matched) / float64(total) * weight
}

// roundTo rounds to the given number of decimal places using the exact binary value,
// so 30.349999999999998 becomes 30.3 rather than 30.4.
func roundTo(value float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

// Label returns a human-readable description of a match score.
func Label(score float64) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent Match"
	case score >= goodThreshold:
		return "Good Match"
	default:
		return "Moderate Match"
	}
}
