package types

// MatchResult is the outcome of scoring a profile against a job analysis.
// Skills are reported in case-folded form.
type MatchResult struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Percentage    string   `json:"match_percentage"`
}

// Recommendations lists skill gaps plus optional AI suggestions
type Recommendations struct {
	CriticalMissing    []string `json:"critical_missing"`
	NiceToHaveMissing  []string `json:"nice_to_have_missing"`
	AISuggestions      []string `json:"ai_suggestions"`
	HasRecommendations bool     `json:"has_recommendations"`
}

// AllMissing returns critical gaps followed by nice-to-have gaps.
func (r Recommendations) AllMissing() []string {
	out := make([]string, 0, len(r.CriticalMissing)+len(r.NiceToHaveMissing))
	out = append(out, r.CriticalMissing...)
	out = append(out, r.NiceToHaveMissing...)
	return out
}
