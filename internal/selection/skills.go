package selection

import "github.com/jonathan/resumeforge/internal/skills"

// DefaultMaxSkills is the number of technical skills shown on a resume
const DefaultMaxSkills = 15

// OrderSkills moves the technical skills found in matched to the front and truncates
// the result to limit. Relative order inside each group is preserved. A non-positive
// limit returns every skill.
func OrderSkills(technical []string, matched []string, limit int) []string {
	matchedSet := skills.NewSet(matched)

	ordered := make([]string, 0, len(technical))
	rest := make([]string, 0, len(technical))
	for _, skill := range technical {
		if matchedSet.Contains(skill) {
			ordered = append(ordered, skill)
		} else {
			rest = append(rest, skill)
		}
	}
	ordered = append(ordered, rest...)

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
