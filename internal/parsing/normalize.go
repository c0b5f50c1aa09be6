package parsing

import (
	"strings"

	"github.com/jonathan/resumeforge/internal/types"
)

// Upper bounds for the descriptive lists. Skill lists are never capped here since
// scoring needs the full set; display code applies its own limits.
const (
	maxKeyResponsibilities = 5
	maxKeywords            = 20
)

// normalizeList trims entries, drops blanks and case-insensitive duplicates, and keeps
// at most limit entries. The first spelling of a duplicate wins.
func normalizeList(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// normalizeLabel trims a label and maps blanks to "N/A".
func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return types.NotAvailable
	}
	return label
}

// normalizeAnalysis cleans every field of an analysis in place.
func normalizeAnalysis(analysis *types.JobAnalysis) {
	analysis.RequiredSkills = normalizeList(analysis.RequiredSkills, 0)
	analysis.NiceToHaveSkills = normalizeList(analysis.NiceToHaveSkills, 0)
	analysis.KeyResponsibilities = normalizeList(analysis.KeyResponsibilities, maxKeyResponsibilities)
	analysis.Keywords = normalizeList(analysis.Keywords, maxKeywords)
	analysis.RoleType = normalizeLabel(analysis.RoleType)
	analysis.SeniorityLevel = normalizeLabel(analysis.SeniorityLevel)
}
