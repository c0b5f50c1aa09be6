package types

import "encoding/json"

// NotAvailable is the placeholder used for unknown role or seniority
const NotAvailable = "N/A"

// JobAnalysis is the structured interpretation of a job description
type JobAnalysis struct {
	RequiredSkills      []string `json:"required_skills"`
	NiceToHaveSkills    []string `json:"nice_to_have_skills"`
	RoleType            string   `json:"role_type"`
	SeniorityLevel      string   `json:"seniority_level"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	Keywords            []string `json:"keywords"`
}

// UnmarshalJSON decodes an analysis and applies defaults for absent fields.
func (a *JobAnalysis) UnmarshalJSON(data []byte) error {
	type alias JobAnalysis
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = JobAnalysis(raw)
	a.ApplyDefaults()
	return nil
}

// ApplyDefaults fills nil lists with empty ones and blank labels with "N/A".
func (a *JobAnalysis) ApplyDefaults() {
	if a.RequiredSkills == nil {
		a.RequiredSkills = []string{}
	}
	if a.NiceToHaveSkills == nil {
		a.NiceToHaveSkills = []string{}
	}
	if a.KeyResponsibilities == nil {
		a.KeyResponsibilities = []string{}
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	if a.RoleType == "" {
		a.RoleType = NotAvailable
	}
	if a.SeniorityLevel == "" {
		a.SeniorityLevel = NotAvailable
	}
}
