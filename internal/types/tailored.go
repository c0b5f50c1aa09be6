package types

// TailoredResume is the content bundle handed to a renderer
type TailoredResume struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Skills         []string        `json:"skills"`
	SoftSkills     []string        `json:"soft_skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Match          MatchResult     `json:"match"`
	Analysis       JobAnalysis     `json:"analysis"`
}
