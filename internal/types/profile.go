// Package types provides type definitions for structured data used throughout the resumeforge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Profile is the user's long-lived career record. It is only mutated by explicit edit operations.
type Profile struct {
	Personal       Personal        `json:"personal"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Skills         Skills          `json:"skills"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	LastUpdated    string          `json:"last_updated,omitempty"`
}

// Personal holds contact details and the free-text summary
type Personal struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is one employment entry
type Experience struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Project is one portfolio project
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GitHub      string   `json:"github,omitempty"`
}

// Skills splits the user's skills into technical and soft lists
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Education is one degree entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// Certification is one certification entry
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// UnmarshalJSON decodes a profile and fills absent collections with empty slices.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile(raw)
	p.Normalize()
	return nil
}

// Normalize replaces nil collections with empty ones so that absent data never
// needs a nil check downstream.
func (p *Profile) Normalize() {
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	for i := range p.Experience {
		if p.Experience[i].Responsibilities == nil {
			p.Experience[i].Responsibilities = []string{}
		}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].TechStack == nil {
			p.Projects[i].TechStack = []string{}
		}
	}
	if p.Skills.Technical == nil {
		p.Skills.Technical = []string{}
	}
	if p.Skills.Soft == nil {
		p.Skills.Soft = []string{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
}

// NewProfile returns an empty profile with every collection initialized.
func NewProfile() *Profile {
	p := &Profile{}
	p.Normalize()
	return p
}

// AllSkills returns technical skills followed by soft skills.
func (p *Profile) AllSkills() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.Skills.Technical)+len(p.Skills.Soft))
	out = append(out, p.Skills.Technical...)
	out = append(out, p.Skills.Soft...)
	return out
}

// IsFresher reports whether the profile has no employment history.
func (p *Profile) IsFresher() bool {
	return p == nil || len(p.Experience) == 0
}

// Validate checks that the personal fields required for tailoring are present.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p.Personal)
}
