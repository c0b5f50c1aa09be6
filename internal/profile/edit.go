package profile

import (
	"strings"

	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

// AddExperience appends an employment entry.
func AddExperience(p *types.Profile, exp types.Experience) {
	if exp.Responsibilities == nil {
		exp.Responsibilities = []string{}
	}
	p.Experience = append(p.Experience, exp)
}

// UpdateExperience replaces the entry at index.
func UpdateExperience(p *types.Profile, index int, exp types.Experience) error {
	if err := checkIndex("experience", index, len(p.Experience)); err != nil {
		return err
	}
	if exp.Responsibilities == nil {
		exp.Responsibilities = []string{}
	}
	p.Experience[index] = exp
	return nil
}

// DeleteExperience removes the entry at index.
func DeleteExperience(p *types.Profile, index int) error {
	if err := checkIndex("experience", index, len(p.Experience)); err != nil {
		return err
	}
	p.Experience = append(p.Experience[:index], p.Experience[index+1:]...)
	return nil
}

// AddProject appends a project.
func AddProject(p *types.Profile, project types.Project) {
	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	p.Projects = append(p.Projects, project)
}

// UpdateProject replaces the project at index.
func UpdateProject(p *types.Profile, index int, project types.Project) error {
	if err := checkIndex("project", index, len(p.Projects)); err != nil {
		return err
	}
	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	p.Projects[index] = project
	return nil
}

// DeleteProject removes the project at index.
func DeleteProject(p *types.Profile, index int) error {
	if err := checkIndex("project", index, len(p.Projects)); err != nil {
		return err
	}
	p.Projects = append(p.Projects[:index], p.Projects[index+1:]...)
	return nil
}

// AddEducation appends a degree entry.
func AddEducation(p *types.Profile, edu types.Education) {
	p.Education = append(p.Education, edu)
}

// DeleteEducation removes the degree entry at index.
func DeleteEducation(p *types.Profile, index int) error {
	if err := checkIndex("education", index, len(p.Education)); err != nil {
		return err
	}
	p.Education = append(p.Education[:index], p.Education[index+1:]...)
	return nil
}

// AddCertification appends a certification.
func AddCertification(p *types.Profile, cert types.Certification) {
	p.Certifications = append(p.Certifications, cert)
}

// DeleteCertification removes the certification at index.
func DeleteCertification(p *types.Profile, index int) error {
	if err := checkIndex("certification", index, len(p.Certifications)); err != nil {
		return err
	}
	p.Certifications = append(p.Certifications[:index], p.Certifications[index+1:]...)
	return nil
}

// AddSkills appends to the technical list every skill the profile does not already
// hold in either list, compared case-insensitively. It returns how many were added.
func AddSkills(p *types.Profile, newSkills []string) int {
	have := skills.NewSet(p.Skills.Technical, p.Skills.Soft)
	added := 0
	for _, s := range newSkills {
		s = strings.TrimSpace(s)
		if s == "" || have.Contains(s) {
			continue
		}
		have.Add(s)
		p.Skills.Technical = append(p.Skills.Technical, s)
		added++
	}
	return added
}

// ParseResponsibilities splits multi-line input into one responsibility per non-empty line.
func ParseResponsibilities(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func checkIndex(section string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Section: section, Index: index, Len: length}
	}
	return nil
}
