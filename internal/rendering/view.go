package rendering

import (
	"strings"

	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

// Layout bounds how much of each section fits on the page
type Layout struct {
	MaxSkills         int
	MaxHighlighted    int
	MaxExperiences    int
	MaxBullets        int
	MaxProjects       int
	DescriptionLimit  int
	MaxTech           int
	MaxEducation      int
	MaxCertifications int
}

// CompactLayout is the single-column document layout.
func CompactLayout() Layout {
	return Layout{
		MaxSkills:         18,
		MaxHighlighted:    18,
		MaxExperiences:    2,
		MaxBullets:        3,
		MaxProjects:       3,
		DescriptionLimit:  150,
		MaxTech:           8,
		MaxEducation:      2,
		MaxCertifications: 3,
	}
}

// SidebarLayout is the two-column HTML layout; the sidebar shows fewer skills.
func SidebarLayout() Layout {
	return Layout{
		MaxSkills:         15,
		MaxHighlighted:    10,
		MaxExperiences:    2,
		MaxBullets:        3,
		MaxProjects:       3,
		DescriptionLimit:  180,
		MaxTech:           6,
		MaxEducation:      2,
		MaxCertifications: 3,
	}
}

// View is the template-ready form of a tailored resume
type View struct {
	Name           string
	Title          string
	Email          string
	Phone          string
	Location       string
	LinkedIn       string
	Summary        string
	Skills         []SkillView
	SkillLine      string
	Experience     []ExperienceView
	Projects       []ProjectView
	Education      []types.Education
	Certifications []types.Certification
	MatchLabel     string
	MatchPercent   string
}

// SkillView is one displayed skill
type SkillView struct {
	Name    string
	Matched bool
}

// ExperienceView is one displayed employment entry
type ExperienceView struct {
	Role     string
	Company  string
	Duration string
	Bullets  []string
}

// ProjectView is one displayed project
type ProjectView struct {
	Name        string
	Description string
	Tech        string
	GitHub      string
}

// BuildView applies layout limits and escape to every text field.
func BuildView(resume *types.TailoredResume, layout Layout, escape func(string) string, matchLabel string) *View {
	if escape == nil {
		escape = func(s string) string { return s }
	}
	p := resume.Personal

	view := &View{
		Name:         escape(orDefault(p.Name, "Your Name")),
		Title:        escape(roleTitle(resume.Analysis.RoleType)),
		Email:        escape(p.Email),
		Phone:        escape(p.Phone),
		Location:     escape(p.Location),
		LinkedIn:     escape(p.LinkedIn),
		Summary:      escape(strings.TrimSpace(resume.Summary)),
		MatchLabel:   escape(matchLabel),
		MatchPercent: escape(resume.Match.Percentage),
	}

	matched := skills.NewSet(resume.Match.MatchedSkills)
	shown := firstN(resume.Skills, layout.MaxSkills)
	view.SkillLine = strings.Join(escapeAll(shown, escape), ", ")
	for _, s := range firstN(shown, layout.MaxHighlighted) {
		view.Skills = append(view.Skills, SkillView{Name: escape(s), Matched: matched.Contains(s)})
	}

	for _, exp := range firstN(resume.Experience, layout.MaxExperiences) {
		view.Experience = append(view.Experience, ExperienceView{
			Role:     escape(orDefault(exp.Role, "Role")),
			Company:  escape(orDefault(exp.Company, "Company")),
			Duration: escape(exp.Duration),
			Bullets:  escapeAll(firstN(exp.Responsibilities, layout.MaxBullets), escape),
		})
	}

	for _, proj := range firstN(resume.Projects, layout.MaxProjects) {
		view.Projects = append(view.Projects, ProjectView{
			Name:        escape(orDefault(proj.Name, "Project")),
			Description: escape(Truncate(proj.Description, layout.DescriptionLimit)),
			Tech:        escape(strings.Join(firstN(proj.TechStack, layout.MaxTech), ", ")),
			GitHub:      escape(proj.GitHub),
		})
	}

	for _, edu := range firstN(resume.Education, layout.MaxEducation) {
		view.Education = append(view.Education, types.Education{
			Degree:      escape(orDefault(edu.Degree, "Degree")),
			Institution: escape(orDefault(edu.Institution, "Institution")),
			Year:        escape(edu.Year),
			GPA:         escape(edu.GPA),
		})
	}

	for _, cert := range firstN(resume.Certifications, layout.MaxCertifications) {
		view.Certifications = append(view.Certifications, types.Certification{
			Name:   escape(cert.Name),
			Issuer: escape(cert.Issuer),
			Year:   escape(cert.Year),
		})
	}

	return view
}

// Truncate cuts text to limit runes and appends "..." when anything was removed.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func roleTitle(role string) string {
	if role == "" || role == types.NotAvailable {
		return "Professional"
	}
	return role
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func firstN[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
