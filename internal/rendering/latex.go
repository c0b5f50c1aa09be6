package rendering

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resumeforge/internal/ranking"
	"github.com/jonathan/resumeforge/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Output formats
const (
	FormatLaTeX = "latex"
	FormatHTML  = "html"
)

const (
	latexTemplateName = "templates/resume.tex.tmpl"
	htmlTemplateName  = "templates/resume.html.tmpl"
)

// Renderer produces a document from a tailored resume
type Renderer interface {
	Render(resume *types.TailoredResume) (string, error)
	Extension() string
}

// New returns the renderer for format. templatePath overrides the embedded template when set.
func New(format, templatePath string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatLaTeX, "tex", "":
		return &LaTeXRenderer{TemplatePath: templatePath, Layout: CompactLayout()}, nil
	case FormatHTML:
		return &HTMLRenderer{TemplatePath: templatePath, Layout: SidebarLayout()}, nil
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unknown format %q", format)}
	}
}

// LaTeXRenderer fills a text/template LaTeX document. Every field is escaped.
type LaTeXRenderer struct {
	TemplatePath string
	Layout       Layout
}

// Extension returns the output file extension
func (r *LaTeXRenderer) Extension() string { return "tex" }

// Render executes the LaTeX template
func (r *LaTeXRenderer) Render(resume *types.TailoredResume) (string, error) {
	if resume == nil {
		return "", &RenderError{Message: "resume is nil"}
	}
	content, err := readTemplate(FormatLaTeX, r.TemplatePath, latexTemplateName)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(content)
	if err != nil {
		return "", &TemplateError{Format: FormatLaTeX, Message: "failed to parse template", Cause: err}
	}

	view := BuildView(resume, r.Layout, EscapeLaTeX, ranking.Label(resume.Match.Score))
	var out strings.Builder
	if err := tmpl.Execute(&out, view); err != nil {
		return "", &TemplateError{Format: FormatLaTeX, Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

// HTMLRenderer fills an html/template document; escaping is left to html/template.
type HTMLRenderer struct {
	TemplatePath string
	Layout       Layout
}

// Extension returns the output file extension
func (r *HTMLRenderer) Extension() string { return "html" }

// Render executes the HTML template
func (r *HTMLRenderer) Render(resume *types.TailoredResume) (string, error) {
	if resume == nil {
		return "", &RenderError{Message: "resume is nil"}
	}
	content, err := readTemplate(FormatHTML, r.TemplatePath, htmlTemplateName)
	if err != nil {
		return "", err
	}

	tmpl, err := htmltemplate.New("resume").Parse(content)
	if err != nil {
		return "", &TemplateError{Format: FormatHTML, Message: "failed to parse template", Cause: err}
	}

	view := BuildView(resume, r.Layout, nil, ranking.Label(resume.Match.Score))
	var out strings.Builder
	if err := tmpl.Execute(&out, view); err != nil {
		return "", &TemplateError{Format: FormatHTML, Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

// readTemplate loads a user template from disk, or the embedded default when path is empty.
func readTemplate(format, path, embedded string) (string, error) {
	if path == "" {
		data, err := templateFS.ReadFile(embedded)
		if err != nil {
			return "", &TemplateError{Format: format, Message: "embedded template missing: " + embedded, Cause: err}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{Format: format, Message: fmt.Sprintf("template file not found: %s", path), Cause: err}
		}
		return "", &TemplateError{Format: format, Message: fmt.Sprintf("failed to read template file: %s", path), Cause: err}
	}
	return string(data), nil
}

// FileName builds resume_<role>_<name>.<ext> with spaces replaced by underscores.
func FileName(resume *types.TailoredResume, ext string) string {
	role := "job"
	name := "resume"
	if resume != nil {
		if r := strings.TrimSpace(resume.Analysis.RoleType); r != "" && r != types.NotAvailable {
			role = r
		}
		if n := strings.TrimSpace(resume.Personal.Name); n != "" {
			name = n
		}
	}
	return fmt.Sprintf("resume_%s_%s.%s", fileSafe(role), fileSafe(name), strings.TrimPrefix(ext, "."))
}

var fileSafeReplacer = strings.NewReplacer(" ", "_", "/", "-", `\`, "-", ":", "-")

func fileSafe(s string) string {
	return fileSafeReplacer.Replace(s)
}
