package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/llm/llmtest"
	"github.com/jonathan/resumeforge/internal/types"
)

const jobDescription = `Senior Backend Engineer

We are hiring a backend engineer to build and operate Go services on Kubernetes.
You will own APIs end to end, improve reliability, and mentor other engineers.`

const analysisJSON = `{
  "required_skills": ["Go", "Kubernetes"],
  "nice_to_have_skills": ["Rust"],
  "role_type": "Backend Engineer",
  "seniority_level": "Senior",
  "key_responsibilities": ["Own APIs"],
  "keywords": ["go", "kubernetes"]
}`

const profileJSON = `{
  "personal": {"name": "Ada Lovelace", "email": "ada@example.com", "summary": "Engineer."},
  "experience": [{
    "company": "Acme",
    "role": "Engineer",
    "duration": "2020 - 2024",
    "responsibilities": ["Wrote docs", "Ran Kubernetes clusters", "Built Go services"]
  }],
  "projects": [
    {"name": "Site", "tech_stack": ["HTML"]},
    {"name": "Platform", "tech_stack": ["Go", "Kubernetes"]}
  ],
  "skills": {"technical": ["Docker", "Go"], "soft": ["Mentoring"]}
}`

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI in-process with a clean environment and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"DATABASE_URL", "RESUMEFORGE_DATABASE_URL", "RESUMEFORGE_API_KEY", "CEREBRAS_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY"} {
		t.Setenv(name, "")
	}
	chdirForTest(t, t.TempDir())

	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func stubLLM(t *testing.T) *llmtest.MockClient {
	t.Helper()
	mock := &llmtest.MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
			if tier == llm.TierStandard {
				return analysisJSON, nil
			}
			return `["Helm", "Terraform"]`, nil
		},
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `"Backend engineer focused on Go and Kubernetes."`, nil
		},
	}
	original := newLLMClient
	newLLMClient = func(_ context.Context, _ *llm.Config, _ string) (llm.Client, error) {
		return mock, nil
	}
	t.Cleanup(func() { newLLMClient = original })
	return mock
}

func loadProfile(t *testing.T, path string) *types.Profile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var p types.Profile
	require.NoError(t, json.Unmarshal(data, &p))
	return &p
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "resumeforge dev")
}

func TestIngestJob(t *testing.T) {
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.txt", jobDescription)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "ingest-job", "--text-file", jobFile, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully ingested job posting")

	cleaned, err := os.ReadFile(filepath.Join(outDir, "job_posting.cleaned.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(cleaned), "Senior Backend Engineer")
	assert.FileExists(t, filepath.Join(outDir, "job_posting.meta.json"))
}

func TestIngestJob_FlagValidation(t *testing.T) {
	dir := t.TempDir()
	short := writeFile(t, dir, "short.txt", "Go developer")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing out", []string{"ingest-job", "--text-file", short}, "required flag"},
		{"no source", []string{"ingest-job", "--out", dir}, "either --text-file or --url"},
		{"both sources", []string{"ingest-job", "--text-file", short, "--url", "https://example.com", "--out", dir}, "mutually exclusive"},
		{"too short", []string{"ingest-job", "--text-file", short, "--out", dir}, "couldn't extract job description"},
		{"bad scheme", []string{"ingest-job", "--url", "ftp://example.com/job", "--out", dir}, "invalid URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfileCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "profile.json")

	_, err := execute(t, "profile", "init", "--profile", path, "--name", "Ada Lovelace", "--email", "ada@example.com")
	require.NoError(t, err)

	_, err = execute(t, "profile", "add-experience", "--profile", path,
		"--company", "Acme", "--role", "Engineer", "--responsibilities", "Built APIs\n\n  Ran on-call  ")
	require.NoError(t, err)

	_, err = execute(t, "profile", "add-project", "--profile", path, "--name", "Engine", "--tech", "Go, Postgres,")
	require.NoError(t, err)

	out, err := execute(t, "profile", "add-skills", "--profile", path, "Go", "go", "Rust")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 skills")

	p := loadProfile(t, path)
	assert.Equal(t, "Ada Lovelace", p.Personal.Name)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, []string{"Built APIs", "Ran on-call"}, p.Experience[0].Responsibilities)
	assert.Equal(t, []string{"Go", "Postgres"}, p.Projects[0].TechStack)
	assert.Equal(t, []string{"Go", "Rust"}, p.Skills.Technical)
	assert.NotEmpty(t, p.LastUpdated)

	out, err = execute(t, "profile", "show", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Ada Lovelace"`)

	_, err = execute(t, "profile", "delete-experience", "--profile", path, "--index", "0")
	require.NoError(t, err)
	assert.Empty(t, loadProfile(t, path).Experience)
}

func TestProfileCommands_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	_, err := execute(t, "profile", "init", "--profile", path, "--name", "Ada", "--email", "not-an-email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid personal details")

	_, err = execute(t, "profile", "delete-project", "--profile", path, "--index", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = execute(t, "profile", "delete-education", "--profile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestMatchAndSelectionCommands(t *testing.T) {
	dir := t.TempDir()
	analysis := writeFile(t, dir, "analysis.json", analysisJSON)
	profilePath := writeFile(t, dir, "profile.json", profileJSON)
	matchOut := filepath.Join(dir, "match.json")

	out, err := execute(t, "match", "--analysis", analysis, "--profile", profilePath, "--out", matchOut)
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 35% (Moderate Match)")
	assert.Contains(t, out, "• kubernetes")

	var result types.MatchResult
	data, err := os.ReadFile(matchOut)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 35.0, result.Score)

	out, err = execute(t, "select-projects", "--analysis", analysis, "--profile", profilePath, "--max", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#1  Platform")
	assert.NotContains(t, out, "Site")

	out, err = execute(t, "optimize-experience", "--analysis", analysis, "--profile", profilePath, "--max-bullets", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "• Ran Kubernetes clusters")
	assert.Contains(t, out, "• Built Go services")
	assert.NotContains(t, out, "Wrote docs")
}

func TestMatch_InvalidAnalysis(t *testing.T) {
	dir := t.TempDir()
	analysis := writeFile(t, dir, "analysis.json", `{"required_skills": "Go"}`)

	_, err := execute(t, "match", "--analysis", analysis, "--profile", filepath.Join(dir, "p.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid analysis file")
}

func TestRecommend_InteractiveNoAI(t *testing.T) {
	dir := t.TempDir()
	analysis := writeFile(t, dir, "analysis.json", analysisJSON)
	profilePath := writeFile(t, dir, "profile.json", profileJSON)

	var offered []string
	original := chooseSkills
	chooseSkills = func(candidates []string) ([]string, error) {
		offered = candidates
		return []string{"kubernetes"}, nil
	}
	t.Cleanup(func() { chooseSkills = original })

	out, err := execute(t, "recommend", "--analysis", analysis, "--profile", profilePath, "--no-ai", "--interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "SKILL RECOMMENDATIONS")
	assert.Contains(t, out, "Added 1 skills to profile")
	assert.Equal(t, []string{"kubernetes", "rust"}, offered)
	assert.Contains(t, loadProfile(t, profilePath).Skills.Technical, "kubernetes")
}

func TestRecommend_WithSuggestions(t *testing.T) {
	stubLLM(t)
	dir := t.TempDir()
	analysis := writeFile(t, dir, "analysis.json", analysisJSON)
	profilePath := writeFile(t, dir, "profile.json", profileJSON)
	t.Setenv("RESUMEFORGE_API_KEY", "test-key")

	out, err := executeWithEnv(t, "recommend", "--analysis", analysis, "--profile", profilePath)
	require.NoError(t, err)
	assert.Contains(t, out, "• Helm")
}

// executeWithEnv is execute without clearing the API key variables.
func executeWithEnv(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RESUMEFORGE_DATABASE_URL", "")
	chdirForTest(t, t.TempDir())

	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyze(t *testing.T) {
	mock := stubLLM(t)
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.txt", jobDescription)
	out := filepath.Join(dir, "analysis.json")
	t.Setenv("RESUMEFORGE_API_KEY", "test-key")

	stdout, err := executeWithEnv(t, "analyze", "--job", jobFile, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "JOB ANALYSIS")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var analysis types.JobAnalysis
	require.NoError(t, json.Unmarshal(data, &analysis))
	assert.Equal(t, "Backend Engineer", analysis.RoleType)

	require.Len(t, mock.Prompts(), 1)
	assert.Contains(t, mock.Prompts()[0], "Kubernetes")
}

func TestAnalyze_RequiresAPIKey(t *testing.T) {
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.txt", jobDescription)

	_, err := execute(t, "analyze", "--job", jobFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestTailor(t *testing.T) {
	stubLLM(t)
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.txt", jobDescription)
	profilePath := writeFile(t, dir, "profile.json", profileJSON)
	outDir := filepath.Join(dir, "out")
	t.Setenv("RESUMEFORGE_API_KEY", "test-key")

	stdout, err := executeWithEnv(t, "tailor", "--job", jobFile, "--profile", profilePath, "--format", "html", "--out", outDir)
	require.NoError(t, err)

	expected := filepath.Join(outDir, "resume_Backend_Engineer_Ada_Lovelace.html")
	assert.Contains(t, stdout, "Resume written: "+expected)
	assert.Contains(t, stdout, "SELECTED PROJECTS")

	html, err := os.ReadFile(expected)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ada Lovelace")
	assert.Contains(t, string(html), "Backend engineer focused on Go and Kubernetes.")
	assert.True(t, strings.Index(string(html), "Platform") < strings.Index(string(html), "Site"))
}

func TestTailor_ExplicitFileAndBadFormat(t *testing.T) {
	stubLLM(t)
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.txt", jobDescription)
	profilePath := writeFile(t, dir, "profile.json", profileJSON)
	t.Setenv("RESUMEFORGE_API_KEY", "test-key")

	target := filepath.Join(dir, "custom", "cv.tex")
	_, err := executeWithEnv(t, "tailor", "--job", jobFile, "--profile", profilePath, "--out", target)
	require.NoError(t, err)
	tex, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(tex), `\begin{document}`)

	_, err = executeWithEnv(t, "tailor", "--job", jobFile, "--profile", profilePath, "--format", "docx")
	assert.Error(t, err)
}

// chdirForTest changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
