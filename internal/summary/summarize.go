// Package summary writes a professional summary tailored to an analyzed job description.
package summary

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/prompts"
	"github.com/jonathan/resumeforge/internal/types"
)

const (
	defaultEducation    = "Computer Science"
	defaultRoleType     = "this position"
	promptSkillCap      = 10
	promptRequiredCap   = 5
	promptFileName      = "summary.json"
	freshPromptKey      = "fresher-summary"
	experiencePromptKey = "experienced-summary"
)

// Writer generates tailored summaries
type Writer struct {
	client llm.Client
	logger *zap.Logger
}

// NewWriter creates a Writer. A nil client makes Write return the profile's own summary.
func NewWriter(client llm.Client, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{client: client, logger: log}
}

// Write returns a 2-3 sentence summary aimed at the analyzed role. Profiles without
// experience get a graduate-oriented prompt. Any failure falls back to the summary
// already stored in the profile.
func (w *Writer) Write(ctx context.Context, profile *types.Profile, analysis *types.JobAnalysis) string {
	fallback := ""
	if profile != nil {
		fallback = profile.Personal.Summary
	}
	if w == nil || w.client == nil {
		return fallback
	}

	prompt := buildPrompt(profile, analysis)
	text, err := w.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		w.logger.Warn("tailored summary unavailable, using stored summary", zap.Error(err))
		return fallback
	}

	text = stripQuotes(strings.TrimSpace(text))
	if text == "" {
		return fallback
	}
	return text
}

func buildPrompt(profile *types.Profile, analysis *types.JobAnalysis) string {
	if profile == nil {
		profile = types.NewProfile()
	}

	roleType := defaultRoleType
	var required []string
	if analysis != nil {
		if analysis.RoleType != "" && analysis.RoleType != types.NotAvailable {
			roleType = analysis.RoleType
		}
		required = analysis.RequiredSkills
	}

	data := map[string]string{
		"Skills":         strings.Join(firstN(profile.Skills.Technical, promptSkillCap), ", "),
		"RoleType":       roleType,
		"RequiredSkills": strings.Join(firstN(required, promptRequiredCap), ", "),
	}

	if profile.IsFresher() {
		education := defaultEducation
		if len(profile.Education) > 0 && profile.Education[0].Degree != "" {
			education = profile.Education[0].Degree
		}
		data["Education"] = education
		return prompts.Format(prompts.MustGet(promptFileName, freshPromptKey), data)
	}

	data["CurrentSummary"] = profile.Personal.Summary
	return prompts.Format(prompts.MustGet(promptFileName, experiencePromptKey), data)
}

// stripQuotes removes one pair of surrounding double quotes.
func stripQuotes(text string) string {
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		return strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
