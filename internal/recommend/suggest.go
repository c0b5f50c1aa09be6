package recommend

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/prompts"
	"github.com/jonathan/resumeforge/internal/types"
)

const (
	// MaxSuggestions bounds the AI suggestion list regardless of what the model returns
	MaxSuggestions = 5

	defaultRoleType        = "Software Engineer"
	promptRequiredSkillCap = 10
	promptCurrentSkillCap  = 15
)

// Suggester proposes extra skills for a role. Implementations may fail; the
// Generator turns every failure into an empty list.
type Suggester interface {
	SuggestSkills(ctx context.Context, roleType string, requiredSkills, currentSkills []string) ([]string, error)
}

// LLMSuggester asks an LLM for supplementary skills
type LLMSuggester struct {
	client llm.Client
}

// NewLLMSuggester creates a suggester backed by client
func NewLLMSuggester(client llm.Client) *LLMSuggester {
	return &LLMSuggester{client: client}
}

// SuggestSkills prompts the model for 3-5 skill names and parses the JSON array it returns.
func (s *LLMSuggester) SuggestSkills(ctx context.Context, roleType string, requiredSkills, currentSkills []string) ([]string, error) {
	if s.client == nil {
		return nil, &SuggestionError{Message: "no LLM client configured"}
	}

	prompt := buildSuggestionPrompt(roleType, requiredSkills, currentSkills)

	resp, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &SuggestionError{Message: "LLM generation failed", Cause: err}
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &suggestions); err != nil {
		return nil, &SuggestionError{Message: "failed to parse suggestions", Cause: err}
	}
	return suggestions, nil
}

func buildSuggestionPrompt(roleType string, requiredSkills, currentSkills []string) string {
	roleType = strings.TrimSpace(roleType)
	if roleType == "" || roleType == types.NotAvailable {
		roleType = defaultRoleType
	}

	return prompts.Format(prompts.MustGet("recommend.json", "suggest-skills"), map[string]string{
		"RoleType":       roleType,
		"RequiredSkills": strings.Join(firstN(requiredSkills, promptRequiredSkillCap), ", "),
		"CurrentSkills":  strings.Join(firstN(currentSkills, promptCurrentSkillCap), ", "),
	})
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
