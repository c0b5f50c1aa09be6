package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/llm/llmtest"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentMock(resp string, err error) *llmtest.MockClient {
	return &llmtest.MockClient{
		GenerateContentFunc: func(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
			if tier != llm.TierLite {
				return "", errors.New("unexpected tier")
			}
			return resp, err
		},
	}
}

func experiencedProfile() *types.Profile {
	p := types.NewProfile()
	p.Personal.Summary = "Backend engineer with six years of experience."
	p.Skills.Technical = []string{"Go", "PostgreSQL", "Docker"}
	p.Experience = []types.Experience{{Company: "Acme", Role: "Engineer", Responsibilities: []string{}}}
	return p
}

func TestWrite_ExperiencedPrompt(t *testing.T) {
	mock := contentMock(`"Seasoned Go engineer building payment systems."`, nil)
	analysis := &types.JobAnalysis{RoleType: "Backend Engineer", RequiredSkills: []string{"Go", "Kafka"}}

	got := NewWriter(mock, nil).Write(context.Background(), experiencedProfile(), analysis)

	assert.Equal(t, "Seasoned Go engineer building payment systems.", got)
	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "EXPERIENCED PROFESSIONAL")
	assert.Contains(t, prompts[0], "Current Summary: Backend engineer with six years of experience.")
	assert.Contains(t, prompts[0], "Target Role: Backend Engineer")
	assert.Contains(t, prompts[0], "Key Required Skills: Go, Kafka")
}

func TestWrite_FresherPrompt(t *testing.T) {
	mock := contentMock("Motivated graduate.", nil)
	p := types.NewProfile()
	p.Skills.Technical = []string{"Python"}
	p.Education = []types.Education{{Degree: "B.Sc. Mathematics"}}

	got := NewWriter(mock, nil).Write(context.Background(), p, &types.JobAnalysis{RoleType: types.NotAvailable})

	assert.Equal(t, "Motivated graduate.", got)
	prompt := mock.Prompts()[0]
	assert.Contains(t, prompt, "FRESHER/RECENT GRADUATE")
	assert.Contains(t, prompt, "Education: B.Sc. Mathematics")
	assert.Contains(t, prompt, "Target Role: this position")
}

func TestWrite_FresherDefaultsEducation(t *testing.T) {
	mock := contentMock("ok", nil)
	NewWriter(mock, nil).Write(context.Background(), types.NewProfile(), nil)

	assert.Contains(t, mock.Prompts()[0], "Education: Computer Science")
}

func TestWrite_FallsBackToStoredSummary(t *testing.T) {
	p := experiencedProfile()

	got := NewWriter(contentMock("", errors.New("rate limited")), nil).Write(context.Background(), p, nil)
	assert.Equal(t, p.Personal.Summary, got)

	got = NewWriter(contentMock("   ", nil), nil).Write(context.Background(), p, nil)
	assert.Equal(t, p.Personal.Summary, got)

	got = NewWriter(nil, nil).Write(context.Background(), p, nil)
	assert.Equal(t, p.Personal.Summary, got)
}

func TestBuildPrompt_CapsSkillLists(t *testing.T) {
	p := experiencedProfile()
	p.Skills.Technical = []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11"}
	analysis := &types.JobAnalysis{RoleType: "Dev", RequiredSkills: []string{"r1", "r2", "r3", "r4", "r5", "r6"}}

	prompt := buildPrompt(p, analysis)

	assert.Contains(t, prompt, "s10")
	assert.NotContains(t, prompt, "s11")
	assert.Contains(t, prompt, "r5")
	assert.NotContains(t, prompt, "r6")
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "hello", stripQuotes(`"hello"`))
	assert.Equal(t, `say "hi"`, stripQuotes(`say "hi"`))
	assert.Equal(t, `"`, stripQuotes(`"`))
}
