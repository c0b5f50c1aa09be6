package parsing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/llm/llmtest"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = `We are hiring a Senior Backend Engineer to build and operate our payments platform.
You will design Go microservices, own PostgreSQL schemas and run services on Kubernetes.
Experience with Kafka is a plus.`

func respondWith(resp string, err error) *llmtest.MockClient {
	return &llmtest.MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return resp, err
		},
	}
}

func TestInterpret_Success(t *testing.T) {
	mock := respondWith("```json\n"+`{
		"required_skills": ["Go", "PostgreSQL", " Kubernetes ", "go"],
		"nice_to_have_skills": ["Kafka"],
		"role_type": "Senior Backend Engineer",
		"seniority_level": "Senior",
		"key_responsibilities": ["Design microservices"],
		"keywords": ["payments", "microservices", ""]
	}`+"\n```", nil)

	result := NewInterpreter(mock, nil).Interpret(context.Background(), sampleJD)

	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.Data)
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, result.Data.RequiredSkills)
	assert.Equal(t, []string{"Kafka"}, result.Data.NiceToHaveSkills)
	assert.Equal(t, "Senior Backend Engineer", result.Data.RoleType)
	assert.Equal(t, []string{"payments", "microservices"}, result.Data.Keywords)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "payments platform")
}

func TestInterpret_DefaultsForAbsentFields(t *testing.T) {
	result := NewInterpreter(respondWith(`{"required_skills": ["Go"]}`, nil), nil).Interpret(context.Background(), sampleJD)

	require.True(t, result.Success)
	assert.Equal(t, types.NotAvailable, result.Data.RoleType)
	assert.Equal(t, types.NotAvailable, result.Data.SeniorityLevel)
	assert.NotNil(t, result.Data.NiceToHaveSkills)
	assert.NotNil(t, result.Data.Keywords)
	assert.NotNil(t, result.Data.KeyResponsibilities)
}

func TestInterpret_Failures(t *testing.T) {
	tests := []struct {
		name    string
		resp    string
		err     error
		wantMsg string
	}{
		{"llm error", "", errors.New("connection refused"), "connection refused"},
		{"not json", "Sorry, I cannot analyze this.", nil, "not valid JSON"},
		{"truncated json", `{"required_skills": ["Go"`, nil, "not valid JSON"},
		{"schema mismatch", `{"required_skills": "Go and Python"}`, nil, "schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewInterpreter(respondWith(tt.resp, tt.err), nil).Interpret(context.Background(), sampleJD)

			assert.False(t, result.Success)
			assert.Nil(t, result.Data)
			assert.Contains(t, result.Error, tt.wantMsg)
		})
	}
}

func TestAnalyze_TypedErrors(t *testing.T) {
	_, err := NewInterpreter(respondWith("", errors.New("boom")), nil).Analyze(context.Background(), sampleJD)
	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)

	_, err = NewInterpreter(respondWith("nope", nil), nil).Analyze(context.Background(), sampleJD)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = NewInterpreter(respondWith(`{"keywords": [1]}`, nil), nil).Analyze(context.Background(), sampleJD)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestInterpret_EmptyTextAndNoClient(t *testing.T) {
	result := NewInterpreter(respondWith("{}", nil), nil).Interpret(context.Background(), "   ")
	assert.False(t, result.Success)

	result = NewInterpreter(nil, nil).Interpret(context.Background(), sampleJD)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no LLM client")
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, normalizeList([]string{" Go", "go ", "", "SQL"}, 0))
	assert.Equal(t, []string{"a", "b"}, normalizeList([]string{"a", "b", "c"}, 2))
	assert.Empty(t, normalizeList(nil, 5))
}

func TestNormalizeAnalysis_CapsDescriptiveListsOnly(t *testing.T) {
	many := make([]string, 30)
	for i := range many {
		many[i] = strings.Repeat("x", i+1)
	}
	analysis := &types.JobAnalysis{
		RequiredSkills:      many,
		NiceToHaveSkills:    many,
		KeyResponsibilities: many,
		Keywords:            many,
		RoleType:            "  ",
	}

	normalizeAnalysis(analysis)

	assert.Len(t, analysis.RequiredSkills, len(many))
	assert.Len(t, analysis.NiceToHaveSkills, len(many))
	assert.Len(t, analysis.KeyResponsibilities, maxKeyResponsibilities)
	assert.Len(t, analysis.Keywords, maxKeywords)
	assert.Equal(t, types.NotAvailable, analysis.RoleType)
	assert.Equal(t, types.NotAvailable, analysis.SeniorityLevel)
}

func TestInterpret_KeepsEverySkill(t *testing.T) {
	required := make([]string, 20)
	for i := range required {
		required[i] = fmt.Sprintf("%q", fmt.Sprintf("skill%d", i+1))
	}
	mock := respondWith(`{"required_skills": [`+strings.Join(required, ", ")+`], "role_type": "Engineer"}`, nil)

	result := NewInterpreter(mock, nil).Interpret(context.Background(), sampleJD)

	require.True(t, result.Success, result.Error)
	require.Len(t, result.Data.RequiredSkills, 20)
	assert.Equal(t, "skill1", result.Data.RequiredSkills[0])
	assert.Equal(t, "skill20", result.Data.RequiredSkills[19])
}
