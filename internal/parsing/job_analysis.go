// Package parsing interprets raw job description text into a structured JobAnalysis using an LLM.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/prompts"
	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/jonathan/resumeforge/internal/types"
)

// Result is the outcome of an interpretation. Exactly one of Data and Error is set.
type Result struct {
	Success bool               `json:"success"`
	Data    *types.JobAnalysis `json:"data"`
	Error   string             `json:"error,omitempty"`
}

// Interpreter turns job description text into a JobAnalysis
type Interpreter struct {
	client llm.Client
	logger *zap.Logger
}

// NewInterpreter creates an Interpreter. A nil logger disables logging.
func NewInterpreter(client llm.Client, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{client: client, logger: log}
}

// Interpret analyzes jdText and reports the outcome as a Result. It never panics and
// never returns a partially filled analysis.
func (i *Interpreter) Interpret(ctx context.Context, jdText string) Result {
	analysis, err := i.Analyze(ctx, jdText)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Data: analysis}
}

// Analyze is Interpret with a typed error: *APICallError, *ParseError or *ValidationError.
func (i *Interpreter) Analyze(ctx context.Context, jdText string) (*types.JobAnalysis, error) {
	if i == nil || i.client == nil {
		return nil, &APICallError{Message: "no LLM client configured"}
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, &ValidationError{Field: "job_description", Message: "text is empty"}
	}

	prompt := prompts.Format(prompts.MustGet("interpret.json", "analyze-job-description"), map[string]string{
		"JobDescription": jdText,
	})

	i.logger.Debug("interpreting job description",
		zap.Int("chars", len(jdText)),
		zap.String("model", i.client.GetModel(llm.TierStandard)),
	)

	responseText, err := i.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate content from LLM", Cause: err}
	}
	responseText = llm.CleanJSONBlock(responseText)

	i.logger.Debug("interpreter response", zap.String("response", logger.TruncateForLog(responseText, 300)))

	analysis, err := parseJSONResponse(responseText)
	if err != nil {
		return nil, err
	}

	normalizeAnalysis(analysis)
	return analysis, nil
}

// parseJSONResponse validates the response against the job analysis schema and decodes it.
func parseJSONResponse(jsonText string) (*types.JobAnalysis, error) {
	if !json.Valid([]byte(jsonText)) {
		return nil, &ParseError{Message: "response is not valid JSON: " + logger.TruncateForLog(jsonText, 120)}
	}

	if err := schemas.ValidateJobAnalysis(jsonText); err != nil {
		return nil, &ValidationError{Field: "response", Message: "response does not match job analysis schema", Cause: err}
	}

	var analysis types.JobAnalysis
	if err := json.Unmarshal([]byte(jsonText), &analysis); err != nil {
		return nil, &ParseError{Message: "failed to parse JSON response", Cause: err}
	}
	return &analysis, nil
}
