package recommend

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/skills"
	"github.com/jonathan/resumeforge/internal/types"
)

// DefaultSuggestionTimeout bounds a single suggestion call
const DefaultSuggestionTimeout = 20 * time.Second

// Generator combines gap analysis with best-effort AI suggestions
type Generator struct {
	suggester Suggester
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithTimeout sets the suggestion timeout. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Generator) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// WithLogger sets the logger used to report swallowed suggestion failures.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator. A nil suggester disables AI suggestions.
func NewGenerator(suggester Suggester, opts ...Option) *Generator {
	g := &Generator{
		suggester: suggester,
		timeout:   DefaultSuggestionTimeout,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ComputeAISuggestions asks the suggester for extra skills. It never fails: errors,
// timeouts and cancellation all yield an empty list. At most MaxSuggestions trimmed,
// distinct names are returned, leaving out skills the profile already holds.
func (g *Generator) ComputeAISuggestions(ctx context.Context, profile *types.Profile, analysis *types.JobAnalysis) []string {
	if g == nil || g.suggester == nil {
		return []string{}
	}

	var roleType string
	var required []string
	if analysis != nil {
		roleType = analysis.RoleType
		required = analysis.RequiredSkills
	}
	current := skills.NewSet(profile.AllSkills()).Items()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type outcome struct {
		suggestions []string
		err         error
	}
	done := make(chan outcome, 1)
	go func() {
		suggestions, err := g.suggester.SuggestSkills(ctx, roleType, required, current)
		done <- outcome{suggestions: suggestions, err: err}
	}()

	select {
	case <-ctx.Done():
		g.logger.Warn("skill suggestions abandoned", zap.Error(ctx.Err()))
		return []string{}
	case out := <-done:
		if out.err != nil {
			g.logger.Warn("skill suggestions unavailable", zap.Error(out.err))
			return []string{}
		}
		return cleanSuggestions(out.suggestions, skills.NewSet(current))
	}
}

// Recommend returns the skill gaps plus AI suggestions.
func (g *Generator) Recommend(ctx context.Context, profile *types.Profile, analysis *types.JobAnalysis) types.Recommendations {
	gaps := ComputeGaps(profile, analysis)
	return types.Recommendations{
		CriticalMissing:    gaps.CriticalMissing,
		NiceToHaveMissing:  gaps.NiceToHaveMissing,
		AISuggestions:      g.ComputeAISuggestions(ctx, profile, analysis),
		HasRecommendations: gaps.HasRecommendations,
	}
}

// cleanSuggestions trims names and drops blanks, repeats and skills in have.
func cleanSuggestions(raw []string, have *skills.Set) []string {
	out := make([]string, 0, MaxSuggestions)
	for _, s := range raw {
		if len(out) == MaxSuggestions {
			break
		}
		s = strings.TrimSpace(s)
		if s == "" || !have.Add(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
