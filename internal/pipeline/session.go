// Package pipeline orchestrates a tailoring session: interpret a job description,
// score the profile against it, recommend skills, and assemble a tailored resume.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resumeforge/internal/parsing"
	"github.com/jonathan/resumeforge/internal/profile"
	"github.com/jonathan/resumeforge/internal/ranking"
	"github.com/jonathan/resumeforge/internal/selection"
	"github.com/jonathan/resumeforge/internal/types"
)

// State is the position of a session in its lifecycle
type State string

// Session states
const (
	StateIdle           State = "idle"
	StateAnalyzing      State = "analyzing"
	StateAnalyzed       State = "analyzed"
	StateProfileUpdated State = "profile_updated"
)

var (
	// ErrInterpretation is returned when the job description could not be interpreted
	ErrInterpretation = errors.New("job description interpretation failed")
	// ErrNotAnalyzed is returned by operations that need a completed analysis
	ErrNotAnalyzed = errors.New("no job analysis in session")
)

// Interpreter turns job description text into a JobAnalysis
type Interpreter interface {
	Interpret(ctx context.Context, jdText string) parsing.Result
}

// Recommender produces skill recommendations
type Recommender interface {
	Recommend(ctx context.Context, p *types.Profile, analysis *types.JobAnalysis) types.Recommendations
}

// SummaryWriter produces a tailored professional summary
type SummaryWriter interface {
	Write(ctx context.Context, p *types.Profile, analysis *types.JobAnalysis) string
}

// ProgressEvent represents a progress update during a session operation
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when session progress occurs
type ProgressCallback func(event ProgressEvent)

// Options bounds the tailored output
type Options struct {
	MaxProjects int
	MaxBullets  int
	MaxSkills   int
	OnProgress  ProgressCallback
}

// DefaultOptions returns the standard section limits.
func DefaultOptions() Options {
	return Options{
		MaxProjects: selection.DefaultMaxProjects,
		MaxBullets:  selection.DefaultMaxBullets,
		MaxSkills:   selection.DefaultMaxSkills,
	}
}

// Outcome is everything an analysis produced
type Outcome struct {
	RunID           uuid.UUID             `json:"run_id"`
	Analysis        types.JobAnalysis     `json:"analysis"`
	Match           types.MatchResult     `json:"match"`
	Recommendations types.Recommendations `json:"recommendations"`
	Summary         string                `json:"summary"`
}

// Session carries the explicit context of one tailoring run. Methods are serialized.
type Session struct {
	interpreter Interpreter
	recommender Recommender
	summaries   SummaryWriter
	store       profile.Store
	opts        Options
	logger      *zap.Logger

	mu      sync.Mutex
	state   State
	profile *types.Profile
	outcome *Outcome
}

// NewSession wires the session collaborators. summaries may be nil, in which case the
// stored profile summary is used.
func NewSession(interp Interpreter, rec Recommender, summaries SummaryWriter, store profile.Store, opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		interpreter: interp,
		recommender: rec,
		summaries:   summaries,
		store:       store,
		opts:        opts,
		logger:      log,
		state:       StateIdle,
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Profile returns the profile the session is working with, if loaded
func (s *Session) Profile() *types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Outcome returns the latest analysis outcome, or nil
func (s *Session) Outcome() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Analyze loads the profile, interprets the job description, and scores the profile
// against it. Recommendations and the tailored summary run concurrently. An
// interpretation failure returns the session to idle.
func (s *Session) Analyze(ctx context.Context, jdText string) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAnalyzing
	runID := uuid.New()
	log := s.logger.With(zap.String("run_id", runID.String()))

	p, err := s.store.Load(ctx)
	if err != nil {
		s.state = StateIdle
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	s.profile = p

	s.emit("interpret", "Interpreting job description", runID)
	result := s.interpreter.Interpret(ctx, jdText)
	if !result.Success || result.Data == nil {
		s.state = StateIdle
		s.outcome = nil
		log.Warn("interpretation failed", zap.String("error", result.Error))
		return nil, fmt.Errorf("%w: %s", ErrInterpretation, result.Error)
	}

	outcome := s.evaluate(ctx, runID, result.Data, log)
	s.outcome = outcome
	s.state = StateAnalyzed
	return outcome, nil
}

// ApplySkills adds the chosen skills to the profile and persists it. It returns the
// number of skills that were new.
func (s *Session) ApplySkills(ctx context.Context, chosen []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == nil || s.profile == nil {
		return 0, ErrNotAnalyzed
	}

	// The session keeps its profile until the store accepts the update.
	updated := *s.profile
	updated.Skills.Technical = append([]string(nil), s.profile.Skills.Technical...)
	added := profile.AddSkills(&updated, chosen)
	if added == 0 {
		return 0, nil
	}
	if err := s.store.Save(ctx, &updated); err != nil {
		return 0, err
	}
	s.profile = &updated
	s.emit("apply_skills", fmt.Sprintf("Added %d skills to profile", added), s.outcome.RunID)
	s.state = StateProfileUpdated
	return added, nil
}

// Reanalyze recomputes the match, recommendations and summary against the stored
// job analysis without interpreting the job description again.
func (s *Session) Reanalyze(ctx context.Context) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == nil || s.profile == nil {
		return nil, ErrNotAnalyzed
	}
	analysis := s.outcome.Analysis
	log := s.logger.With(zap.String("run_id", s.outcome.RunID.String()))

	outcome := s.evaluate(ctx, s.outcome.RunID, &analysis, log)
	s.outcome = outcome
	s.state = StateAnalyzed
	return outcome, nil
}

// Tailor assembles the resume content for rendering from the latest analysis.
func (s *Session) Tailor() (*types.TailoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == nil || s.profile == nil {
		return nil, ErrNotAnalyzed
	}
	resume := BuildResume(s.profile, s.outcome, s.opts)
	s.emit("tailor", fmt.Sprintf("Selected %d projects", len(resume.Projects)), s.outcome.RunID)
	return resume, nil
}

// Reset discards the analysis and returns the session to idle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.outcome = nil
	s.profile = nil
}

func (s *Session) evaluate(ctx context.Context, runID uuid.UUID, analysis *types.JobAnalysis, log *zap.Logger) *Outcome {
	outcome := &Outcome{
		RunID:    runID,
		Analysis: *analysis,
		Match:    ranking.ComputeMatch(s.profile, analysis),
		Summary:  s.profile.Personal.Summary,
	}
	s.emit("match", fmt.Sprintf("Match score %.1f", outcome.Match.Score), runID)

	// Neither branch can fail; failures degrade inside the collaborators.
	g, gCtx := errgroup.WithContext(ctx)
	if s.recommender != nil {
		g.Go(func() error {
			outcome.Recommendations = s.recommender.Recommend(gCtx, s.profile, analysis)
			return nil
		})
	}
	if s.summaries != nil {
		g.Go(func() error {
			outcome.Summary = s.summaries.Write(gCtx, s.profile, analysis)
			return nil
		})
	}
	_ = g.Wait()

	if outcome.Recommendations.CriticalMissing == nil {
		outcome.Recommendations = emptyRecommendations()
	}
	log.Info("analysis complete",
		zap.Float64("score", outcome.Match.Score),
		zap.Int("matched", len(outcome.Match.MatchedSkills)),
		zap.Int("missing", len(outcome.Match.MissingSkills)),
		zap.Int("suggestions", len(outcome.Recommendations.AISuggestions)),
	)
	return outcome
}

func (s *Session) emit(step, message string, runID uuid.UUID) {
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID.String()})
	}
}

func emptyRecommendations() types.Recommendations {
	return types.Recommendations{
		CriticalMissing:   []string{},
		NiceToHaveMissing: []string{},
		AISuggestions:     []string{},
	}
}

// BuildResume selects projects, trims experience bullets and orders skills for rendering.
func BuildResume(p *types.Profile, outcome *Outcome, opts Options) *types.TailoredResume {
	analysis := outcome.Analysis
	return &types.TailoredResume{
		Personal:       p.Personal,
		Summary:        outcome.Summary,
		Skills:         selection.OrderSkills(p.Skills.Technical, outcome.Match.MatchedSkills, opts.MaxSkills),
		SoftSkills:     append([]string{}, p.Skills.Soft...),
		Experience:     selection.OptimizeExperience(p.Experience, analysis.Keywords, opts.MaxBullets),
		Projects:       selection.SelectBestProjects(p, &analysis, opts.MaxProjects),
		Education:      append([]types.Education{}, p.Education...),
		Certifications: append([]types.Certification{}, p.Certifications...),
		Match:          outcome.Match,
		Analysis:       analysis,
	}
}
