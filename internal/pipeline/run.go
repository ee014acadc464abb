// Package pipeline orchestrates the per-candidate evaluation chain and the
// bounded-concurrency batch runner.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/embedding"
	"github.com/jonathan/hiring-agent/internal/explain"
	"github.com/jonathan/hiring-agent/internal/logger"
	"github.com/jonathan/hiring-agent/internal/matching"
	"github.com/jonathan/hiring-agent/internal/policy"
	"github.com/jonathan/hiring-agent/internal/ranking"
	"github.com/jonathan/hiring-agent/internal/scoring"
	"github.com/jonathan/hiring-agent/internal/signals"
	"github.com/jonathan/hiring-agent/internal/types"
)

// JobDescription is the shared, read-only input for a batch run. Its
// embeddings are computed once and shared across all candidate pipelines.
type JobDescription struct {
	Requirements     []string `json:"requirements"`
	RequiredLanguage string   `json:"required_language"`
}

// CandidateInput is one candidate's already-extracted resume sentences.
type CandidateInput struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Sentences []string `json:"sentences"`
}

// CandidateFailure records a per-candidate error. Failures never abort the
// batch; the candidate is excluded from ranking and reported here.
type CandidateFailure struct {
	CandidateID string `json:"candidate_id"`
	Stage       string `json:"stage"`
	Err         error  `json:"-"`
	Message     string `json:"message"`
}

// BatchResult is the outcome of one analysis run.
type BatchResult struct {
	RunID    uuid.UUID                  `json:"run_id"`
	Reports  []*types.ExplanationReport `json:"reports"`
	Ranking  *types.Ranking             `json:"ranking"`
	Failures []CandidateFailure         `json:"failures,omitempty"`
}

// Engine runs analysis batches. Construct once per process; the
// configuration is validated at construction and shared read-only afterward.
type Engine struct {
	cfg       *config.Config
	embedder  embedding.Embedder
	decisions *policy.DecisionList
	log       zerolog.Logger
}

// New validates the configuration and builds the engine. Configuration
// problems (weight sum, malformed tiers) fail here, never per request.
func New(cfg *config.Config, embedder embedding.Embedder) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	return &Engine{
		cfg:       cfg,
		embedder:  embedder,
		decisions: policy.New(cfg.Policy),
		log:       logger.Logger.With().Str("component", "pipeline").Logger(),
	}, nil
}

// AnalyzeBatch evaluates every candidate against the job description and
// returns the per-candidate reports plus the batch ranking. Candidates are
// processed in parallel, bounded by the configured concurrency limit so the
// embedding provider is not saturated. A single candidate's failure is
// recorded and skipped; only a failure to embed the job description itself
// aborts the run, since no candidate could proceed without it.
func (e *Engine) AnalyzeBatch(ctx context.Context, job JobDescription, candidates []CandidateInput) (*BatchResult, error) {
	runID := uuid.New()
	start := time.Now()
	e.log.Info().
		Str("run_id", runID.String()).
		Int("requirements", len(job.Requirements)).
		Int("candidates", len(candidates)).
		Msg("starting analysis batch")

	var reqVectors [][]float64
	if len(job.Requirements) > 0 {
		var err error
		reqVectors, err = embedding.EmbedWithRetry(ctx, e.embedder, job.Requirements, e.cfg.EmbedTimeout())
		if err != nil {
			return nil, fmt.Errorf("embedding job requirements failed: %w", err)
		}
	}

	// Each worker writes only its own slot; no locking needed.
	reports := make([]*types.ExplanationReport, len(candidates))
	failures := make([]*CandidateFailure, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			report, err := e.evaluateCandidate(gCtx, job, reqVectors, candidate)
			if err != nil {
				failure := classifyFailure(candidate.ID, err)
				failures[i] = failure
				e.log.Warn().
					Str("run_id", runID.String()).
					Str("candidate_id", candidate.ID).
					Str("stage", failure.Stage).
					Err(err).
					Msg("candidate evaluation failed")
				// Per-candidate errors must not cancel siblings.
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Ranking is the batch synchronization point: every candidate pipeline
	// has finished before it runs.
	result := &BatchResult{RunID: runID}
	var entries []ranking.Entry
	for i, candidate := range candidates {
		if failures[i] != nil {
			result.Failures = append(result.Failures, *failures[i])
			continue
		}
		result.Reports = append(result.Reports, reports[i])
		entries = append(entries, ranking.Entry{
			CandidateID:   candidate.ID,
			CandidateName: candidate.Name,
			Composite:     reports[i].Composite,
			Action:        reports[i].Decision.Action,
		})
	}
	result.Ranking = ranking.Rank(entries, e.cfg)
	result.Ranking.Failed = len(result.Failures)

	e.log.Info().
		Str("run_id", runID.String()).
		Int("ranked", len(result.Ranking.Ranked)).
		Int("failed", result.Ranking.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("analysis batch complete")
	return result, nil
}

// evaluateCandidate runs the full chain for one candidate: embed sentences,
// match requirements, derive sub-scores, aggregate, decide, and explain.
func (e *Engine) evaluateCandidate(ctx context.Context, job JobDescription, reqVectors [][]float64, candidate CandidateInput) (*types.ExplanationReport, error) {
	var sentVectors [][]float64
	if len(candidate.Sentences) > 0 {
		var err error
		sentVectors, err = embedding.EmbedWithRetry(ctx, e.embedder, candidate.Sentences, e.cfg.EmbedTimeout())
		if err != nil {
			return nil, err
		}
	}

	matched := matching.MatchRequirements(job.Requirements, reqVectors, candidate.Sentences, sentVectors, e.cfg.MatchThreshold)

	scores := types.ScoreVector{
		RoleFit:             signals.RoleFit(matched.Matches),
		CapabilityStrength:  signals.CapabilityStrength(candidate.Sentences),
		GrowthPotential:     signals.GrowthPotential(candidate.Sentences),
		DomainCompatibility: signals.DomainCompatibility(job.Requirements, candidate.Sentences),
		ExecutionLanguage:   signals.ExecutionLanguage(job.RequiredLanguage, candidate.Sentences),
	}

	return e.explainScores(candidate.ID, candidate.Name, scores, matched)
}

// EvaluateScores runs the decision and explainability chain for a
// ScoreVector supplied by external sub-score providers. No semantic matching
// is involved, so the report carries no matches or gaps.
func (e *Engine) EvaluateScores(candidateID, candidateName string, scores types.ScoreVector) (*types.ExplanationReport, error) {
	return e.explainScores(candidateID, candidateName, scores, matching.Result{})
}

func (e *Engine) explainScores(candidateID, candidateName string, scores types.ScoreVector, matched matching.Result) (*types.ExplanationReport, error) {
	eval, err := scoring.Aggregate(scores, e.cfg.Weights)
	if err != nil {
		return nil, err
	}

	decision := e.decisions.Decide(scores)
	confidence, variance := explain.EstimateConfidence(scores.NumericValues())
	counterfactuals := explain.Explore(e.decisions, scores)

	return explain.Compose(explain.ReportInputs{
		CandidateID:     candidateID,
		CandidateName:   candidateName,
		Evaluation:      eval,
		Matches:         matched.Matches,
		Gaps:            matched.Gaps,
		TopK:            e.cfg.TopK,
		Confidence:      confidence,
		Variance:        variance,
		Counterfactuals: counterfactuals,
		Decision:        decision,
	}), nil
}

// classifyFailure maps an evaluation error to its pipeline stage for the
// batch summary.
func classifyFailure(candidateID string, err error) *CandidateFailure {
	stage := "evaluation"
	switch {
	case isEmbeddingError(err):
		stage = "embedding"
	case isDomainError(err):
		stage = "scoring"
	}
	return &CandidateFailure{
		CandidateID: candidateID,
		Stage:       stage,
		Err:         err,
		Message:     err.Error(),
	}
}
