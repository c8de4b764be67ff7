// Package tailoring adjusts a resume's summary, skills and experience
// toward a specific job posting. The engine is a primary/fallback pair: an
// LLM rewrite when the text service cooperates, and a deterministic local
// strategy that guarantees a usable resume when it does not.
package tailoring

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/logger"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/matching"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Engine runs tailoring passes. A nil client selects the deterministic
// strategy unconditionally; credential problems are surfaced earlier, when
// the client itself is constructed.
type Engine struct {
	client llm.Client
	logger *zap.Logger
}

// NewEngine creates a tailoring engine
func NewEngine(client llm.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{client: client, logger: logger}
}

// Result bundles the tailored resume with its finalized match data
type Result struct {
	Resume    *types.Resume
	MatchData *types.MatchData
}

// Tailor produces a tailored copy of the resume. The original resume and
// base match data are never mutated; the result carries fresh values with
// FinalScore and SummaryTailored populated.
//
// Fatal errors are limited to configuration problems. Any model hiccup
// (transport failure, empty candidates, unparseable reply) silently
// degrades to the deterministic fallback.
func (e *Engine) Tailor(ctx context.Context, resume *types.Resume, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string, base *types.MatchData) (*Result, error) {
	clone := resume.Clone()

	if err := e.tailorWithModel(ctx, clone, resume, job, sections, selectedSkills); err != nil {
		var configErr *llm.ConfigError
		if errors.As(err, &configErr) {
			return nil, err
		}

		e.logger.Warn("model tailoring failed, using deterministic fallback",
			zap.Error(err),
			zap.String("job_title", job.Title),
		)
		clone = resume.Clone()
		applyFallback(clone, job, sections, selectedSkills)
	}

	matchData := *base
	matchData.FinalScore = matching.FinalizeScore(base, job, sections, selectedSkills)
	matchData.SummaryTailored = sections.Summary

	return &Result{Resume: clone, MatchData: &matchData}, nil
}

// errNoClient selects the fallback strategy when no model is configured
var errNoClient = errors.New("no llm client configured")

func (e *Engine) tailorWithModel(ctx context.Context, clone, original *types.Resume, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string) error {
	if e.client == nil {
		return errNoClient
	}

	prompt := buildPrompt(original, job, sections, selectedSkills)
	reply, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return err
	}

	payload, err := parseReply(reply)
	if err != nil {
		e.logger.Debug("unparseable tailoring reply",
			zap.String("reply", logger.TruncateForLog(reply, 500)))
		return err
	}

	applyPayload(clone, payload, sections, selectedSkills)
	return nil
}
