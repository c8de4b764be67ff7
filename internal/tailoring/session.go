package tailoring

import (
	"context"
	"strings"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/matching"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Session is the explicit state machine behind the tailoring flow:
// Analyze -> Customize -> Preview. All state lives here and moves through
// reducer-style transitions; there is no ambient state anywhere else.
type Session struct {
	Step types.SessionStep

	Resume *types.Resume
	Job    *types.JobPosting
	Match  *types.MatchData

	Selection      types.SectionSelection
	SelectedSkills []string

	// Tailored holds the output of the Preview step
	Tailored *types.Resume
}

// NewSession scores the resume against the job and starts at Analyze
func NewSession(resume *types.Resume, job *types.JobPosting) *Session {
	return &Session{
		Step:   types.StepAnalyze,
		Resume: resume,
		Job:    job,
		Match:  matching.Score(resume, job),
	}
}

// Customize records the caller's section selection and the missing skills
// they opted to add, moving the session to the Customize step. Skills that
// the analysis did not report missing are dropped rather than rejected:
// adding a skill the resume already has is harmless by construction.
func (s *Session) Customize(selection types.SectionSelection, selectedSkills []string) error {
	if s.Step != types.StepAnalyze && s.Step != types.StepCustomize {
		return &StepError{From: string(s.Step), Attempt: string(types.StepCustomize)}
	}

	missing := make(map[string]bool, len(s.Match.MissingSkills))
	for _, m := range s.Match.MissingSkills {
		missing[strings.ToLower(m)] = true
	}

	kept := make([]string, 0, len(selectedSkills))
	for _, skill := range selectedSkills {
		if missing[strings.ToLower(strings.TrimSpace(skill))] {
			kept = append(kept, strings.TrimSpace(skill))
		}
	}

	s.Selection = selection
	s.SelectedSkills = kept
	s.Step = types.StepCustomize
	return nil
}

// Preview runs the tailoring engine with the recorded selections and moves
// the session to the Preview step. The session's match data is replaced by
// the finalized copy; the original resume stays untouched.
func (s *Session) Preview(ctx context.Context, engine *Engine) error {
	if s.Step != types.StepCustomize {
		return &StepError{From: string(s.Step), Attempt: string(types.StepPreview)}
	}

	result, err := engine.Tailor(ctx, s.Resume, s.Job, s.Selection, s.SelectedSkills, s.Match)
	if err != nil {
		return err
	}

	s.Tailored = result.Resume
	s.Match = result.MatchData
	s.Step = types.StepPreview
	return nil
}

// Back steps the session backwards one step. Stepping back from Preview
// discards the tailored resume and restores a fresh analysis score.
func (s *Session) Back() {
	switch s.Step {
	case types.StepPreview:
		s.Tailored = nil
		s.Match = matching.Score(s.Resume, s.Job)
		s.Step = types.StepCustomize
	case types.StepCustomize:
		s.Step = types.StepAnalyze
	case types.StepAnalyze:
		// already at the first step
	}
}
